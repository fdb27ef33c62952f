package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestEmbeddedDefaultMatchesGoDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadLava("")
	if err != nil {
		t.Fatalf("LoadLava() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultLavaConfig()) {
		t.Errorf("embedded YAML differs from DefaultLavaConfig():\n%+v\n%+v", cfg, DefaultLavaConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomYAMLPartial(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "ball:\n  speed: 0.9\ncollision: faces\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLava(path)
	if err != nil {
		t.Fatalf("LoadLava() failed: %v", err)
	}
	if cfg.Ball.Speed != 0.9 {
		t.Errorf("Ball.Speed = %v, expected 0.9", cfg.Ball.Speed)
	}
	if cfg.Collision != "faces" {
		t.Errorf("Collision = %q, expected faces", cfg.Collision)
	}
	// Untouched fields keep their defaults
	if cfg.Bricks.Width != 62 || cfg.Field.Width != 1024 {
		t.Errorf("partial config lost defaults: %+v", cfg)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := `
collision = "classic"

[motion]
mode = "frames"

[bricks]
rows = 6
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLava(path)
	if err != nil {
		t.Fatalf("LoadLava() failed: %v", err)
	}
	if cfg.Motion.Mode != MotionFrames {
		t.Errorf("Motion.Mode = %q, expected frames", cfg.Motion.Mode)
	}
	if cfg.Bricks.Rows != 6 {
		t.Errorf("Bricks.Rows = %d, expected 6", cfg.Bricks.Rows)
	}
}

func TestLoadSearchesUserDir(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".lavabreak", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "lava.toml"), []byte("[hazard]\nheight = 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLava("")
	if err != nil {
		t.Fatalf("LoadLava() failed: %v", err)
	}
	if cfg.Hazard.Height != 40 {
		t.Errorf("Hazard.Height = %d, expected 40 from user config", cfg.Hazard.Height)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := LoadLava(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	ini := filepath.Join(dir, "lava.ini")
	if err := os.WriteFile(ini, []byte("x=1"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLava(ini); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("unknown extension error = %v, expected ErrUnknownFormat", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("motion:\n  mode: warp\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLava(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid motion error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LavaConfig)
	}{
		{"zero field", func(c *LavaConfig) { c.Field.Width = 0 }},
		{"zero ball size", func(c *LavaConfig) { c.Ball.Width = 0 }},
		{"negative paddle speed", func(c *LavaConfig) { c.Paddle.Speed = -1 }},
		{"bad ball color", func(c *LavaConfig) { c.Ball.Color = "yellow" }},
		{"zero rows", func(c *LavaConfig) { c.Bricks.Rows = 0 }},
		{"negative spacing", func(c *LavaConfig) { c.Bricks.Spacing = -2 }},
		{"zero hazard", func(c *LavaConfig) { c.Hazard.Height = 0 }},
		{"scaled without rate", func(c *LavaConfig) { c.Motion.ReferenceRate = 0 }},
		{"negative max step", func(c *LavaConfig) { c.Motion.MaxStepMS = -1 }},
		{"unknown collision", func(c *LavaConfig) { c.Collision = "sphere" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLavaConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func encodeString(format string, cfg LavaConfig) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, format, cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func TestMotionMaxStep(t *testing.T) {
	tests := []struct {
		ms       float64
		expected time.Duration
	}{
		{0, 32 * time.Millisecond},
		{-5, 32 * time.Millisecond},
		{50, 50 * time.Millisecond},
		{12.5, 12500 * time.Microsecond},
	}
	for _, tc := range tests {
		m := MotionConfig{MaxStepMS: tc.ms}
		if got := m.MaxStep(); got != tc.expected {
			t.Errorf("MaxStep(%v ms) = %v, expected %v", tc.ms, got, tc.expected)
		}
	}
}

func TestEncodeRoundTripFormats(t *testing.T) {
	for _, format := range []string{"yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			out, err := encodeString(format, ClassicLavaConfig())
			if err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}
			if !strings.Contains(out, "frames") {
				t.Errorf("encoded %s missing motion mode:\n%s", format, out)
			}

			var cfg LavaConfig
			if err := Decode([]byte(out), format, &cfg); err != nil {
				t.Fatalf("Decode() failed: %v", err)
			}
			if !reflect.DeepEqual(cfg, ClassicLavaConfig()) {
				t.Errorf("decoded config differs:\n%+v", cfg)
			}
		})
	}

	if _, err := encodeString("xml", DefaultLavaConfig()); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode(xml) = %v, expected ErrUnknownFormat", err)
	}
}

func TestApplyLavaPreset(t *testing.T) {
	base := DefaultLavaConfig()

	easy := DefaultLavaConfig()
	ApplyLavaPreset(&easy, DifficultyEasy)
	if easy.Ball.Speed >= base.Ball.Speed {
		t.Errorf("easy ball speed %v should be below %v", easy.Ball.Speed, base.Ball.Speed)
	}
	if easy.Paddle.Width != 150 {
		t.Errorf("easy paddle width = %d, expected 150", easy.Paddle.Width)
	}

	hard := DefaultLavaConfig()
	ApplyLavaPreset(&hard, DifficultyHard)
	if hard.Ball.Speed <= base.Ball.Speed {
		t.Errorf("hard ball speed %v should exceed %v", hard.Ball.Speed, base.Ball.Speed)
	}

	normal := DefaultLavaConfig()
	ApplyLavaPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should not change the config")
	}

	if ParseDifficultyPreset("hard") != DifficultyHard || ParseDifficultyPreset("nightmare") != "" {
		t.Error("ParseDifficultyPreset mismatch")
	}
}
