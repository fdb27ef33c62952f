package lava

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/lavabreak/internal/config"
	"github.com/vovakirdan/lavabreak/internal/core"
	"github.com/vovakirdan/lavabreak/internal/registry"
)

// isolate keeps user config directories out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"lava", "lava_classic"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestGameLifecycle(t *testing.T) {
	isolate(t)
	host := &core.FrameHost{}
	g := New()

	if g.State().Terminated || g.Field() != core.DefaultField {
		t.Error("uninitialized game should report defaults")
	}

	if err := g.Initialize(core.DefaultConfig(), host); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	if err := g.Initialize(core.DefaultConfig(), host); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Initialize() = %v, expected ErrAlreadyInitialized", err)
	}
	if g.Config().Motion.Mode != config.MotionScaled {
		t.Errorf("lava motion = %q, expected scaled", g.Config().Motion.Mode)
	}

	res := g.Step(frame)
	if res.State.Frame != 1 || res.State.BricksTotal != 64 {
		t.Errorf("Step() state = %+v", res.State)
	}

	fb := core.NewFrameBuffer(g.Field())
	g.Render(fb)
	if fb.At(512, 600) != core.ColorBlue {
		t.Error("Render did not paint the paddle")
	}

	g.Terminate(core.EndHost)
	if st := g.State(); !st.Terminated || st.Reason != core.EndHost {
		t.Errorf("State() after Terminate = %+v", st)
	}
	if host.Quits != 0 {
		t.Error("host-initiated stop should not notify the host")
	}

	g.Finalize()
	if g.Snapshot().State != StateFinalized {
		t.Errorf("snapshot state = %q, expected finalized", g.Snapshot().State)
	}
}

func TestGameClassicVariant(t *testing.T) {
	isolate(t)
	g := NewClassic()
	if err := g.Initialize(core.DefaultConfig(), nil); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	if g.Config().Motion.Mode != config.MotionFrames || g.Config().Collision != "classic" {
		t.Errorf("classic config = %+v", g.Config().Motion)
	}
	if g.Title() == New().Title() {
		t.Error("variants should have distinct titles")
	}
}

func TestGameConfigAndPreset(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "lava.yaml")
	if err := os.WriteFile(path, []byte("bricks:\n  rows: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("easy")

	g := New()
	if err := g.Initialize(core.DefaultConfig(), nil); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	if n := len(g.Session().Bricks()); n != 32 {
		t.Errorf("bricks = %d, expected 32 from custom config", n)
	}
	if g.Config().Paddle.Width != 150 {
		t.Errorf("paddle width = %d, expected easy preset 150", g.Config().Paddle.Width)
	}
}

func TestGameBadConfig(t *testing.T) {
	isolate(t)
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))

	g := New()
	if err := g.Initialize(core.DefaultConfig(), nil); err == nil {
		t.Fatal("Initialize() with missing config should fail")
	}
	if g.Session() != nil {
		t.Error("failed Initialize left a session behind")
	}
}
