package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown config format")

// configNames lists the file names probed in each search directory, in order.
var configNames = []string{"lava.yaml", "lava.yml", "lava.toml"}

// LoadLava loads lava configuration.
// Search order: customPath -> ~/.lavabreak/configs/lava.{yaml,yml,toml}
// -> ./configs/lava.{yaml,yml,toml} -> embedded default.
// A custom path that cannot be read, parsed or validated is an error;
// discovered files that fail to parse are skipped.
func LoadLava(customPath string) (LavaConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, dir := range searchDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			cfg, err := loadFile(path)
			if err != nil {
				continue
			}
			if err := cfg.Validate(); err != nil {
				return cfg, fmt.Errorf("config %s: %w", path, err)
			}
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultLavaConfig()
	if err := yaml.Unmarshal(defaultLavaYAML, &cfg); err != nil {
		return DefaultLavaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and decodes a config file, starting from the defaults so
// that partial files only override what they mention.
func loadFile(path string) (LavaConfig, error) {
	cfg := DefaultLavaConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(data, formatOf(path), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the given format ("yaml" or "toml") into cfg.
func Decode(data []byte, format string, cfg *LavaConfig) error {
	switch format {
	case "yaml":
		return yaml.Unmarshal(data, cfg)
	case "toml":
		return toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, format string, cfg LavaConfig) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// formatOf maps a file extension to a format name.
func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return strings.TrimPrefix(filepath.Ext(path), ".")
	}
}

// searchDirs returns the user and local config directories, skipping the
// user directory when home is unavailable.
func searchDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".lavabreak", "configs"))
	}
	return append(dirs, "configs")
}
