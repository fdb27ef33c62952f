// Package config provides YAML/TOML game configuration loading and
// difficulty presets for lavabreak.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/lavabreak/internal/core"
)

// Motion modes.
const (
	MotionFrames = "frames" // displacement = velocity * speed per step, dt ignored
	MotionScaled = "scaled" // displacement = velocity * speed * dt * reference_rate
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LavaConfig contains all configuration for a lava session.
type LavaConfig struct {
	Field     FieldConfig  `yaml:"field" toml:"field"`
	Paddle    BodyConfig   `yaml:"paddle" toml:"paddle"`
	Ball      BodyConfig   `yaml:"ball" toml:"ball"`
	Bricks    BricksConfig `yaml:"bricks" toml:"bricks"`
	Hazard    HazardConfig `yaml:"hazard" toml:"hazard"`
	Motion    MotionConfig `yaml:"motion" toml:"motion"`
	Collision string       `yaml:"collision" toml:"collision"` // "classic" or "faces"
}

// FieldConfig defines the playfield size in pixels.
type FieldConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// BodyConfig defines construction-time defaults for a moving body.
type BodyConfig struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Width  int     `yaml:"width" toml:"width"`
	Height int     `yaml:"height" toml:"height"`
	VX     int     `yaml:"vx" toml:"vx"`
	VY     int     `yaml:"vy" toml:"vy"`
	Speed  float64 `yaml:"speed" toml:"speed"`
	Color  string  `yaml:"color" toml:"color"`
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Width     int    `yaml:"width" toml:"width"`
	Height    int    `yaml:"height" toml:"height"`
	Spacing   int    `yaml:"spacing" toml:"spacing"`
	Rows      int    `yaml:"rows" toml:"rows"`
	TopMargin int    `yaml:"top_margin" toml:"top_margin"`
	Color     string `yaml:"color" toml:"color"`
}

// HazardConfig defines the lava strip along the bottom of the field.
type HazardConfig struct {
	Height int    `yaml:"height" toml:"height"`
	Color  string `yaml:"color" toml:"color"`
}

// DefaultMaxStepMS caps the frame time scaled motion accepts, about two
// frames at 60 fps.
const DefaultMaxStepMS = 32

// MotionConfig selects how displacement relates to elapsed time.
type MotionConfig struct {
	Mode          string  `yaml:"mode" toml:"mode"`
	ReferenceRate float64 `yaml:"reference_rate" toml:"reference_rate"` // steps per second one speed unit is tuned for
	MaxStepMS     float64 `yaml:"max_step_ms" toml:"max_step_ms"`       // longer frames move as if this long; 0 uses the default
}

// MaxStep returns the longest frame time scaled motion honours.
func (m MotionConfig) MaxStep() time.Duration {
	ms := m.MaxStepMS
	if ms <= 0 {
		ms = DefaultMaxStepMS
	}
	return time.Duration(ms * float64(time.Millisecond))
}

// FieldSize returns the playfield as a core.Field.
func (c LavaConfig) FieldSize() core.Field {
	return core.Field{W: c.Field.Width, H: c.Field.Height}
}

// CollisionRule returns the parsed collision rule.
func (c LavaConfig) CollisionRule() core.CollisionRule {
	rule, _ := core.ParseCollisionRule(c.Collision)
	return rule
}

// Validate checks that the config describes a playable session.
func (c LavaConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: field must be positive, got %dx%d", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	}
	bodies := []struct {
		name string
		b    BodyConfig
	}{{"paddle", c.Paddle}, {"ball", c.Ball}}
	for _, nb := range bodies {
		name, b := nb.name, nb.b
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("%w: %s size must be positive, got %dx%d", ErrInvalidConfig, name, b.Width, b.Height)
		}
		if b.Speed < 0 {
			return fmt.Errorf("%w: %s speed must not be negative", ErrInvalidConfig, name)
		}
		if _, ok := core.ParseColor(b.Color); !ok {
			return fmt.Errorf("%w: %s color %q", ErrInvalidConfig, name, b.Color)
		}
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 || c.Bricks.Spacing < 0 || c.Bricks.Rows <= 0 {
		return fmt.Errorf("%w: brick layout %dx%d spacing %d rows %d", ErrInvalidConfig,
			c.Bricks.Width, c.Bricks.Height, c.Bricks.Spacing, c.Bricks.Rows)
	}
	if _, ok := core.ParseColor(c.Bricks.Color); !ok {
		return fmt.Errorf("%w: bricks color %q", ErrInvalidConfig, c.Bricks.Color)
	}
	if c.Hazard.Height <= 0 {
		return fmt.Errorf("%w: hazard height must be positive", ErrInvalidConfig)
	}
	if _, ok := core.ParseColor(c.Hazard.Color); !ok {
		return fmt.Errorf("%w: hazard color %q", ErrInvalidConfig, c.Hazard.Color)
	}
	switch c.Motion.Mode {
	case MotionFrames:
	case MotionScaled:
		if c.Motion.ReferenceRate <= 0 {
			return fmt.Errorf("%w: motion.reference_rate must be positive", ErrInvalidConfig)
		}
		if c.Motion.MaxStepMS < 0 {
			return fmt.Errorf("%w: motion.max_step_ms must not be negative", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown motion mode %q", ErrInvalidConfig, c.Motion.Mode)
	}
	if _, ok := core.ParseCollisionRule(c.Collision); !ok {
		return fmt.Errorf("%w: unknown collision rule %q", ErrInvalidConfig, c.Collision)
	}
	return nil
}
