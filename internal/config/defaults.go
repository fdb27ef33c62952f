package config

import (
	_ "embed"
)

//go:embed defaults/lava.yaml
var defaultLavaYAML []byte

// DefaultLavaConfig returns the default lava configuration.
func DefaultLavaConfig() LavaConfig {
	return LavaConfig{
		Field: FieldConfig{
			Width:  1024,
			Height: 768,
		},
		Paddle: BodyConfig{
			X:      512,
			Y:      600,
			Width:  120,
			Height: 10,
			Speed:  0.5,
			Color:  "#0000ff",
		},
		Ball: BodyConfig{
			X:      545,
			Y:      510,
			Width:  10,
			Height: 10,
			VX:     1,
			VY:     -1,
			Speed:  0.3,
			Color:  "#ffff00",
		},
		Bricks: BricksConfig{
			Width:     62,
			Height:    20,
			Spacing:   2,
			Rows:      4,
			TopMargin: 50,
			Color:     "#00ff00",
		},
		Hazard: HazardConfig{
			Height: 30,
			Color:  "#ff0000",
		},
		Motion: MotionConfig{
			Mode:          MotionScaled,
			ReferenceRate: 1000,
			MaxStepMS:     DefaultMaxStepMS,
		},
		Collision: "classic",
	}
}

// ClassicLavaConfig returns the default configuration with frame-locked
// motion: every step moves a body by exactly its speed.
func ClassicLavaConfig() LavaConfig {
	cfg := DefaultLavaConfig()
	cfg.Motion.Mode = MotionFrames
	cfg.Collision = "classic"
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "lava", "lava_classic":
		return defaultLavaYAML
	default:
		return nil
	}
}
