package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset converts a CLI value to a preset.
// Unknown or empty values return "" (no preset).
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// SpeedFactors returns the ball and paddle speed multipliers for a preset.
func SpeedFactors(preset DifficultyPreset) (ball, paddle float64) {
	switch preset {
	case DifficultyEasy:
		return 0.75, 1.25
	case DifficultyHard:
		return 1.5, 1.25
	default:
		return 1.0, 1.0
	}
}

// ApplyLavaPreset modifies the config based on a difficulty preset.
func ApplyLavaPreset(cfg *LavaConfig, preset DifficultyPreset) {
	ball, paddle := SpeedFactors(preset)
	cfg.Ball.Speed *= ball
	cfg.Paddle.Speed *= paddle

	// Easy also widens the paddle by a quarter
	if preset == DifficultyEasy {
		cfg.Paddle.Width += cfg.Paddle.Width / 4
	}
}
