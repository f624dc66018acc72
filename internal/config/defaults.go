package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in Tetris configuration.
// It matches defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			SpawnX: 3,
			SpawnY: 18,
		},
		Timing: TimingConfig{
			FallInterval:      1.0,
			SoftDropInterval:  0.1,
			SoftDropHoldTicks: 8,
		},
		Rules: RulesConfig{
			Rotation:   "table",
			Randomizer: "uniform",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionPieces,
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 0.8,
				MinFallInterval:   0.1,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game mode.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_classic":
		return defaultTetrisYAML
	default:
		return nil
	}
}
