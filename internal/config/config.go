// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for a Tetris game.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines where new pieces appear.
type BoardConfig struct {
	SpawnX int `yaml:"spawn_x"`
	SpawnY int `yaml:"spawn_y"`
}

// TimingConfig defines fall speeds in seconds.
type TimingConfig struct {
	FallInterval      float64 `yaml:"fall_interval"`
	SoftDropInterval  float64 `yaml:"soft_drop_interval"`
	SoftDropHoldTicks int     `yaml:"soft_drop_hold_ticks"` // Ticks soft drop stays on after the last Down press
}

// RulesConfig selects rule variants.
type RulesConfig struct {
	Rotation   string `yaml:"rotation"`   // "table" or "visual"
	Randomizer string `yaml:"randomizer"` // "uniform" or "bag"
}

// FallDuration returns the base fall interval as a duration.
func (t TimingConfig) FallDuration() time.Duration {
	return seconds(t.FallInterval)
}

// SoftDropDuration returns the soft drop interval as a duration.
func (t TimingConfig) SoftDropDuration() time.Duration {
	return seconds(t.SoftDropInterval)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Validate reports the first setting the game cannot run with.
func (c TetrisConfig) Validate() error {
	if c.Board.SpawnX < 0 || c.Board.SpawnX > 9 {
		return fmt.Errorf("config: board.spawn_x %d out of range [0,9]", c.Board.SpawnX)
	}
	if c.Board.SpawnY < 0 {
		return fmt.Errorf("config: board.spawn_y %d is negative", c.Board.SpawnY)
	}
	if c.Timing.FallInterval <= 0 {
		return fmt.Errorf("config: timing.fall_interval must be positive")
	}
	if c.Timing.SoftDropInterval <= 0 {
		return fmt.Errorf("config: timing.soft_drop_interval must be positive")
	}
	if c.Timing.SoftDropHoldTicks < 0 {
		return fmt.Errorf("config: timing.soft_drop_hold_ticks is negative")
	}
	switch c.Rules.Rotation {
	case "", "table", "visual":
	default:
		return fmt.Errorf("config: unknown rules.rotation %q", c.Rules.Rotation)
	}
	switch c.Rules.Randomizer {
	case "", "uniform", "bag":
	default:
		return fmt.Errorf("config: unknown rules.randomizer %q", c.Rules.Randomizer)
	}
	switch c.Difficulty.Progression.Type {
	case "", ProgressionNone, ProgressionPieces, ProgressionLines, ProgressionTime:
	default:
		return fmt.Errorf("config: unknown difficulty.progression.type %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// Progression types.
const (
	ProgressionNone   = "none"
	ProgressionPieces = "pieces"
	ProgressionLines  = "lines"
	ProgressionTime   = "time"
)

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "pieces", "lines", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Pieces, lines or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the fall interval removed at max difficulty
	MinFallInterval   float64 `yaml:"min_fall_interval"`  // Floor in seconds
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name from the command line.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
