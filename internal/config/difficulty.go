package config

import (
	"math"
	"time"
)

// Progress is what difficulty progression is measured against.
type Progress struct {
	Pieces int
	Lines  int
	Ticks  int
}

// DifficultyManager calculates the fall interval from game progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty affects the game at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.cfg.Enabled {
		return 0
	}

	var count int
	switch d.cfg.Progression.Type {
	case ProgressionPieces:
		count = p.Pieces
	case ProgressionLines:
		count = p.Lines
	case ProgressionTime:
		count = p.Ticks
	default:
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(count)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// FallInterval shortens base according to the current level. At level 1 the
// interval is reduced by Scaling.IntervalReduction, never going below
// Scaling.MinFallInterval.
func (d *DifficultyManager) FallInterval(base time.Duration, p Progress) time.Duration {
	level := d.Level(p)
	if level == 0 {
		return base
	}

	factor := 1.0 - level*clampF(d.cfg.Scaling.IntervalReduction, 0.0, 1.0)
	interval := time.Duration(math.Round(float64(base) * factor))

	floor := seconds(d.cfg.Scaling.MinFallInterval)
	if floor <= 0 {
		floor = time.Millisecond
	}
	if interval < floor {
		interval = min(floor, base)
	}
	return interval
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
