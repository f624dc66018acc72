package engine

import (
	"sync"
	"time"
)

// Guarded serializes access to an Engine so that ticks and commands can
// arrive from different goroutines.
type Guarded struct {
	mu sync.Mutex
	e  *Engine
}

// NewGuarded wraps e. The caller must not use e directly afterwards.
func NewGuarded(e *Engine) *Guarded {
	return &Guarded{e: e}
}

// Spawn starts the game. See Engine.Spawn.
func (g *Guarded) Spawn() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.e.Spawn()
}

// Tick advances the fall timer. See Engine.Tick.
func (g *Guarded) Tick(dt time.Duration) Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.e.Tick(dt)
}

// Move translates the active piece. See Engine.Move.
func (g *Guarded) Move(dir Direction) Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.e.Move(dir)
}

// Rotate turns the active piece. See Engine.Rotate.
func (g *Guarded) Rotate() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.e.Rotate()
}

// SetFallInterval changes the fall interval. See Engine.SetFallInterval.
func (g *Guarded) SetFallInterval(d time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.e.SetFallInterval(d)
}

// Snapshot returns a consistent copy of the board.
func (g *Guarded) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.e.Snapshot()
}
