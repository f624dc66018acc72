package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
// It is comparable with ==.
type Snapshot struct {
	Tick         int
	Mode         string
	Lines        int
	Pieces       int
	Piece        engine.PieceType
	X, Y         int
	Rotation     engine.Rotation
	FallInterval time.Duration
	Board        string // Grid rows, top first
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := g.eng.Snapshot()

	state := StatePlaying
	switch {
	case snap.GameOver:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:         g.ticks,
		Mode:         string(g.mode),
		Lines:        snap.LinesCleared,
		Pieces:       snap.PiecesPlaced,
		Piece:        snap.Active.Type,
		X:            snap.Active.Origin.X,
		Y:            snap.Active.Origin.Y,
		Rotation:     snap.Active.Rotation,
		FallInterval: snap.FallInterval,
		Board:        snap.Grid.String(),
		State:        state,
	}
}
