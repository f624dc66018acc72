package engine

import "time"

// Snapshot is a read-only copy of the board taken after a mutation.
// Renderers read snapshots; they never touch the engine directly.
type Snapshot struct {
	Grid      Grid
	Active    ActivePiece
	HasActive bool
	// Cells are the board coordinates of the active piece's collision mask.
	// Some may lie above the visible board.
	Cells        []Point
	GameOver     bool
	FallInterval time.Duration
	LinesCleared int // Total rows removed since the board was created
	PiecesPlaced int
	LastCleared  int // Rows removed by the most recent landing
}

// Snapshot returns the current board state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Grid:         e.grid,
		Active:       e.active,
		HasActive:    e.hasActive,
		GameOver:     e.gameOver,
		FallInterval: e.fallInterval,
		LinesCleared: e.linesCleared,
		PiecesPlaced: e.piecesPlaced,
		LastCleared:  e.lastCleared,
	}
	if e.hasActive {
		s.Cells = e.cells()
	}
	return s
}

// Occupied reports whether the visible cell at p is filled by the grid or
// by the active piece.
func (s Snapshot) Occupied(p Point) bool {
	if s.Grid.At(p).Filled() {
		return true
	}
	for _, c := range s.Cells {
		if c == p {
			return true
		}
	}
	return false
}

// Stats are the engine's running counters.
type Stats struct {
	LinesCleared int
	PiecesPlaced int
	LastCleared  int
}

// Stats returns the counters without copying the grid.
func (e *Engine) Stats() Stats {
	return Stats{
		LinesCleared: e.linesCleared,
		PiecesPlaced: e.piecesPlaced,
		LastCleared:  e.lastCleared,
	}
}
