package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// gridFromRows builds a grid from text rows. The last row is row 0; any
// character other than '.' or ' ' is a filled cell.
func gridFromRows(t *testing.T, rows ...string) Grid {
	t.Helper()
	require.LessOrEqual(t, len(rows), Height, "too many rows")

	var g Grid
	for i, row := range rows {
		y := len(rows) - 1 - i
		require.LessOrEqual(t, len(row), Width, "row %d too wide", y)
		for x, ch := range row {
			if ch != '.' && ch != ' ' {
				g[y][x] = CellOf(PieceT)
			}
		}
	}
	return g
}

// newTestEngine creates an engine on g with a scripted piece sequence.
// The caller spawns the first piece.
func newTestEngine(t *testing.T, cfg Config, g Grid, pieces ...PieceType) *Engine {
	t.Helper()
	return New(cfg, WithGrid(g), WithRandomizer(NewSequence(pieces...)))
}

// dropUntilBlocked moves down until the piece lands, returning the outcome of
// the landing move and how many rows the piece fell.
func dropUntilBlocked(t *testing.T, e *Engine) (Outcome, int) {
	t.Helper()
	for fell := 0; fell <= Height+4; fell++ {
		out := e.Move(DirDown)
		if out != OutcomeApplied {
			return out, fell
		}
	}
	t.Fatal("piece never landed")
	return OutcomeNone, 0
}

// occupancy renders the bottom n rows of g top first, '#' for filled cells.
func occupancy(g Grid, n int) []string {
	rows := make([]string, 0, n)
	for y := n - 1; y >= 0; y-- {
		b := make([]byte, Width)
		for x := range Width {
			b[x] = '.'
			if g[y][x].Filled() {
				b[x] = '#'
			}
		}
		rows = append(rows, string(b))
	}
	return rows
}
