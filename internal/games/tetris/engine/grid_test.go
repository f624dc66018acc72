package engine

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellEncoding(t *testing.T) {
	assert.False(t, Empty.Filled())
	_, ok := Empty.Piece()
	assert.False(t, ok)

	for _, pt := range AllPieces {
		c := CellOf(pt)
		require.True(t, c.Filled(), pt.String())
		got, ok := c.Piece()
		require.True(t, ok)
		assert.Equal(t, pt, got)
	}
}

func TestGridSetDropsOutOfBounds(t *testing.T) {
	var g Grid
	for _, p := range []Point{{-1, 0}, {Width, 0}, {0, -1}, {0, Height}, {4, Height + 3}} {
		g.Set(p, CellOf(PieceT))
		assert.Equal(t, Empty, g.At(p))
	}
	assert.Equal(t, 0, g.FilledCount())

	g.Set(Point{X: 9, Y: 19}, CellOf(PieceJ))
	assert.Equal(t, CellOf(PieceJ), g.At(Point{X: 9, Y: 19}))
	assert.Equal(t, 1, g.FilledCount())
}

func TestClearFullRowsShiftsEverythingAbove(t *testing.T) {
	g := gridFromRows(t,
		"#.........",
		"##########",
		"##########",
		".#........",
		"##########",
	)
	require.Equal(t, 3, g.ClearFullRows())
	assert.Equal(t, []string{
		"..........",
		"..........",
		"..........",
		"#.........",
		".#........",
	}, occupancy(g, 5))
}

func TestClearFullRowsTopRow(t *testing.T) {
	var g Grid
	for x := range Width {
		g[Height-1][x] = CellOf(PieceI)
	}
	g[Height-2][0] = CellOf(PieceO)

	require.Equal(t, 1, g.ClearFullRows())
	assert.True(t, g[Height-1].Empty())
	assert.Equal(t, CellOf(PieceO), g[Height-2][0])
}

func TestClearFullRowsRandomBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 200; round++ {
		var g Grid
		var kept []Row
		full := 0
		for y := range Height {
			switch rng.Intn(3) {
			case 0:
				for x := range Width {
					g[y][x] = CellOf(PieceL)
				}
				full++
			case 1:
				for x := range Width {
					if rng.Intn(2) == 0 {
						g[y][x] = CellOf(PieceS)
					}
				}
				g[y][rng.Intn(Width)] = Empty
				kept = append(kept, g[y])
			default:
				kept = append(kept, g[y])
			}
		}

		require.Equal(t, full, g.ClearFullRows(), "round %d", round)
		for y := range Height {
			require.False(t, g[y].Full(), "round %d row %d", round, y)
			if y < len(kept) {
				require.Equal(t, kept[y], g[y], "round %d row %d", round, y)
			} else {
				require.True(t, g[y].Empty(), "round %d row %d", round, y)
			}
		}
	}
}

func TestGridString(t *testing.T) {
	var g Grid
	g[0][0] = CellOf(PieceI)
	g[1][9] = CellOf(PieceZ)

	lines := strings.Split(g.String(), "\n")
	require.Len(t, lines, Height)
	assert.Equal(t, "I.........", lines[Height-1])
	assert.Equal(t, ".........Z", lines[Height-2])
	assert.Equal(t, "..........", lines[0])
}

func TestGridReadsWorkOnSnapshotValues(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), gridFromRows(t, "##........"), PieceO)
	require.Equal(t, OutcomeApplied, e.Spawn())

	assert.Equal(t, 2, e.Snapshot().Grid.FilledCount())
	assert.True(t, e.Snapshot().Grid.At(Point{X: 1, Y: 0}).Filled())
	assert.False(t, e.Snapshot().Grid.InBounds(Point{X: 0, Y: Height}))

	snap := e.Snapshot()
	assert.Equal(t, snap.Grid.String(), fmt.Sprint(snap.Grid))
}
