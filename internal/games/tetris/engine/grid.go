package engine

import "strings"

// Board dimensions.
const (
	Width  = 10
	Height = 20
)

// Cell is a single grid cell. Zero is empty; an occupied cell stores the
// type of the piece that landed there plus one.
type Cell uint8

// Empty is the zero cell.
const Empty Cell = 0

// CellOf returns the occupancy marker written for a landed piece of type t.
func CellOf(t PieceType) Cell {
	return Cell(t) + 1
}

// Filled reports whether the cell is occupied.
func (c Cell) Filled() bool {
	return c != Empty
}

// Piece returns the piece type that filled the cell.
func (c Cell) Piece() (PieceType, bool) {
	if c == Empty {
		return 0, false
	}
	t := PieceType(c - 1)
	return t, t.Valid()
}

// Row is one horizontal line of the board.
type Row [Width]Cell

// Full reports whether every cell of the row is occupied.
func (r Row) Full() bool {
	for _, c := range r {
		if c == Empty {
			return false
		}
	}
	return true
}

// Empty reports whether no cell of the row is occupied.
func (r Row) Empty() bool {
	for _, c := range r {
		if c != Empty {
			return false
		}
	}
	return true
}

// Grid is the landed-cell matrix. Index by [y][x]; row 0 is the bottom row.
// Grid is a value type: assigning it copies the whole board.
type Grid [Height]Row

// InBounds returns true if p lies on the visible board.
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// At returns the cell at p, or Empty when p is off the board.
func (g Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return Empty
	}
	return g[p.Y][p.X]
}

// Set writes c at p. Out-of-bounds writes are silently dropped.
func (g *Grid) Set(p Point, c Cell) {
	if g.InBounds(p) {
		g[p.Y][p.X] = c
	}
}

// FilledCount returns the number of occupied cells.
func (g Grid) FilledCount() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if g[y][x] != Empty {
				n++
			}
		}
	}
	return n
}

// ClearFullRows removes every full row, compacting the rows above it down.
// Rows are scanned from the bottom; after a clear the same index is examined
// again because the row above has moved into it. Returns the number of rows
// removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for y := 0; y < Height; y++ {
		if !g[y].Full() {
			continue
		}
		g.clearRow(y)
		g.shiftDown(y + 1)
		cleared++
		y--
	}
	return cleared
}

// clearRow empties row y.
func (g *Grid) clearRow(y int) {
	g[y] = Row{}
}

// shiftDown moves every row from start upward down by one.
// The top row is left empty.
func (g *Grid) shiftDown(start int) {
	if start < 1 {
		start = 1
	}
	for y := start; y < Height; y++ {
		g[y-1] = g[y]
	}
	g[Height-1] = Row{}
}

// String renders the grid top row first, one line per row.
// Empty cells are '.', occupied cells use the piece letter.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := Height - 1; y >= 0; y-- {
		for x := range Width {
			c := g[y][x]
			if t, ok := c.Piece(); ok {
				sb.WriteString(t.String())
			} else if c.Filled() {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
