// Package engine implements the Tetris board: piece spawning, movement and
// rotation validation, landing and line clearing on a 10x20 grid.
//
// The package is UI-agnostic and has no timing source of its own. Hosts drive
// it with Tick and the command methods, and read state back through Snapshot.
package engine

// PieceType identifies one of the seven tetrominoes.
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// PieceCount is the number of distinct piece types.
const PieceCount = 7

// AllPieces lists every piece type in declaration order.
var AllPieces = [PieceCount]PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

// String returns the single-letter name of the piece.
func (p PieceType) String() string {
	switch p {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

// Valid reports whether p is one of the seven piece types.
func (p PieceType) Valid() bool {
	return p < PieceCount
}

// Point is a cell coordinate. X grows to the right, Y grows upward.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rotation is the number of clockwise quarter turns applied to a piece.
type Rotation uint8

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

// Next returns the rotation a quarter turn clockwise from r.
func (r Rotation) Next() Rotation {
	return (r + 1) % 4
}

// Prev returns the rotation a quarter turn counter-clockwise from r.
func (r Rotation) Prev() Rotation {
	return (r + 3) % 4
}

// Degrees returns the rotation angle: 0, 90, 180 or 270.
func (r Rotation) Degrees() int {
	return int(r%4) * 90
}

// Mask holds the four occupied cells of a piece relative to its origin.
type Mask [4]Point

// shapeDef describes a piece's spawn orientation inside its bounding box.
// Rows are listed top first. Pieces sit on the low rows of their box so the
// whole piece is on the visible board at the spawn row.
type shapeDef struct {
	box  int
	rows []string
}

var shapeDefs = [PieceCount]shapeDef{
	PieceI: {box: 4, rows: []string{"....", "....", "####", "...."}},
	PieceO: {box: 2, rows: []string{"##", "##"}},
	PieceT: {box: 3, rows: []string{"...", ".#.", "###"}},
	PieceS: {box: 3, rows: []string{"...", ".##", "##."}},
	PieceZ: {box: 3, rows: []string{"...", "##.", ".##"}},
	PieceJ: {box: 3, rows: []string{"...", "#..", "###"}},
	PieceL: {box: 3, rows: []string{"...", "..#", "###"}},
}

// masks is indexed by piece type then rotation.
var masks [PieceCount][4]Mask

func init() {
	for t, def := range shapeDefs {
		m := parseMask(def.rows)
		for r := range 4 {
			masks[t][r] = m
			m = rotateCW(m, def.box)
		}
	}
}

// parseMask converts box rows (top first) into origin-relative cells.
func parseMask(rows []string) Mask {
	var m Mask
	n := 0
	for r, row := range rows {
		for x, ch := range row {
			if ch != '#' {
				continue
			}
			m[n] = Point{X: x, Y: len(rows) - 1 - r}
			n++
		}
	}
	return m
}

// rotateCW turns a mask a quarter turn clockwise inside a box of the given size.
func rotateCW(m Mask, box int) Mask {
	var out Mask
	for i, p := range m {
		out[i] = Point{X: p.Y, Y: box - 1 - p.X}
	}
	return out
}

// MaskOf returns the occupied cells of piece t at rotation r.
func MaskOf(t PieceType, r Rotation) Mask {
	if !t.Valid() {
		return Mask{}
	}
	return masks[t][r%4]
}

// BoxSize returns the side of the square bounding box a piece rotates in.
func BoxSize(t PieceType) int {
	if !t.Valid() {
		return 0
	}
	return shapeDefs[t].box
}
