package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Each board cell is drawn two characters wide so it looks square.
const (
	cellW  = 2
	boardW = engine.Width*cellW + 2
	boardH = engine.Height + 2
	panelW = 20
	gap    = 2

	minScreenW = boardW
	minScreenH = boardH
)

const (
	blockRune  = '█'
	emptyRune  = '·'
	activeRune = '▓'
)

var pieceColors = [engine.PieceCount]core.Color{
	engine.PieceI: core.ColorCyan,
	engine.PieceO: core.ColorYellow,
	engine.PieceT: core.ColorMagenta,
	engine.PieceS: core.ColorGreen,
	engine.PieceZ: core.ColorRed,
	engine.PieceJ: core.ColorBlue,
	engine.PieceL: core.ColorOrange,
}

// PieceColor returns the display color of a piece type.
func PieceColor(t engine.PieceType) core.Color {
	if !t.Valid() {
		return core.ColorDefault
	}
	return pieceColors[t]
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.eng.Snapshot()
	board, panel := layout(dst)

	g.renderBoard(dst, board, snap)
	if panel.W > 0 {
		g.renderPanel(dst, panel, snap)
	}

	switch {
	case snap.GameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Lines: %d  R to restart", snap.LinesCleared))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// layout places the board and, when it fits, the side panel.
func layout(dst *core.Screen) (board, panel core.Rect) {
	full := dst.Bounds()
	if dst.Width() < boardW+gap+panelW {
		return core.CenteredIn(full, boardW, boardH), core.Rect{}
	}
	area := core.CenteredIn(full, boardW+gap+panelW, boardH)
	board = core.NewRect(area.X, area.Y, boardW, boardH)
	panel = core.NewRect(board.Right()+gap, area.Y, panelW, boardH)
	return board, panel
}

// screenPos converts a board cell to the screen position of its left half.
// Board row 0 is the bottom row.
func screenPos(board core.Rect, p engine.Point) (int, int) {
	return board.X + 1 + p.X*cellW, board.Y + 1 + (engine.Height - 1 - p.Y)
}

func (g *Game) renderBoard(dst *core.Screen, board core.Rect, snap engine.Snapshot) {
	dst.DrawBox(board, core.ColorGray)

	for y := range engine.Height {
		for x := range engine.Width {
			p := engine.Point{X: x, Y: y}
			sx, sy := screenPos(board, p)
			if t, ok := snap.Grid.At(p).Piece(); ok {
				drawCell(dst, sx, sy, blockRune, PieceColor(t))
			} else {
				dst.SetColor(sx, sy, emptyRune, core.ColorGray)
				dst.SetColor(sx+1, sy, ' ', core.ColorGray)
			}
		}
	}

	if !snap.HasActive {
		return
	}
	color := PieceColor(snap.Active.Type)
	if snap.GameOver {
		color = core.ColorBrightRed
	}
	for _, p := range snap.Cells {
		if p.Y < 0 || p.Y >= engine.Height {
			continue
		}
		sx, sy := screenPos(board, p)
		drawCell(dst, sx, sy, activeRune, color)
	}
}

func drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	for i := range cellW {
		dst.SetColor(x+i, y, r, c)
	}
}

func (g *Game) renderPanel(dst *core.Screen, panel core.Rect, snap engine.Snapshot) {
	x, y := panel.X, panel.Y+1
	line := func(text string, c core.Color) {
		dst.DrawTextColor(x, y, text, c)
		y++
	}

	line(g.Title(), core.ColorBrightWhite)
	y++
	line(fmt.Sprintf("Lines   %d", snap.LinesCleared), core.ColorDefault)
	line(fmt.Sprintf("Pieces  %d", snap.PiecesPlaced), core.ColorDefault)
	line(fmt.Sprintf("Time    %s", formatPlayed(g.Played())), core.ColorDefault)
	y++

	if snap.HasActive {
		line(fmt.Sprintf("Piece   %s", snap.Active.Type), PieceColor(snap.Active.Type))
		line(fmt.Sprintf("Angle   %d°", snap.Active.Rotation.Degrees()), core.ColorDefault)
	}
	speed := fmt.Sprintf("Fall    %.2fs", snap.FallInterval.Seconds())
	if g.softDropTicks > 0 {
		speed += " ↓"
	}
	line(speed, core.ColorDefault)
	if g.difficulty.IsEnabled() {
		line(fmt.Sprintf("Level   %.0f%%", 100*g.difficulty.Level(g.progress(g.eng.Stats()))), core.ColorDefault)
	}
	y++

	if g.last == engine.OutcomeRejected {
		line("blocked", core.ColorGray)
	}
	if snap.LastCleared > 0 && !snap.GameOver {
		line(fmt.Sprintf("+%d line(s)", snap.LastCleared), core.ColorGreen)
	}
}

func formatPlayed(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.CenteredIn(dst.Bounds(), w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCenteredColor(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2)
}
