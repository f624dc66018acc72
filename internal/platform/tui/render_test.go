package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(2, 0, '█', core.ColorCyan)
	s.SetColor(3, 0, '█', core.ColorCyan)
	s.SetColor(0, 1, 'x', core.Color(200)) // unknown colors render unstyled

	out := RenderScreen(s)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Equal(t, 6, lipgloss.Width(out))
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "██")
}

func TestColorStylesCoverPalette(t *testing.T) {
	for _, c := range []core.Color{
		core.ColorDefault, core.ColorRed, core.ColorGreen, core.ColorYellow,
		core.ColorBlue, core.ColorMagenta, core.ColorCyan, core.ColorWhite,
		core.ColorOrange, core.ColorGray, core.ColorBrightRed, core.ColorBrightWhite,
	} {
		_, ok := colorStyles[c]
		assert.True(t, ok, "no style for color %d", c)
	}
}
