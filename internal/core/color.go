package core

// Color is a foreground color for a screen cell. The terminal layer maps
// each value to an ANSI 256-color code.
type Color uint8

// Palette used by the board and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrightRed
	ColorBrightWhite
)
