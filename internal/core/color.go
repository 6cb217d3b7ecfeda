package core

// Color represents a foreground color for a screen cell.
// Uses ANSI color codes for terminal compatibility.
type Color uint8

// Predefined colors for match elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorCyan
	ColorYellow
	ColorBrightWhite
	ColorBrightMagenta
)
