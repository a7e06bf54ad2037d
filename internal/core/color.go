package core

// Color is a palette index for a screen cell's foreground. The terminal
// host maps each index to an ANSI 256-color code.
type Color uint8

// Palette entries. Glyph sheets refer to them by name.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown // Branches and ledges
	ColorLeaf  // Dark foliage behind the playfield
)
