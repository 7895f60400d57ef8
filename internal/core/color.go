package core

// Color is a palette index for a screen cell's foreground.
// The platform layer maps each value to a terminal color.
type Color uint8

// Palette shared by all games.
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
)

// rowPalette cycles through distinct colors for row-banded elements
// such as brick walls and alien formations.
var rowPalette = [...]Color{
	ColorBrightRed,
	ColorOrange,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightBlue,
	ColorBrightMagenta,
}

// RowColor returns a stable color for the given row index.
func RowColor(row int) Color {
	if row < 0 {
		row = -row
	}
	return rowPalette[row%len(rowPalette)]
}
