package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal or CSS color.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack         // Rendered adaptively so it stays visible on dark terminals
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorBrown
	ColorGray
	ColorBrightWhite
)

// String returns the color's name as used in JSON snapshots.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorBrown:
		return "brown"
	case ColorGray:
		return "gray"
	case ColorBrightWhite:
		return "white"
	default:
		return "default"
	}
}
