package core

// Color represents a foreground color for a screen cell.
// Values are ANSI 256-color codes; ColorDefault leaves the terminal color alone.
type Color int16

// ColorDefault renders with the terminal's default foreground.
const ColorDefault Color = -1

// Named colors used by the scenes.
const (
	ColorRed        Color = 9
	ColorGreen      Color = 2
	ColorYellow     Color = 11
	ColorCyan       Color = 14
	ColorWhite      Color = 15
	ColorOrange     Color = 208
	ColorGray       Color = 245
	ColorGold       Color = 220
	ColorLimeGreen  Color = 118
	ColorDarkGreen  Color = 22
	ColorTomato     Color = 203
	ColorSlateGrey  Color = 103
	ColorNavy       Color = 17
	ColorLowLight   Color = 34 // neon button idle glow
	ColorHighLight  Color = 46 // neon button hover glow
	ColorBackground Color = 234
)

// grayLevels is the number of steps in the ANSI grayscale ramp (232-255).
const grayLevels = 24

// Gray returns a color from the grayscale ramp, 0 being darkest.
// Levels outside the ramp are clamped.
func Gray(level int) Color {
	return Color(232 + Clamp(level, 0, grayLevels-1))
}

// GrayAlpha maps an 8-bit alpha value onto the grayscale ramp.
func GrayAlpha(alpha int) Color {
	return Gray(Clamp(alpha, 0, 255) * (grayLevels - 1) / 255)
}
