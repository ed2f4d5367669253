package core

// Color is an index into the 16-entry ANSI-compatible palette, decoupled from tcell
type Color int8

// ColorNone leaves a channel unchanged when passed to a color change
const ColorNone Color = -1

// Standard palette indices (0-7 normal, 8-15 bright)
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Valid reports whether c addresses a palette entry
func (c Color) Valid() bool {
	return c >= Black && c <= BrightWhite
}

// Bright reports whether c is in the high-intensity half of the palette
func (c Color) Bright() bool {
	return c >= BrightBlack && c <= BrightWhite
}

// SGRForeground returns the SGR parameter selecting c as foreground (30-37, 90-97)
func (c Color) SGRForeground() int {
	if c.Bright() {
		return 90 + int(c-BrightBlack)
	}
	return 30 + int(c)
}

// SGRBackground returns the SGR parameter selecting c as background (40-47, 100-107)
func (c Color) SGRBackground() int {
	if c.Bright() {
		return 100 + int(c-BrightBlack)
	}
	return 40 + int(c)
}
