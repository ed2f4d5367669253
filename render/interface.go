package render

import "github.com/lixenwraith/island/core"

// Sink receives the draw operations of one frame, in order
type Sink interface {
	// Clear clears the screen and homes the cursor
	Clear()

	// MoveCursor positions the cursor (1-indexed)
	MoveCursor(row, col int)

	// SetColor changes foreground and/or background; core.ColorNone leaves a channel as is
	SetColor(fg, bg core.Color)

	// WriteGlyph writes at the cursor and advances it
	WriteGlyph(g string)

	// Reset restores default colors
	Reset()
}
