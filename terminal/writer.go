package terminal

import (
	"bufio"
	"io"

	"github.com/lixenwraith/island/core"
)

// outputBufferSize holds a full frame of a large terminal in one flush
const outputBufferSize = 131072 // 128KB

// Writer encodes draw operations as ANSI sequences into a buffered stream
// Nothing reaches the underlying writer until Flush
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps out with a frame-sized buffer
func NewWriter(out io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(out, outputBufferSize)}
}

// Clear erases the screen and homes the cursor
func (w *Writer) Clear() {
	w.w.Write(csiClear)
}

// MoveCursor positions the cursor (1-indexed)
func (w *Writer) MoveCursor(row, col int) {
	writeCursorPos(w.w, row, col)
}

// SetColor selects foreground and background; ColorNone leaves a channel unchanged
func (w *Writer) SetColor(fg, bg core.Color) {
	if !fg.Valid() && !bg.Valid() {
		return
	}
	writeSGR(w.w, fg, bg)
}

// WriteGlyph writes g at the cursor
func (w *Writer) WriteGlyph(g string) {
	w.w.WriteString(g)
}

// Reset restores default attributes
func (w *Writer) Reset() {
	w.w.Write(csiSGR0)
}

// Flush sends the buffered frame; bufio keeps the first write error sticky
func (w *Writer) Flush() error {
	return w.w.Flush()
}
