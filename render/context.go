package render

import "github.com/lixenwraith/island/core"

// colorMode is the pen currently selected for the cell scan
type colorMode uint8

const (
	modeUnknown colorMode = iota
	modeCloud
	modeIsland
	modeWaterFG
	modeWaterBG
)

// frameContext tracks color mode and cursor continuity for one frame
// Built fresh per frame and discarded; it holds no simulation state
type frameContext struct {
	sink Sink
	mode colorMode

	// Colors selected by the current mode, sent lazily on the next write
	wantFg core.Color
	wantBg core.Color

	// Colors last sent to the sink; ColorNone until first set
	haveFg core.Color
	haveBg core.Color

	// move is set after a gap; the next painted cell emits an explicit MoveCursor
	move bool
}

func newFrameContext(sink Sink) frameContext {
	return frameContext{
		sink:   sink,
		wantFg: core.ColorNone,
		wantBg: core.ColorNone,
		haveFg: core.ColorNone,
		haveBg: core.ColorNone,
		move:   true,
	}
}

// beginRow resets mode and forces repositioning at the row start
func (f *frameContext) beginRow() {
	f.mode = modeUnknown
	f.move = true
}

// switchMode enters mode m; ColorNone keeps the channel's current selection
func (f *frameContext) switchMode(m colorMode, fg, bg core.Color) {
	f.mode = m
	if fg != core.ColorNone {
		f.wantFg = fg
	}
	if bg != core.ColorNone {
		f.wantBg = bg
	}
}

// place positions the cursor at (row, col) if continuity was broken
func (f *frameContext) place(row, col int) {
	if f.move {
		f.sink.MoveCursor(row+1, col+1)
		f.move = false
	}
}

// skip leaves a cell untouched; the cursor no longer tracks the scan
func (f *frameContext) skip() {
	f.move = true
}

// write emits only the color channels that differ from what the sink has, then the glyph
func (f *frameContext) write(g string) {
	fg, bg := core.ColorNone, core.ColorNone
	if f.wantFg != f.haveFg {
		fg = f.wantFg
	}
	if f.wantBg != f.haveBg {
		bg = f.wantBg
	}
	if fg != core.ColorNone || bg != core.ColorNone {
		f.sink.SetColor(fg, bg)
		f.haveFg, f.haveBg = f.wantFg, f.wantBg
	}
	f.sink.WriteGlyph(g)
}
