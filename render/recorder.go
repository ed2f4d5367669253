package render

import "github.com/lixenwraith/island/core"

// OpKind identifies a draw operation
type OpKind uint8

const (
	OpClear OpKind = iota
	OpMoveCursor
	OpSetColor
	OpWriteGlyph
	OpReset
)

// Op is one recorded draw operation
type Op struct {
	Kind  OpKind
	Row   int // OpMoveCursor, 1-indexed
	Col   int // OpMoveCursor, 1-indexed
	Fg    core.Color
	Bg    core.Color
	Glyph string
}

// Recorder is a Sink that keeps the operation stream, for headless runs and tests
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Clear() { r.Ops = append(r.Ops, Op{Kind: OpClear}) }

func (r *Recorder) MoveCursor(row, col int) {
	r.Ops = append(r.Ops, Op{Kind: OpMoveCursor, Row: row, Col: col})
}

func (r *Recorder) SetColor(fg, bg core.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpSetColor, Fg: fg, Bg: bg})
}

func (r *Recorder) WriteGlyph(g string) {
	r.Ops = append(r.Ops, Op{Kind: OpWriteGlyph, Glyph: g})
}

func (r *Recorder) Reset() { r.Ops = append(r.Ops, Op{Kind: OpReset}) }

// Count returns the number of recorded operations of kind k
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Cell is one replayed screen cell
type Cell struct {
	Rune rune
	Fg   core.Color
	Bg   core.Color
}

// Replay applies ops to a blank width x height screen the way a terminal would
// Colors start as ColorNone (terminal default); every rune is one column; writes past the right edge are dropped
func Replay(ops []Op, width, height int) [][]Cell {
	screen := make([][]Cell, height)
	blank := func() {
		for y := range screen {
			screen[y] = make([]Cell, width)
			for x := range screen[y] {
				screen[y][x] = Cell{Rune: ' ', Fg: core.ColorNone, Bg: core.ColorNone}
			}
		}
	}
	blank()

	row, col := 0, 0
	fg, bg := core.ColorNone, core.ColorNone
	for _, op := range ops {
		switch op.Kind {
		case OpClear:
			blank()
			row, col = 0, 0
		case OpMoveCursor:
			row, col = op.Row-1, op.Col-1
		case OpSetColor:
			if op.Fg != core.ColorNone {
				fg = op.Fg
			}
			if op.Bg != core.ColorNone {
				bg = op.Bg
			}
		case OpReset:
			fg, bg = core.ColorNone, core.ColorNone
		case OpWriteGlyph:
			for _, r := range op.Glyph {
				if row >= 0 && row < height && col >= 0 && col < width {
					screen[row][col] = Cell{Rune: r, Fg: fg, Bg: bg}
				}
				col++
			}
		}
	}
	return screen
}
