package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/island/core"
)

// Screen adapts a tcell.Screen to the animation's size source and draw sink
// tcell keeps its own cell buffer, so Flush only shows the diff
type Screen struct {
	screen tcell.Screen
	cond   *runewidth.Condition

	style tcell.Style
	x, y  int

	quitCh  chan struct{}
	once    sync.Once
	done    chan struct{}
	started bool
}

// NewScreen wraps s; Init must be called before drawing
func NewScreen(s tcell.Screen) *Screen {
	cond := runewidth.NewCondition()
	// Box and geometric glyphs are single width regardless of locale
	cond.EastAsianWidth = false

	return &Screen{
		screen: s,
		cond:   cond,
		style:  tcell.StyleDefault,
		quitCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Init initializes the underlying screen and starts the event loop
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	s.started = true
	Go(s.pollLoop)
	return nil
}

// Fini restores the terminal and waits for the event loop to exit
func (s *Screen) Fini() {
	if !s.started {
		return
	}
	s.started = false
	s.screen.Fini()
	<-s.done
}

// Size returns the current screen dimensions
func (s *Screen) Size() (int, int, error) {
	w, h := s.screen.Size()
	return w, h, nil
}

// Quit returns a channel closed on q, Escape or Ctrl-C
func (s *Screen) Quit() <-chan struct{} {
	return s.quitCh
}

func (s *Screen) Clear() {
	s.screen.Clear()
	s.x, s.y = 0, 0
}

// MoveCursor positions the draw cursor (1-indexed)
func (s *Screen) MoveCursor(row, col int) {
	s.x, s.y = col-1, row-1
}

func (s *Screen) SetColor(fg, bg core.Color) {
	if fg.Valid() {
		s.style = s.style.Foreground(tcell.PaletteColor(int(fg)))
	}
	if bg.Valid() {
		s.style = s.style.Background(tcell.PaletteColor(int(bg)))
	}
}

// WriteGlyph places each rune of g at the cursor and advances by its display width
func (s *Screen) WriteGlyph(g string) {
	for _, r := range g {
		s.screen.SetContent(s.x, s.y, r, nil, s.style)
		w := s.cond.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		s.x += w
	}
}

func (s *Screen) Reset() {
	s.style = tcell.StyleDefault
}

// Flush shows the frame; tcell reports no errors here
func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}

func (s *Screen) pollLoop() {
	defer close(s.done)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuitKey(ev) {
				s.once.Do(func() { close(s.quitCh) })
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
