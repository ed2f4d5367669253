package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lixenwraith/island/core"
)

func TestWriter_Sequences(t *testing.T) {
	tests := []struct {
		name string
		draw func(w *Writer)
		want string
	}{
		{"clear", func(w *Writer) { w.Clear() }, "\x1b[2J\x1b[H"},
		{"move", func(w *Writer) { w.MoveCursor(3, 12) }, "\x1b[3;12H"},
		{"move large", func(w *Writer) { w.MoveCursor(1200, 1) }, "\x1b[1200;1H"},
		{"fg only", func(w *Writer) { w.SetColor(core.Blue, core.ColorNone) }, "\x1b[34m"},
		{"bg only", func(w *Writer) { w.SetColor(core.ColorNone, core.Blue) }, "\x1b[44m"},
		{"both bright", func(w *Writer) { w.SetColor(core.BrightWhite, core.BrightYellow) }, "\x1b[97;103m"},
		{"none", func(w *Writer) { w.SetColor(core.ColorNone, core.ColorNone) }, ""},
		{"glyph", func(w *Writer) { w.WriteGlyph("▁") }, "▁"},
		{"reset", func(w *Writer) { w.Reset() }, "\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			tt.draw(w)
			if buf.Len() != 0 {
				t.Fatalf("Expected nothing before Flush, got %q", buf.String())
			}
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestWriter_Frame(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Clear()
	w.MoveCursor(20, 1)
	w.SetColor(core.ColorNone, core.Blue)
	w.WriteGlyph(" ")
	w.WriteGlyph(" ")
	w.Reset()
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	want := "\x1b[2J\x1b[H\x1b[20;1H\x1b[44m  \x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriter_FlushError(t *testing.T) {
	w := NewWriter(failingWriter{})
	w.WriteGlyph("x")
	if err := w.Flush(); err == nil {
		t.Error("Expected flush error from failing writer")
	}
}

func TestIsQuit(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"q", []byte("q"), true},
		{"Q", []byte("Q"), true},
		{"ctrl-c", []byte{0x03}, true},
		{"escape", []byte{0x1b}, true},
		{"other key", []byte("a"), false},
		{"arrow up", []byte("\x1b[A"), false},
		{"arrow then q", []byte("\x1b[Aq"), true},
		{"timeout", nil, false},
	}
	for _, tt := range tests {
		if got := isQuit(tt.data); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
