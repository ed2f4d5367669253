package core

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a size query yields a non-positive dimension
var ErrInvalidSize = errors.New("invalid terminal size")

// SizeSource reports the current terminal dimensions in cells
type SizeSource interface {
	Size() (width, height int, err error)
}

// Surface holds the terminal dimensions sampled once per frame
// Resized is true only on the frame where width or height changed since the previous sample
type Surface struct {
	src     SizeSource
	width   int
	height  int
	resized bool
}

// NewSurface samples the source once; failure here is an initialization failure
// The surface starts at 0x0, so a successful first sample always reports a resize
func NewSurface(src SizeSource) (*Surface, error) {
	s := &Surface{src: src}
	w, h, err := query(src)
	if err != nil {
		return nil, fmt.Errorf("initial size query: %w", err)
	}
	s.apply(w, h)
	return s, nil
}

// Refresh re-samples the source. A failed query keeps the previous dimensions
// and is reported as "no change"; the error is returned for logging only
func (s *Surface) Refresh() error {
	w, h, err := query(s.src)
	if err != nil {
		s.resized = false
		return err
	}
	s.apply(w, h)
	return nil
}

// Width returns the sampled width in columns
func (s *Surface) Width() int { return s.width }

// Height returns the sampled height in rows
func (s *Surface) Height() int { return s.height }

// Resized reports whether the last sample changed the dimensions
func (s *Surface) Resized() bool { return s.resized }

func (s *Surface) apply(w, h int) {
	if w != s.width || h != s.height {
		s.width = w
		s.height = h
		s.resized = true
		return
	}
	s.resized = false
}

func query(src SizeSource) (int, int, error) {
	w, h, err := src.Size()
	if err != nil {
		return 0, 0, err
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return w, h, nil
}

// FixedSize is a SizeSource with settable dimensions, used for headless runs and tests
type FixedSize struct {
	Width  int
	Height int
	Err    error
}

// Size implements SizeSource
func (f *FixedSize) Size() (int, int, error) {
	if f.Err != nil {
		return 0, 0, f.Err
	}
	return f.Width, f.Height, nil
}
