package core

import (
	"errors"
	"testing"
)

func TestNewSurface_FirstSampleIsResize(t *testing.T) {
	src := &FixedSize{Width: 80, Height: 24}
	s, err := NewSurface(src)
	if err != nil {
		t.Fatalf("NewSurface failed: %v", err)
	}
	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("Expected 80x24, got %dx%d", s.Width(), s.Height())
	}
	if !s.Resized() {
		t.Error("Expected first sample to report resize")
	}
}

func TestNewSurface_QueryFailureIsFatal(t *testing.T) {
	src := &FixedSize{Err: errors.New("no tty")}
	if _, err := NewSurface(src); err == nil {
		t.Fatal("Expected error from failing initial query")
	}

	src = &FixedSize{Width: 0, Height: 24}
	_, err := NewSurface(src)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}
}

func TestSurface_Refresh(t *testing.T) {
	src := &FixedSize{Width: 40, Height: 20}
	s, err := NewSurface(src)
	if err != nil {
		t.Fatalf("NewSurface failed: %v", err)
	}

	tests := []struct {
		name        string
		w, h        int
		err         error
		wantW       int
		wantH       int
		wantResized bool
		wantErr     bool
	}{
		{"unchanged", 40, 20, nil, 40, 20, false, false},
		{"wider", 60, 20, nil, 60, 20, true, false},
		{"unchanged again", 60, 20, nil, 60, 20, false, false},
		{"taller", 60, 30, nil, 60, 30, true, false},
		{"query failure keeps size", 10, 10, errors.New("ioctl"), 60, 30, false, true},
		{"zero size keeps size", 0, 0, nil, 60, 30, false, true},
		{"recover after failure", 60, 30, nil, 60, 30, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src.Width, src.Height, src.Err = tt.w, tt.h, tt.err
			err := s.Refresh()
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if s.Width() != tt.wantW || s.Height() != tt.wantH {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantW, tt.wantH, s.Width(), s.Height())
			}
			if s.Resized() != tt.wantResized {
				t.Errorf("Expected resized=%v, got %v", tt.wantResized, s.Resized())
			}
		})
	}
}
