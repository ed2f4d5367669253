package physics

import (
	"testing"

	"github.com/lixenwraith/island/config"
	"github.com/lixenwraith/island/core"
)

// stubRand returns queued values, then 1 (never triggers a reversal)
type stubRand struct {
	queue []int
	calls int
}

func (r *stubRand) Intn(n int) int {
	r.calls++
	if len(r.queue) > 0 {
		v := r.queue[0]
		r.queue = r.queue[1:]
		return v
	}
	if n > 1 {
		return 1
	}
	return 0
}

// newTestSurface returns a settled surface (Resized false) and the source that feeds it
func newTestSurface(t *testing.T, w, h int) (*core.Surface, *core.FixedSize) {
	t.Helper()
	src := &core.FixedSize{Width: w, Height: h}
	s, err := core.NewSurface(src)
	if err != nil {
		t.Fatalf("NewSurface failed: %v", err)
	}
	if err := s.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	return s, src
}

// resize changes the source dimensions and refreshes the surface
func resize(t *testing.T, s *core.Surface, src *core.FixedSize, w, h int) {
	t.Helper()
	src.Width, src.Height = w, h
	if err := s.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
}

func defaults() *config.Config {
	return config.Default()
}
