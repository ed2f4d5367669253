package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/island/config"
	"github.com/lixenwraith/island/core"
	"github.com/lixenwraith/island/physics"
)

// steadyRand never reverses the cloud
type steadyRand struct{}

func (steadyRand) Intn(n int) int {
	if n > 1 {
		return 1
	}
	return 0
}

func newTestWorld(t *testing.T, w, h int) (*World, *core.FixedSize) {
	t.Helper()
	src := &core.FixedSize{Width: w, Height: h}
	world, err := NewWorld(config.Default(), src, steadyRand{})
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return world, src
}

func TestNewWorld_InitFailure(t *testing.T) {
	src := &core.FixedSize{Err: errors.New("not a tty")}
	if _, err := NewWorld(config.Default(), src, steadyRand{}); err == nil {
		t.Fatal("Expected initialization failure")
	}
}

// TestWorld_ColumnsMatchWidth verifies len(columns) == width after every frame, across resizes
func TestWorld_ColumnsMatchWidth(t *testing.T) {
	world, src := newTestWorld(t, 40, 20)

	sizes := []int{40, 40, 55, 55, 10, 3, 120, 120, 40}
	for i, width := range sizes {
		src.Width = width
		rep := world.Step()
		if world.Water.Len() != world.Surface.Width() {
			t.Fatalf("Frame %d: %d columns for width %d", rep.Frame, world.Water.Len(), world.Surface.Width())
		}
		wantResized := i > 0 && sizes[i-1] != width
		if rep.Resized != wantResized {
			t.Errorf("Frame %d: expected resized=%v, got %v", rep.Frame, wantResized, rep.Resized)
		}
	}
}

// TestWorld_SizeFailureIsNoChange verifies a failed query mid-run leaves the scene running
func TestWorld_SizeFailureIsNoChange(t *testing.T) {
	world, src := newTestWorld(t, 40, 20)
	world.Step()

	src.Err = errors.New("ioctl failed")
	rep := world.Step()
	if rep.SizeErr == nil {
		t.Error("Expected size error reported")
	}
	if rep.Resized {
		t.Error("Expected failed query treated as no resize")
	}
	if world.Surface.Width() != 40 || world.Water.Len() != 40 {
		t.Errorf("Expected dimensions kept, got width %d columns %d", world.Surface.Width(), world.Water.Len())
	}
}

// TestWorld_RainCycle runs until the first drip lands and checks the coupling
func TestWorld_RainCycle(t *testing.T) {
	world, _ := newTestWorld(t, 40, 20)

	var landed []physics.Impact
	for i := 0; i < 200 && len(landed) == 0; i++ {
		rep := world.Step()
		if rep.SpawnErr != nil {
			t.Fatalf("Frame %d: spawn failed: %v", rep.Frame, rep.SpawnErr)
		}
		landed = rep.Impacts
	}

	if len(landed) == 0 {
		t.Fatal("Expected a drip to land within 200 frames")
	}
	// First drop at frame 30 under the cloud: position 158+30 = 188 -> column 23, drip at 25
	if landed[0].Column != 25 {
		t.Errorf("Expected impact on column 25, got %d", landed[0].Column)
	}
	if world.Water.TargetHeight() <= 8 {
		t.Errorf("Expected target height raised, got %f", world.Water.TargetHeight())
	}
	if math.Abs(world.Water.TargetHeight()-(8+8.0/40)) > 1e-12 {
		t.Errorf("Expected target %f, got %f", 8+8.0/40, world.Water.TargetHeight())
	}
}

// TestWorld_PoolIsHighWaterMark verifies the pool size stays at the peak concurrent count
func TestWorld_PoolIsHighWaterMark(t *testing.T) {
	world, _ := newTestWorld(t, 40, 20)

	peak := 0
	for i := 0; i < 600; i++ {
		world.Step()
		peak = max(peak, world.Drips.Active())
		if world.Drips.Len() < peak {
			t.Fatalf("Pool shrank below peak: len %d, peak %d", world.Drips.Len(), peak)
		}
	}
	if world.Drips.Len() != peak {
		t.Errorf("Expected pool size %d to equal peak active count, got %d", peak, world.Drips.Len())
	}
}
