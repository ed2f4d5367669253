package physics

import (
	"errors"
	"math"
	"testing"
)

func newDripScene(t *testing.T, w, h int, legacy bool) (*Water, *DripPool) {
	t.Helper()
	s, _ := newTestSurface(t, w, h)
	cfg := defaults()
	cfg.Drips.LegacyColumn = legacy
	return NewWater(s, cfg.Water), NewDripPool(s, cfg.Drips)
}

func TestDripPool_SpawnInitialState(t *testing.T) {
	_, pool := newDripScene(t, 40, 20, false)

	if err := pool.Spawn(20); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	d := pool.Drip(0)
	if !d.Active || d.X != 20 || d.Y != 144 || d.Speed != 0 {
		t.Errorf("Expected active drip at x=20 y=144 speed=0, got %+v", d)
	}
}

// TestDripPool_SlotReuse verifies inactive slots are reused before the pool grows
func TestDripPool_SlotReuse(t *testing.T) {
	_, pool := newDripScene(t, 40, 20, false)

	for _, x := range []int{5, 10, 15} {
		if err := pool.Spawn(x); err != nil {
			t.Fatalf("Spawn failed: %v", err)
		}
	}
	pool.drips[1].Active = false

	if err := pool.Spawn(30); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	if pool.Len() != 3 {
		t.Fatalf("Expected pool size 3 after reuse, got %d", pool.Len())
	}
	if d := pool.Drip(1); !d.Active || d.X != 30 {
		t.Errorf("Expected slot 1 reused for x=30, got %+v", d)
	}
	if pool.Active() != 3 {
		t.Errorf("Expected 3 active drips, got %d", pool.Active())
	}

	// Fully active pool grows
	if err := pool.Spawn(35); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if pool.Len() != 4 {
		t.Errorf("Expected pool to grow to 4, got %d", pool.Len())
	}
}

func TestDripPool_SpawnLimit(t *testing.T) {
	s, _ := newTestSurface(t, 40, 20)
	cfg := defaults()
	cfg.Drips.MaxSlots = 2
	pool := NewDripPool(s, cfg.Drips)

	if err := pool.Spawn(1); err != nil {
		t.Fatalf("Spawn 1 failed: %v", err)
	}
	if err := pool.Spawn(2); err != nil {
		t.Fatalf("Spawn 2 failed: %v", err)
	}
	err := pool.Spawn(3)
	if !errors.Is(err, ErrPoolFull) {
		t.Fatalf("Expected ErrPoolFull, got %v", err)
	}
	if pool.Len() != 2 || pool.Active() != 2 {
		t.Errorf("Expected dropped spawn to leave pool unchanged, got len=%d active=%d", pool.Len(), pool.Active())
	}

	// Freed slot accepts spawns again
	pool.drips[0].Active = false
	if err := pool.Spawn(4); err != nil {
		t.Errorf("Expected spawn into freed slot, got %v", err)
	}
}

// TestDripPool_FiveStepScenario checks 40x20, drip at x=20, 5 steps at g=0.98
func TestDripPool_FiveStepScenario(t *testing.T) {
	water, pool := newDripScene(t, 40, 20, false)
	if err := pool.Spawn(20); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		if impacts := pool.Step(water); len(impacts) != 0 {
			t.Fatalf("Unexpected impact at step %d", i+1)
		}
	}

	d := pool.Drip(0)
	if math.Abs(d.Speed-(-4.9)) > 1e-9 {
		t.Errorf("Expected speed -4.9, got %f", d.Speed)
	}
	if math.Abs(d.Y-129.3) > 1e-9 {
		t.Errorf("Expected y 129.3, got %f", d.Y)
	}
}

// TestDripPool_ClosedFormFall verifies y(N) = max(0, y0 - g*N*(N+1)/2) while airborne
func TestDripPool_ClosedFormFall(t *testing.T) {
	water, pool := newDripScene(t, 40, 60, false)
	if err := pool.Spawn(3); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	y0 := float64((60 - 2) * 8)
	g := pool.cfg.Gravity

	for n := 1; pool.Active() > 0; n++ {
		impacts := pool.Step(water)
		want := max(0, y0-g*float64(n*(n+1))/2)
		if len(impacts) > 0 {
			if want > water.Height(3) {
				t.Fatalf("Step %d: impact above water (y=%f, water=%f)", n, want, water.Height(3))
			}
			break
		}
		if got := pool.Drip(0).Y; math.Abs(got-want) > 1e-9 {
			t.Fatalf("Step %d: expected y %f, got %f", n, want, got)
		}
		if n > 100 {
			t.Fatal("Drip never reached the water")
		}
	}
}

func TestDripPool_ImpactTransfersMomentum(t *testing.T) {
	water, pool := newDripScene(t, 40, 20, false)
	if err := pool.Spawn(12); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	var impacts []Impact
	for i := 0; i < 100 && len(impacts) == 0; i++ {
		impacts = pool.Step(water)
	}
	if len(impacts) != 1 {
		t.Fatalf("Expected one impact, got %d", len(impacts))
	}

	imp := impacts[0]
	if imp.Column != 12 || imp.Speed >= 0 {
		t.Errorf("Expected downward impact on column 12, got %+v", imp)
	}
	if v := water.Column(12).Velocity; v != imp.Speed {
		t.Errorf("Expected column velocity %f, got %f", imp.Speed, v)
	}
	if pool.Active() != 0 {
		t.Error("Expected drip deactivated on impact")
	}
	if math.Abs(water.TargetHeight()-(8+8.0/40)) > 1e-12 {
		t.Errorf("Expected target raised to %f, got %f", 8+8.0/40, water.TargetHeight())
	}
}

// TestDripPool_ColumnSelection pins which column each drip splashes into.
// Default: every drip hits its own column. Legacy: every drip hits the first slot's column.
func TestDripPool_ColumnSelection(t *testing.T) {
	tests := []struct {
		name         string
		legacy       bool
		wantCol5Hits int
		wantCol30Hit bool
	}{
		{"per-drip column", false, 1, true},
		{"legacy first-slot column", true, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			water, pool := newDripScene(t, 40, 20, tt.legacy)
			if err := pool.Spawn(5); err != nil {
				t.Fatalf("Spawn failed: %v", err)
			}
			if err := pool.Spawn(30); err != nil {
				t.Fatalf("Spawn failed: %v", err)
			}

			var all []Impact
			for i := 0; i < 100 && pool.Active() > 0; i++ {
				all = append(all, pool.Step(water)...)
			}
			if len(all) != 2 {
				t.Fatalf("Expected 2 impacts, got %d", len(all))
			}

			col5 := 0
			for _, imp := range all {
				if imp.Column == 5 {
					col5++
				}
			}
			if col5 != tt.wantCol5Hits {
				t.Errorf("Expected %d impacts on column 5, got %d", tt.wantCol5Hits, col5)
			}
			if hit := water.Column(30).Velocity != 0; hit != tt.wantCol30Hit {
				t.Errorf("Expected column 30 hit=%v, velocity %f", tt.wantCol30Hit, water.Column(30).Velocity)
			}
		})
	}
}

func TestDripPool_VanishedColumnRetires(t *testing.T) {
	water, pool := newDripScene(t, 40, 20, false)
	if err := pool.Spawn(45); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	impacts := pool.Step(water)
	if len(impacts) != 0 {
		t.Errorf("Expected no impact for off-surface drip, got %+v", impacts)
	}
	if pool.Active() != 0 {
		t.Error("Expected off-surface drip retired")
	}
	if water.TargetHeight() != 8 {
		t.Errorf("Expected target untouched, got %f", water.TargetHeight())
	}
}
