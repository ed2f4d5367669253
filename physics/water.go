package physics

import (
	"github.com/lixenwraith/island/config"
	"github.com/lixenwraith/island/constants"
	"github.com/lixenwraith/island/core"
)

// WaterColumn is one terminal column of the water surface
// Height is in sub-units from the bottom row; leftDelta/rightDelta are spread-pass scratch
type WaterColumn struct {
	Height   float64
	Velocity float64

	leftDelta  float64
	rightDelta float64
}

// Water is a 1-D damped spring chain, one column per terminal column
type Water struct {
	surface *core.Surface
	cfg     config.WaterConfig

	columns      []WaterColumn
	targetHeight float64
	islandRow    int
}

// NewWater provisions columns for the current surface
func NewWater(surface *core.Surface, cfg config.WaterConfig) *Water {
	w := &Water{
		surface: surface,
		cfg:     cfg,
	}
	w.provision()
	return w
}

// Step advances the surface by one frame
// On resize the column array is rebuilt at rest; in-flight waves are discarded
func (w *Water) Step() {
	if w.surface.Resized() {
		w.provision()
	}
	w.restore()
	for range w.cfg.Iterations {
		w.spread()
	}
}

// provision rebuilds the columns at the base level with zero velocity
func (w *Water) provision() {
	width := w.surface.Width()
	if cap(w.columns) < width {
		w.columns = make([]WaterColumn, width)
	} else {
		w.columns = w.columns[:width]
	}

	w.targetHeight = w.cfg.BaseLevel
	for i := range w.columns {
		w.columns[i] = WaterColumn{Height: w.targetHeight}
	}
	w.islandRow = IslandRow(w.surface.Height())
}

// restore pulls every column toward the target height
func (w *Water) restore() {
	for i := range w.columns {
		c := &w.columns[i]
		c.Velocity += w.cfg.Tension*(w.targetHeight-c.Height) - c.Velocity*w.cfg.Damping
		c.Height += c.Velocity
	}
}

// spread runs one lateral pass
// All deltas come from the pre-pass heights; heights are only written after every delta is known
func (w *Water) spread() {
	cols := w.columns
	n := len(cols)
	s := w.cfg.Spread

	for i := 0; i < n; i++ {
		if i > 0 {
			cols[i].leftDelta = s * (cols[i].Height - cols[i-1].Height)
			cols[i-1].Velocity += cols[i].leftDelta
		}
		if i < n-1 {
			cols[i].rightDelta = s * (cols[i].Height - cols[i+1].Height)
			cols[i+1].Velocity += cols[i].rightDelta
		}
	}

	for i := 0; i < n; i++ {
		if i > 0 {
			cols[i-1].Height += cols[i].leftDelta
		}
		if i < n-1 {
			cols[i+1].Height += cols[i].rightDelta
		}
	}
}

// Splash transfers a drip's momentum into column x and raises the target level
// The target level rises by one row spread across the surface width, capped below the top rows
// On a resize frame the columns still have the old width until Step reprovisions them
func (w *Water) Splash(x int, speed float64) {
	ApplyImpulse(&w.columns[x].Velocity, speed)

	width := float64(w.surface.Width())
	ceiling := float64((w.surface.Height() - constants.WaterCeilingRowOffset) * constants.SubUnits)
	if w.targetHeight < ceiling {
		w.targetHeight = min(w.targetHeight+constants.SubUnits/width, ceiling)
	}
}

// Len returns the number of columns
func (w *Water) Len() int { return len(w.columns) }

// Column returns a copy of column x
func (w *Water) Column(x int) WaterColumn { return w.columns[x] }

// Height returns the height of column x in sub-units
func (w *Water) Height(x int) float64 { return w.columns[x].Height }

// Heights appends all column heights to dst
func (w *Water) Heights(dst []float64) []float64 {
	for i := range w.columns {
		dst = append(dst, w.columns[i].Height)
	}
	return dst
}

// TargetHeight returns the level columns are pulled toward
func (w *Water) TargetHeight() float64 { return w.targetHeight }

// IslandRow returns the row where the island profile begins
func (w *Water) IslandRow() int { return w.islandRow }

// IslandRow computes height*3/4 - 1 in whole rows
func IslandRow(height int) int {
	return height*constants.IslandRowNumerator/constants.IslandRowDenominator - 1
}
