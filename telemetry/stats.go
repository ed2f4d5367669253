// Package telemetry samples scene statistics to CSV for offline analysis.
package telemetry

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/lixenwraith/island/engine"
)

// FrameStats is one sampled frame of scene state
type FrameStats struct {
	Frame        uint64  `csv:"frame"`
	Width        int     `csv:"width"`
	Height       int     `csv:"height"`
	TargetHeight float64 `csv:"target_height"`
	MeanHeight   float64 `csv:"mean_height"`
	StdDevHeight float64 `csv:"stddev_height"`
	MinHeight    float64 `csv:"min_height"`
	MaxHeight    float64 `csv:"max_height"`
	ActiveDrips  int     `csv:"active_drips"`
	DripSlots    int     `csv:"drip_slots"`
	Impacts      int     `csv:"impacts"` // Since the previous sample
	CloudColumn  int     `csv:"cloud_column"`
	Resizes      int     `csv:"resizes"` // Since the previous sample
}

// Collect summarizes the world after a step
// heights is scratch space reused between calls; the possibly grown slice is returned
func Collect(w *engine.World, heights []float64) (FrameStats, []float64) {
	heights = w.Water.Heights(heights[:0])

	s := FrameStats{
		Frame:        w.Frame(),
		Width:        w.Surface.Width(),
		Height:       w.Surface.Height(),
		TargetHeight: w.Water.TargetHeight(),
		ActiveDrips:  w.Drips.Active(),
		DripSlots:    w.Drips.Len(),
		CloudColumn:  w.Cloud.Column(),
	}
	if len(heights) > 0 {
		s.MeanHeight, s.StdDevHeight = stat.PopMeanStdDev(heights, nil)
		s.MinHeight = floats.Min(heights)
		s.MaxHeight = floats.Max(heights)
	}
	return s, heights
}
