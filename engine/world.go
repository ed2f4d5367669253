package engine

import (
	"fmt"

	"github.com/lixenwraith/island/config"
	"github.com/lixenwraith/island/core"
	"github.com/lixenwraith/island/physics"
)

// World owns all simulation state and runs the per-frame step order
// Every component receives its collaborators by reference from here; none holds global state
type World struct {
	Surface *core.Surface
	Water   *physics.Water
	Drips   *physics.DripPool
	Cloud   *physics.Cloud

	frame uint64
}

// StepReport describes what happened during one frame
type StepReport struct {
	Frame   uint64
	Resized bool
	Impacts []physics.Impact

	// Non-fatal failures; the frame still completed
	SizeErr  error
	SpawnErr error
}

// NewWorld samples the terminal once and provisions every component for it
func NewWorld(cfg *config.Config, src core.SizeSource, rng physics.Rand) (*World, error) {
	surface, err := core.NewSurface(src)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}

	return &World{
		Surface: surface,
		Water:   physics.NewWater(surface, cfg.Water),
		Drips:   physics.NewDripPool(surface, cfg.Drips),
		Cloud:   physics.NewCloud(surface, cfg.Cloud, rng),
	}, nil
}

// Step advances one frame: surface refresh, drips, cloud, water
// Drips run before the water so impacts land in the wave step of the same frame
func (w *World) Step() StepReport {
	w.frame++
	report := StepReport{Frame: w.frame}

	report.SizeErr = w.Surface.Refresh()
	report.Resized = w.Surface.Resized()

	report.Impacts = w.Drips.Step(w.Water)
	report.SpawnErr = w.Cloud.Step(w.Drips)
	w.Water.Step()

	return report
}

// Frame returns the number of completed steps
func (w *World) Frame() uint64 { return w.frame }
