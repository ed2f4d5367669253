package physics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/island/config"
	"github.com/lixenwraith/island/constants"
	"github.com/lixenwraith/island/core"
)

// ErrPoolFull is returned by Spawn when every slot is active and the pool is at its limit
var ErrPoolFull = errors.New("drip pool full")

// Drip is a particle falling straight down column X
// Y is in sub-units from the bottom, Speed is negative while falling
type Drip struct {
	Active bool
	X      int
	Y      float64
	Speed  float64
}

// Impact records a drip reaching the water
type Impact struct {
	Column int
	Speed  float64
}

// DripPool is a growable set of drip slots
// Inactive slots are reused before appending; the pool never shrinks
type DripPool struct {
	surface *core.Surface
	cfg     config.DripConfig

	drips   []Drip
	impacts []Impact
}

// NewDripPool creates an empty pool
func NewDripPool(surface *core.Surface, cfg config.DripConfig) *DripPool {
	return &DripPool{
		surface: surface,
		cfg:     cfg,
	}
}

// Spawn activates a drip at column x near the top of the surface
// Reuses the first inactive slot; appends only when none is free
func (p *DripPool) Spawn(x int) error {
	i := p.freeSlot()
	if i < 0 {
		if p.cfg.MaxSlots > 0 && len(p.drips) >= p.cfg.MaxSlots {
			return fmt.Errorf("%w: %d slots active", ErrPoolFull, len(p.drips))
		}
		p.drips = append(p.drips, Drip{})
		i = len(p.drips) - 1
	}

	p.drips[i] = Drip{
		Active: true,
		X:      x,
		Y:      float64((p.surface.Height() - constants.DripSpawnRowOffset) * constants.SubUnits),
	}
	return nil
}

func (p *DripPool) freeSlot() int {
	for i := range p.drips {
		if !p.drips[i].Active {
			return i
		}
	}
	return -1
}

// Step applies gravity to every active drip and splashes those at or below the water
// Returned impacts are valid until the next Step
func (p *DripPool) Step(water *Water) []Impact {
	p.impacts = p.impacts[:0]

	for i := range p.drips {
		d := &p.drips[i]
		if !d.Active {
			continue
		}

		Fall(&d.Y, &d.Speed, p.cfg.Gravity, 0)

		x := p.column(d)
		if x < 0 || x >= water.Len() {
			// Column vanished in a shrink
			d.Active = false
			continue
		}

		if d.Y <= water.Height(x) {
			water.Splash(x, d.Speed)
			d.Active = false
			p.impacts = append(p.impacts, Impact{Column: x, Speed: d.Speed})
		}
	}
	return p.impacts
}

// column returns the water column a drip interacts with
// Legacy mode reproduces the first-slot column for every drip
func (p *DripPool) column(d *Drip) int {
	if p.cfg.LegacyColumn {
		return p.drips[0].X
	}
	return d.X
}

// Len returns the pool size (high-water mark of concurrent drips)
func (p *DripPool) Len() int { return len(p.drips) }

// Drip returns a copy of slot i
func (p *DripPool) Drip(i int) Drip { return p.drips[i] }

// Active returns the number of active drips
func (p *DripPool) Active() int {
	n := 0
	for i := range p.drips {
		if p.drips[i].Active {
			n++
		}
	}
	return n
}

// EachActive calls fn for every active drip in slot order
func (p *DripPool) EachActive(fn func(d Drip)) {
	for i := range p.drips {
		if p.drips[i].Active {
			fn(p.drips[i])
		}
	}
}
