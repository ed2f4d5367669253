package physics

import (
	"github.com/lixenwraith/island/config"
	"github.com/lixenwraith/island/constants"
	"github.com/lixenwraith/island/core"
)

// Rand is the random source for drift reversal
type Rand interface {
	Intn(n int) int
}

// Cloud drifts horizontally across the top rows and drops drips at a fixed interval
// Position is in sub-units; the rendered column is Position/8
type Cloud struct {
	surface *core.Surface
	cfg     config.CloudConfig
	rng     Rand

	position     float64
	velocity     float64
	dropTimer    int
	dropInterval int
}

// NewCloud centers the cloud on the surface, drifting right
func NewCloud(surface *core.Surface, cfg config.CloudConfig, rng Rand) *Cloud {
	return &Cloud{
		surface:      surface,
		cfg:          cfg,
		rng:          rng,
		position:     float64(surface.Width()*constants.SubUnits/2 - 2),
		velocity:     cfg.Speed,
		dropInterval: cfg.DropInterval,
	}
}

// Step drifts the cloud and, every drop interval, spawns a drip below it
// A spawn failure is returned; the drip is dropped and the cloud keeps moving
func (c *Cloud) Step(drips *DripPool) error {
	width := c.surface.Width()
	limit := c.limit()

	if c.surface.Resized() {
		if width < c.cfg.Width {
			c.position = 0
		} else if c.position >= limit {
			c.position = limit
		}
	}

	// Occasional reversal for drift irregularity
	if span := width * constants.SubUnits; span > 0 && c.rng.Intn(span) == 0 {
		c.velocity = -c.velocity
	}

	c.position += c.velocity
	BounceBounds(&c.position, &c.velocity, 0, limit, c.cfg.Speed)

	c.dropTimer++
	if c.dropTimer >= c.dropInterval {
		c.dropTimer = 0
		return drips.Spawn(c.Column() + constants.CloudDripOffset)
	}
	return nil
}

// limit is the rightmost position keeping the whole cloud on screen
func (c *Cloud) limit() float64 {
	return float64(max(c.surface.Width()-c.cfg.Width, 0) * constants.SubUnits)
}

// Column returns the terminal column of the cloud's left edge
func (c *Cloud) Column() int {
	return int(c.position / constants.SubUnits)
}

// Position returns the position in sub-units
func (c *Cloud) Position() float64 { return c.position }

// Velocity returns the drift velocity in sub-units per frame
func (c *Cloud) Velocity() float64 { return c.velocity }

// DropTimer returns frames elapsed since the last drop
func (c *Cloud) DropTimer() int { return c.dropTimer }
