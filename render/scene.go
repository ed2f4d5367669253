package render

import (
	"math"
	"unicode/utf8"

	"github.com/lixenwraith/island/constants"
	"github.com/lixenwraith/island/core"
	"github.com/lixenwraith/island/physics"
)

// Scene is the read-only state a frame is drawn from
type Scene struct {
	Surface *core.Surface
	Water   *physics.Water
	Drips   *physics.DripPool
	Cloud   *physics.Cloud
}

// Renderer turns scene state into a minimal draw-operation stream
type Renderer struct {
	// Active drip cells, rebuilt every frame
	drips map[int]struct{}
}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{drips: make(map[int]struct{})}
}

// Render draws one frame into sink, scanning cells row-major
// Clear is issued first and Reset last; rendering never fails
func (r *Renderer) Render(sink Sink, sc Scene) {
	width, height := sc.Surface.Width(), sc.Surface.Height()
	r.indexDrips(sc.Drips, width, height)

	sink.Clear()
	fc := newFrameContext(sink)
	cloudCol := sc.Cloud.Column()
	islandRow := sc.Water.IslandRow()

	for y := 0; y < height; y++ {
		fc.beginRow()
		level := float64((height - y) * constants.SubUnits)

		for x := 0; x < width; x++ {
			// Island is a background layer; content below still draws over it
			if bg, ok := islandBackground(y, x, islandRow, width); ok {
				fc.switchMode(modeIsland, constants.ColorIslandFg, bg)
			} else if fc.mode == modeIsland {
				fc.switchMode(modeUnknown, constants.ColorCanvas, constants.ColorCanvas)
			}

			if _, ok := r.drips[y*width+x]; ok {
				if fc.mode != modeWaterFG {
					fc.switchMode(modeWaterFG, constants.ColorWater, core.ColorNone)
				}
				fc.place(y, x)
				fc.write(constants.DripGlyph)
				continue
			}

			if y < constants.CloudRows && x == cloudCol {
				if fc.mode != modeCloud {
					fc.switchMode(modeCloud, constants.ColorCloud, constants.ColorCanvas)
				}
				fc.place(y, x)
				fc.write(clip(constants.CloudArt[y], width-x))
				fc.skip()
				continue
			}

			h := columnHeight(sc.Water, x)

			// Dry at this row
			if h < level-constants.SubUnits {
				if fc.mode == modeIsland {
					fc.place(y, x)
					fc.write(" ")
				} else {
					fc.skip()
				}
				continue
			}

			fc.place(y, x)
			if h >= level {
				// Fully submerged
				if fc.mode != modeWaterBG {
					fc.switchMode(modeWaterBG, core.ColorNone, constants.ColorWater)
				}
				fc.write(" ")
				continue
			}

			// Water line
			if fc.mode != modeWaterFG && fc.mode != modeIsland {
				fc.switchMode(modeWaterFG, constants.ColorWater, constants.ColorCanvas)
			}
			fc.write(constants.WaterRamp[int(h)%constants.SubUnits])
		}
	}

	sink.Reset()
}

// indexDrips records the cell of every visible active drip
func (r *Renderer) indexDrips(drips *physics.DripPool, width, height int) {
	clear(r.drips)
	drips.EachActive(func(d physics.Drip) {
		row := DripRow(d.Y, height)
		if row < 0 || row >= height || d.X < 0 || d.X >= width {
			return
		}
		r.drips[row*width+d.X] = struct{}{}
	})
}

// DripRow converts a drip's height in sub-units to a terminal row
func DripRow(y float64, height int) int {
	return int(math.Floor((float64(height*constants.SubUnits) - y) / constants.SubUnits))
}

// columnHeight treats columns outside the water as dry
func columnHeight(w *physics.Water, x int) float64 {
	if x >= w.Len() {
		return math.Inf(-1)
	}
	return w.Height(x)
}

// clip truncates s to at most n runes
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}
