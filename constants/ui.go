package constants

import "github.com/lixenwraith/island/core"

// Scene palette
const (
	ColorWater        = core.Blue
	ColorCanvas       = core.Black
	ColorCloud        = core.BrightWhite
	ColorIslandFg     = core.Blue
	ColorIslandCanopy = core.Green
	ColorIslandTrunk  = core.Yellow
	ColorIslandSand   = core.BrightYellow
)
