package render

import (
	"github.com/lixenwraith/island/constants"
	"github.com/lixenwraith/island/core"
)

// islandBackground returns the island color at (row, col), if the cell belongs to the island
// The silhouette is anchored at islandRow and the horizontal center: a three-row canopy,
// a trunk, and a sand slope widening two columns per row below islandRow
func islandBackground(row, col, islandRow, width int) (core.Color, bool) {
	c := width / 2
	d := row - islandRow

	switch {
	case d == -5 && (col == c-3 || col == c-1 || col == c+1):
		return constants.ColorIslandCanopy, true
	case d == -4 && col >= c-2 && col <= c:
		return constants.ColorIslandCanopy, true
	case d == -3 && (col == c-3 || col == c+1):
		return constants.ColorIslandCanopy, true
	case d == -3 && col == c-1:
		return constants.ColorIslandTrunk, true
	case (d == -2 || d == -1) && col == c:
		return constants.ColorIslandTrunk, true
	case d >= 0 && col >= c-(1+2*d) && col <= c+(1+2*d):
		return constants.ColorIslandSand, true
	}
	return core.ColorNone, false
}
