package constants

// DripGlyph is the falling drip
const DripGlyph = "●"

// WaterRamp is the 8-level partial-height glyph ramp, indexed by height mod 8
var WaterRamp = [SubUnits]string{
	"▁",
	"▂",
	"▃",
	"▄",
	"▅",
	"▆",
	"▇",
	"█",
}

// CloudArt is the cloud, one string per row
var CloudArt = [CloudRows]string{
	" @@@ ",
	"@@@@@",
	" @@@ ",
}
