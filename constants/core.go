package constants

// SubUnits is the fractional resolution below one terminal cell
// Water heights, drip positions and cloud position are all expressed in sub-units
const SubUnits = 8

// Rate-dependent defaults; config divides these by frame_rate when the
// per-frame value is left at zero
const (
	// StandardGravity is applied per frame as StandardGravity/frame_rate
	StandardGravity = 9.8

	// CloudSpeedPerSecond is the drift speed in sub-units per second
	CloudSpeedPerSecond = 10.0
)

// Scene geometry
const (
	// DripSpawnRowOffset is subtracted from the surface height to get the spawn row
	DripSpawnRowOffset = 2

	// WaterCeilingRowOffset bounds the target height at (height - offset) rows
	WaterCeilingRowOffset = 3

	// CloudRows is the cloud art height in rows, starting at row 0
	CloudRows = 3

	// CloudDripOffset is the column offset of the drip below the cloud's left edge
	CloudDripOffset = 2

	// IslandRowNumerator and IslandRowDenominator place the island row at height*3/4 - 1
	IslandRowNumerator   = 3
	IslandRowDenominator = 4
)
