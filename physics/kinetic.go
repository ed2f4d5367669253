package physics

// Fall advances a body falling toward 0 under constant per-frame acceleration
// Speed is negative while falling; position never passes below floor
func Fall(pos, speed *float64, gravity, floor float64) {
	*speed -= gravity
	if *pos+*speed < floor {
		*pos = floor
		return
	}
	*pos += *speed
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(vel *float64, dv float64) {
	*vel += dv
}

// BounceBounds clamps pos into [lo, hi] and sends it back inward at speed
// Returns true if a bounce occurred
func BounceBounds(pos, vel *float64, lo, hi, speed float64) bool {
	if *pos >= hi {
		*pos = hi
		*vel = -speed
		if hi > lo {
			return true
		}
	}
	if *pos <= lo {
		*pos = lo
		*vel = speed
		return true
	}
	return false
}
