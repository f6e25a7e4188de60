package core

import "math"

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// LinearToDBFloor converts like LinearToDB but never returns less than floor.
func LinearToDBFloor(linear, floor float64) float64 {
	db := LinearToDB(linear)
	if math.IsNaN(db) || db < floor {
		return floor
	}

	return db
}
