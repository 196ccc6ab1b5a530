package common

import "math"

// Vec2 is a 2D vector in world units. Y points up.
type Vec2 struct {
	X float64
	Y float64
}

// Clamp limits v to [lo, hi]. When hi < lo the range is empty and lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// RoundUpTo rounds v up to the next multiple of step.
func RoundUpTo(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Ceil(v/step) * step
}

// RoundTo rounds v to the nearest multiple of step.
func RoundTo(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}
