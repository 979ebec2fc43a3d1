package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Decay scales speed by factor^dt, so the damping does not depend on how
// the elapsed time is sliced into frames.
func Decay(speed, factor, dt float64) float64 {
	if dt <= 0 {
		return speed
	}
	return speed * math.Pow(factor, dt)
}
