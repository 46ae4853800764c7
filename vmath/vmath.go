// Package vmath holds the small float helpers shared by movement, raycasting
// callers and rendering.
package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeAngle wraps a to [-pi, pi]
func NormalizeAngle(a float64) float64 {
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// Hypot2 is the squared 2D magnitude, for comparisons that don't need the root
func Hypot2(dx, dy float64) float64 {
	return dx*dx + dy*dy
}
