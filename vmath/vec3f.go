// Package vmath holds the float64 vector helpers the globe rotates with
package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector used for sphere positions
type Vec3F struct {
	X, Y, Z float64
}

// V3FSub returns a - b
func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// V3FMagSq returns the squared length of v
func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// V3FMag returns the length of v; sphere positions stay at 1 up to rotation drift
func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// Rotate2D applies a planar rotation by angle to the pair (a, b)
// Returns (a cos - b sin, a sin + b cos)
func Rotate2D(a, b, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return a*cos - b*sin, a*sin + b*cos
}

// Sign returns -1 for negative values and 1 otherwise, zero counts as positive
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Finite reports whether v is neither NaN nor infinite
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
