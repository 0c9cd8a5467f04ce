package globe

import (
	"math"

	"github.com/lixenwraith/glyph-globe/vmath"
)

// Velocity is the angular velocity triple shared by every dot, radians per frame
// X spins about the outward (viewing) axis, Y about the vertical axis, Z about the horizontal axis
// One instance is owned by the caller; the controller writes it between frames and the
// renderer reads one snapshot per frame
type Velocity struct {
	X, Y, Z float64
}

// NewVelocity returns the idle spin: every axis at min
func NewVelocity(min float64) *Velocity {
	return &Velocity{X: min, Y: min, Z: min}
}

// Snapshot returns a copy for use during one frame
func (v *Velocity) Snapshot() Velocity {
	return *v
}

// Rotate applies one frame of rotation to p, axis by axis in fixed order:
// outward axis by v.X, then vertical by v.Y using the rotated x, then horizontal
// by v.Z using the rotated y and z
// Each step is an exact planar rotation, the composite is not renormalized
func Rotate(p vmath.Vec3F, v Velocity) vmath.Vec3F {
	x1, y1 := vmath.Rotate2D(p.X, p.Y, v.X)
	x2, z2 := vmath.Rotate2D(x1, p.Z, v.Y)
	y3, z3 := vmath.Rotate2D(y1, z2, v.Z)
	return vmath.Vec3F{X: x2, Y: y3, Z: z3}
}

// SpinFraction maps the pointer-driven axes to [0,1]: 0 at idle spin, 1 when
// either axis reaches the speed of a pointer at the surface edge
func SpinFraction(v Velocity, t Tuning) float64 {
	top := t.MouseSpeed / 2
	if top <= t.MinSpeed {
		return 0
	}
	f := (math.Max(math.Abs(v.Y), math.Abs(v.Z)) - t.MinSpeed) / (top - t.MinSpeed)
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	return math.Min(f, 1)
}
