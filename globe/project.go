package globe

import (
	"math"

	"github.com/lixenwraith/glyph-globe/parameter"
	"github.com/lixenwraith/glyph-globe/vmath"
)

// Scene is the camera for one surface size
type Scene struct {
	Perspective  float64 // camera distance, larger means flatter
	CenterX      float64
	CenterY      float64
	GlobeRadius  float64
	SurfaceWidth float64
	DotRadius    float64 // glyph box half-size in surface units
}

// SceneFor derives the camera from surface layout size
// The dot radius scales with width so the glyph box stays centered at any size,
// unless FixedDotRadius keeps the constant offset
func SceneFor(width, height float64, t Tuning) Scene {
	dot := t.DotRadius
	if !t.FixedDotRadius && t.ReferenceWidth > 0 {
		dot = t.DotRadius * width / t.ReferenceWidth
	}
	return Scene{
		Perspective:  width * t.PerspectiveRatio,
		CenterX:      width / 2,
		CenterY:      height / 2,
		GlobeRadius:  width * t.GlobeRadiusRatio,
		SurfaceWidth: width,
		DotRadius:    dot,
	}
}

// Projection is one dot's placement for the current frame
type Projection struct {
	X, Y  float64 // top-left of the glyph box on the surface
	Scale float64 // perspective size factor, 0 means skip
	Alpha float64 // depth opacity, not clamped, may exceed 1
	Depth float64 // rotated z, positive is away from the viewer
}

// Project maps a rotated sphere position onto the surface
// The depth divide is floored at MinDepthDenominator*perspective; non-finite
// results collapse to a zero projection which the painter skips
func Project(p vmath.Vec3F, s Scene) Projection {
	denom := s.Perspective + p.Z*s.GlobeRadius
	if floor := s.Perspective * parameter.MinDepthDenominator; denom < floor {
		denom = floor
	}
	scale := s.Perspective / denom
	if !vmath.Finite(scale) || scale <= 0 {
		return Projection{Depth: p.Z}
	}

	x := p.X*s.GlobeRadius*scale + s.CenterX - s.DotRadius*scale
	y := p.Y*s.GlobeRadius*scale + s.CenterY - s.DotRadius*scale
	if !vmath.Finite(x) || !vmath.Finite(y) {
		return Projection{Depth: p.Z}
	}

	alpha := math.Abs(1 - p.Z*parameter.AlphaDepthGain*s.GlobeRadius/s.SurfaceWidth)
	if !vmath.Finite(alpha) {
		alpha = 0
	}

	return Projection{X: x, Y: y, Scale: scale, Alpha: alpha, Depth: p.Z}
}
