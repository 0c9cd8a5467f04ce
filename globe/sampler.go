// Package globe is the sphere-of-glyphs core: golden-angle placement, per-frame
// rotation, perspective projection, depth-sorted painting, and the pointer-driven
// angular velocity controller with its decay back to idle spin.
package globe

import (
	"math"

	"github.com/lixenwraith/glyph-globe/vmath"
)

// GoldenAngle is the azimuth increment between consecutive samples, π(3-√5)
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// Sample spreads n points over the unit sphere along a golden-angle spiral,
// from the +y pole (index 0) to the -y pole (index n-1)
// n == 1 yields the +y pole alone, n <= 0 yields nil
func Sample(n int) []vmath.Vec3F {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []vmath.Vec3F{{Y: 1}}
	}

	points := make([]vmath.Vec3F, n)
	last := float64(n - 1)
	for i := range points {
		y := 1 - (float64(i)/last)*2
		radius := math.Sqrt(math.Max(0, 1-y*y))
		theta := float64(i) * GoldenAngle
		points[i] = vmath.Vec3F{
			X: math.Cos(theta) * radius,
			Y: y,
			Z: math.Sin(theta) * radius,
		}
	}
	return points
}
