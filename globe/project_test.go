package globe

import (
	"math"
	"testing"

	"github.com/lixenwraith/glyph-globe/vmath"
)

func TestSceneFor(t *testing.T) {
	s := SceneFor(1920, 1080, DefaultTuning())
	want := Scene{
		Perspective:  1536,
		CenterX:      960,
		CenterY:      540,
		GlobeRadius:  480,
		SurfaceWidth: 1920,
		DotRadius:    64,
	}
	if s != want {
		t.Errorf("SceneFor = %+v, want %+v", s, want)
	}

	half := SceneFor(960, 540, DefaultTuning())
	if half.DotRadius != 32 {
		t.Errorf("dot radius at half width = %v, want 32", half.DotRadius)
	}
}

func TestSceneForFixedDotRadius(t *testing.T) {
	tn := DefaultTuning()
	tn.FixedDotRadius = true
	for _, width := range []float64{160, 960, 3840} {
		if s := SceneFor(width, width/2, tn); s.DotRadius != tn.DotRadius {
			t.Errorf("width %v: dot radius = %v, want constant %v", width, s.DotRadius, tn.DotRadius)
		}
	}

	// Offset is the constant times scale: origin lands DotRadius up-left of center
	p := Project(vmath.Vec3F{}, SceneFor(480, 270, tn))
	if p.X != 240-64 || p.Y != 135-64 {
		t.Errorf("origin projects to (%v, %v), want (176, 71)", p.X, p.Y)
	}
}

func TestProjectCenter(t *testing.T) {
	s := SceneFor(1920, 1080, DefaultTuning())
	p := Project(vmath.Vec3F{}, s)
	if p.Scale != 1 {
		t.Errorf("scale at origin = %v, want 1", p.Scale)
	}
	if p.X != 960-64 || p.Y != 540-64 {
		t.Errorf("origin projects to (%v, %v), want (896, 476)", p.X, p.Y)
	}
	if p.Alpha != 1 {
		t.Errorf("alpha at origin = %v, want 1", p.Alpha)
	}
}

func TestProjectFormula(t *testing.T) {
	s := SceneFor(1000, 800, DefaultTuning())
	pt := vmath.Vec3F{X: 0.6, Y: -0.8, Z: 0.5}
	got := Project(pt, s)

	scale := s.Perspective / (s.Perspective + pt.Z*s.GlobeRadius)
	x := pt.X*s.GlobeRadius*scale + s.CenterX - s.DotRadius*scale
	y := pt.Y*s.GlobeRadius*scale + s.CenterY - s.DotRadius*scale
	alpha := math.Abs(1 - pt.Z*3*s.GlobeRadius/s.SurfaceWidth)

	if math.Abs(got.Scale-scale) > 1e-12 || math.Abs(got.X-x) > 1e-9 || math.Abs(got.Y-y) > 1e-9 {
		t.Errorf("Project = %+v, want scale=%v x=%v y=%v", got, scale, x, y)
	}
	if math.Abs(got.Alpha-alpha) > 1e-12 {
		t.Errorf("alpha = %v, want %v", got.Alpha, alpha)
	}
	if got.Depth != pt.Z {
		t.Errorf("depth = %v, want %v", got.Depth, pt.Z)
	}
}

func TestProjectAlphaUnclamped(t *testing.T) {
	s := SceneFor(1000, 1000, DefaultTuning())
	near := Project(vmath.Vec3F{Z: -1}, s)
	if near.Alpha <= 1 {
		t.Errorf("near alpha = %v, expected above 1", near.Alpha)
	}
}

func TestProjectScaleMonotonic(t *testing.T) {
	s := SceneFor(1280, 720, DefaultTuning())
	prev := math.Inf(1)
	for z := -1.0; z <= 1.0; z += 0.01 {
		p := Project(vmath.Vec3F{X: 0.1, Y: 0.2, Z: z}, s)
		if !(p.Scale < prev) {
			t.Fatalf("scale not strictly decreasing at z=%v: %v >= %v", z, p.Scale, prev)
		}
		prev = p.Scale
	}
}

func TestProjectGuards(t *testing.T) {
	s := SceneFor(800, 600, DefaultTuning())

	// Denominator below the floor is clamped
	far := Project(vmath.Vec3F{Z: -100}, s)
	if want := 1 / 0.05; math.Abs(far.Scale-want) > 1e-9 {
		t.Errorf("clamped scale = %v, want %v", far.Scale, want)
	}

	for _, z := range []float64{math.NaN(), math.Inf(1)} {
		p := Project(vmath.Vec3F{X: 0.5, Z: z}, s)
		if p.Scale != 0 || p.X != 0 || p.Y != 0 || p.Alpha != 0 {
			t.Errorf("z=%v projected to %+v, want zero projection", z, p)
		}
	}

	p := Project(vmath.Vec3F{Z: math.Inf(-1)}, s)
	if !vmath.Finite(p.Scale) || p.Alpha != 0 {
		t.Errorf("z=-Inf projected to %+v, want finite scale and zero alpha", p)
	}

	p = Project(vmath.Vec3F{X: math.NaN()}, s)
	if p.Scale != 0 {
		t.Errorf("NaN x projected to %+v, want zero projection", p)
	}
}

func TestProjectZeroWidthSurface(t *testing.T) {
	p := Project(vmath.Vec3F{X: 1}, SceneFor(0, 0, DefaultTuning()))
	if p.Scale != 0 {
		t.Errorf("zero surface projected to %+v, want zero projection", p)
	}
}
