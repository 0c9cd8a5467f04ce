package globe

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"github.com/lixenwraith/glyph-globe/glyph"
	"github.com/lixenwraith/glyph-globe/parameter"
	"github.com/lixenwraith/glyph-globe/status"
	"github.com/lixenwraith/glyph-globe/vmath"
)

// recordCanvas logs every call as a short string
type recordCanvas struct {
	ops    []string
	fills  []color.NRGBA
	scales []float64
	alphas []float64
}

func (c *recordCanvas) FillRect(x, y, w, h float64) {
	c.ops = append(c.ops, fmt.Sprintf("rect %g %g %g %g", x, y, w, h))
}
func (c *recordCanvas) Save()    { c.ops = append(c.ops, "save") }
func (c *recordCanvas) Restore() { c.ops = append(c.ops, "restore") }
func (c *recordCanvas) Translate(x, y float64) {
	c.ops = append(c.ops, fmt.Sprintf("translate %g %g", x, y))
}
func (c *recordCanvas) Scale(k float64) {
	c.ops = append(c.ops, "scale")
	c.scales = append(c.scales, k)
}
func (c *recordCanvas) SetFillColor(col color.NRGBA) {
	c.ops = append(c.ops, "color")
	c.fills = append(c.fills, col)
}
func (c *recordCanvas) SetGlobalAlpha(a float64) {
	c.ops = append(c.ops, "alpha")
	c.alphas = append(c.alphas, a)
}
func (c *recordCanvas) FillPath(p glyph.Path) { c.ops = append(c.ops, "path") }

func testGlyphs(n int) []glyph.Glyph {
	glyphs := make([]glyph.Glyph, n)
	for i := range glyphs {
		glyphs[i] = glyph.Glyph{
			Name:    fmt.Sprintf("g%d", i),
			Primary: color.NRGBA{uint8(i), 0, 0, 0xFF},
			Regions: []glyph.Region{
				{Outline: glyph.MustParsePath("M0 0H128V128Z"), Fill: color.NRGBA{uint8(i), 1, 0, 0xFF}},
				{Outline: glyph.MustParsePath("M32 32H96V96Z"), Fill: color.NRGBA{uint8(i), 2, 0, 0xFF}},
			},
		}
	}
	return glyphs
}

func count(ops []string, op string) int {
	n := 0
	for _, o := range ops {
		if o == op {
			n++
		}
	}
	return n
}

func TestRendererIdleScenario(t *testing.T) {
	vel := &Velocity{}
	sched := &queueScheduler{}
	NewController(vel, sched, DefaultTuning(), nil)
	r := NewRenderer(testGlyphs(3), vel, DefaultTuning(), nil)

	surf := Surface{Width: 640, Height: 480, PixelRatio: 1}
	for i := 0; i < 1000; i++ {
		r.Frame(&recordCanvas{}, surf)
	}

	want := Velocity{parameter.MinSpeed, parameter.MinSpeed, parameter.MinSpeed}
	if *vel != want {
		t.Errorf("velocity = %+v, want %+v", *vel, want)
	}
	for i, d := range r.Dots() {
		if n := vmath.V3FMag(d.Position); math.Abs(n-1) > 1e-9 {
			t.Errorf("dot %d norm = %v after 1000 frames", i, n)
		}
	}
	if len(sched.tasks) != 0 {
		t.Errorf("idle frames scheduled %d tasks", len(sched.tasks))
	}
}

func TestRendererPaintsFarthestFirst(t *testing.T) {
	vel := NewVelocity(parameter.MinSpeed)
	vel.Y, vel.Z = 0.03, -0.02
	r := NewRenderer(testGlyphs(24), vel, DefaultTuning(), nil)
	surf := Surface{Width: 1920, Height: 1080, PixelRatio: 2}

	for frame := 0; frame < 40; frame++ {
		c := &recordCanvas{}
		r.Frame(c, surf)

		proj := r.Projections()
		order := r.Order()
		for k := 1; k < len(order); k++ {
			a, b := proj[order[k-1]], proj[order[k]]
			if a.Depth < b.Depth {
				t.Fatalf("frame %d: dot %d (z=%v) painted before farther dot %d (z=%v)",
					frame, order[k-1], a.Depth, order[k], b.Depth)
			}
		}

		// Paint calls follow the sorted order
		var translates []string
		for _, op := range c.ops {
			if len(op) > 9 && op[:9] == "translate" {
				translates = append(translates, op)
			}
		}
		for k, i := range order {
			want := fmt.Sprintf("translate %g %g", proj[i].X, proj[i].Y)
			if translates[k] != want {
				t.Fatalf("frame %d paint %d = %q, want %q", frame, k, translates[k], want)
			}
		}
	}
}

func TestRendererFrameStructure(t *testing.T) {
	vel := NewVelocity(parameter.MinSpeed)
	reg := status.NewRegistry()
	tuning := DefaultTuning()
	r := NewRenderer(testGlyphs(4), vel, tuning, reg)

	c := &recordCanvas{}
	surf := Surface{Width: 960, Height: 540, PixelRatio: 1}
	r.Frame(c, surf)

	if c.ops[3] != "rect 0 0 960 540" {
		t.Errorf("frame should open with a background fill, got %v", c.ops[:5])
	}
	bg := color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	if c.fills[0] != bg {
		t.Errorf("background color = %v, want %v", c.fills[0], bg)
	}
	if got := count(c.ops, "path"); got != 8 {
		t.Errorf("filled %d paths, want 8", got)
	}
	if count(c.ops, "save") != count(c.ops, "restore") {
		t.Error("unbalanced save/restore")
	}

	// Region colors in region order per dot
	for k, i := range r.Order() {
		got := c.fills[1+2*k : 3+2*k]
		if got[0] != (color.NRGBA{uint8(i), 1, 0, 0xFF}) || got[1] != (color.NRGBA{uint8(i), 2, 0, 0xFF}) {
			t.Errorf("dot %d fills = %v", i, got)
		}
	}

	proj := r.Projections()
	for k, i := range r.Order() {
		want := proj[i].Scale * tuning.RenderScale * 960 / tuning.ReferenceWidth
		if math.Abs(c.scales[k]-want) > 1e-12 {
			t.Errorf("paint %d scale = %v, want %v", k, c.scales[k], want)
		}
		if c.alphas[1+k] != proj[i].Alpha {
			t.Errorf("paint %d alpha = %v, want %v", k, c.alphas[1+k], proj[i].Alpha)
		}
	}

	if reg.Int(status.Frames).Load() != 1 || reg.Int(status.DotsPainted).Load() != 4 || reg.Int(status.RegionsFilled).Load() != 8 {
		t.Errorf("metrics: %s", reg.Summary())
	}
}

func TestRendererSkipsEmptyRegionsAndZeroScale(t *testing.T) {
	glyphs := testGlyphs(3)
	glyphs[1].Regions[0].Outline = nil
	vel := NewVelocity(0)
	r := NewRenderer(glyphs, vel, DefaultTuning(), nil)
	r.Dots()[2].Position = vmath.Vec3F{X: math.NaN(), Y: 0, Z: 0}

	c := &recordCanvas{}
	r.Frame(c, Surface{Width: 800, Height: 600})

	// dot 0 fills 2, dot 1 fills 1, dot 2 is skipped
	if got := count(c.ops, "path"); got != 3 {
		t.Errorf("filled %d paths, want 3", got)
	}
	if got := count(c.ops, "scale"); got != 2 {
		t.Errorf("painted %d dots, want 2", got)
	}
	if r.Order()[0] != 2 {
		t.Errorf("zero-scale dot should sort first, order = %v", r.Order())
	}
}

func TestRendererKeepsDotOrder(t *testing.T) {
	glyphs := testGlyphs(10)
	vel := NewVelocity(0.2)
	r := NewRenderer(glyphs, vel, DefaultTuning(), nil)
	for i := 0; i < 25; i++ {
		r.Frame(&recordCanvas{}, Surface{Width: 300, Height: 200})
	}

	seen := make(map[int]bool)
	for _, i := range r.Order() {
		seen[i] = true
	}
	if len(seen) != len(glyphs) {
		t.Errorf("order is not a permutation: %v", r.Order())
	}
	for i, d := range r.Dots() {
		if d.Glyph != &glyphs[i] {
			t.Errorf("dot %d glyph moved", i)
		}
	}
}

func TestRendererZeroSurface(t *testing.T) {
	r := NewRenderer(testGlyphs(3), NewVelocity(0.01), DefaultTuning(), nil)
	c := &recordCanvas{}
	r.Frame(c, Surface{})
	if count(c.ops, "path") != 0 {
		t.Errorf("zero surface painted paths: %v", c.ops)
	}
}
