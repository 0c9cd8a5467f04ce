package globe

import (
	"image/color"
	"sort"
	"sync/atomic"

	"github.com/lixenwraith/glyph-globe/glyph"
	"github.com/lixenwraith/glyph-globe/status"
	"github.com/lixenwraith/glyph-globe/vmath"
)

// Canvas is the 2D paint surface a frame is drawn onto
// Transforms compose: Scale after Translate scales about the translated origin
type Canvas interface {
	FillRect(x, y, w, h float64)
	Save()
	Restore()
	Translate(x, y float64)
	Scale(k float64)
	SetFillColor(c color.NRGBA)
	// SetGlobalAlpha takes the raw depth alpha, the canvas clamps it to [0,1]
	SetGlobalAlpha(a float64)
	FillPath(p glyph.Path)
}

// Surface is the drawing area in layout units plus its device pixel ratio
type Surface struct {
	Width, Height float64
	PixelRatio    float64
}

// Dot is one glyph on the sphere
// Position is rotated in place every frame, Glyph is shared read-only
type Dot struct {
	Position vmath.Vec3F
	Glyph    *glyph.Glyph
}

// Renderer rotates, projects, depth-sorts and paints the dots once per Frame
type Renderer struct {
	dots   []Dot
	proj   []Projection
	order  []int
	vel    *Velocity
	tuning Tuning
	bg     color.NRGBA

	statFrames  *atomic.Int64
	statDots    *atomic.Int64
	statRegions *atomic.Int64
}

// NewRenderer places one dot per glyph on the golden-angle spiral, in glyph order
// reg may be nil
func NewRenderer(glyphs []glyph.Glyph, vel *Velocity, tuning Tuning, reg *status.Registry) *Renderer {
	if reg == nil {
		reg = status.NewRegistry()
	}
	positions := Sample(len(glyphs))

	r := &Renderer{
		dots:        make([]Dot, len(glyphs)),
		proj:        make([]Projection, len(glyphs)),
		order:       make([]int, len(glyphs)),
		vel:         vel,
		tuning:      tuning,
		bg:          color.NRGBA{tuning.Background[0], tuning.Background[1], tuning.Background[2], 0xFF},
		statFrames:  reg.Int(status.Frames),
		statDots:    reg.Int(status.DotsPainted),
		statRegions: reg.Int(status.RegionsFilled),
	}
	for i := range glyphs {
		r.dots[i] = Dot{Position: positions[i], Glyph: &glyphs[i]}
		r.order[i] = i
	}
	return r
}

// Frame draws one frame: clear, rotate and project every dot with one velocity
// snapshot, sort farthest first, then paint each glyph's regions in order
func (r *Renderer) Frame(c Canvas, surf Surface) {
	r.statFrames.Add(1)

	c.Save()
	c.SetGlobalAlpha(1)
	c.SetFillColor(r.bg)
	c.FillRect(0, 0, surf.Width, surf.Height)
	c.Restore()

	v := r.vel.Snapshot()
	scene := SceneFor(surf.Width, surf.Height, r.tuning)
	for i := range r.dots {
		r.dots[i].Position = Rotate(r.dots[i].Position, v)
		r.proj[i] = Project(r.dots[i].Position, scene)
	}

	sort.SliceStable(r.order, func(a, b int) bool {
		return r.proj[r.order[a]].Scale < r.proj[r.order[b]].Scale
	})

	if surf.Width <= 0 || surf.Height <= 0 {
		return
	}
	widthRatio := surf.Width / r.tuning.ReferenceWidth

	for _, i := range r.order {
		p := r.proj[i]
		if p.Scale == 0 {
			continue
		}
		g := r.dots[i].Glyph

		c.Save()
		c.Translate(p.X, p.Y)
		c.Scale(p.Scale * r.tuning.RenderScale * widthRatio)
		c.SetGlobalAlpha(p.Alpha)
		for _, region := range g.Regions {
			if region.Outline.Empty() {
				continue
			}
			c.SetFillColor(region.Fill)
			c.FillPath(region.Outline)
			r.statRegions.Add(1)
		}
		c.Restore()
		r.statDots.Add(1)
	}
}

// Dots returns the dots in construction order
func (r *Renderer) Dots() []Dot { return r.dots }

// Projections returns the last frame's projections, indexed like Dots
func (r *Renderer) Projections() []Projection { return r.proj }

// Order returns the last paint order as indices into Dots, farthest first
func (r *Renderer) Order() []int { return r.order }
