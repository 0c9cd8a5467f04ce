// Package raster paints globe frames into an RGBA image with an anti-aliased
// path rasterizer
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/lixenwraith/glyph-globe/glyph"
)

// maxMaskSide bounds the rasterized box of a single path in device pixels
const maxMaskSide = 8192

type state struct {
	tx, ty float64 // translation in layout units
	k      float64 // uniform scale
	fill   color.NRGBA
	alpha  float64
}

// Canvas implements the globe paint surface over an *image.RGBA
// Layout units map to device pixels through the backing scale, 2 on high density displays
type Canvas struct {
	img     *image.RGBA
	backing float64
	width   float64
	height  float64

	cur   state
	stack []state

	ras      *vector.Rasterizer
	maskPix  []uint8
	uniform  *image.Uniform
	fillSkip int
}

// BackingScale returns the device pixels per layout unit for a pixel ratio
func BackingScale(pixelRatio float64) float64 {
	if pixelRatio > 1 {
		return 2
	}
	return 1
}

// New creates a canvas of width x height layout units
func New(width, height int, pixelRatio float64) *Canvas {
	c := &Canvas{
		ras:     vector.NewRasterizer(1, 1),
		uniform: image.NewUniform(color.NRGBA{}),
	}
	c.ras.DrawOp = draw.Src
	c.Resize(width, height, pixelRatio)
	return c
}

// Resize reallocates the backing image and resets the transform state
func (c *Canvas) Resize(width, height int, pixelRatio float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.backing = BackingScale(pixelRatio)
	c.width, c.height = float64(width), float64(height)
	w := int(float64(width) * c.backing)
	h := int(float64(height) * c.backing)
	if c.img == nil || c.img.Rect.Dx() != w || c.img.Rect.Dy() != h {
		c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	c.cur = state{k: 1, alpha: 1, fill: color.NRGBA{A: 0xFF}}
	c.stack = c.stack[:0]
}

// Image returns the backing image, valid until the next Resize
func (c *Canvas) Image() *image.RGBA { return c.img }

// Backing returns the device pixels per layout unit
func (c *Canvas) Backing() float64 { return c.backing }

// Size returns the layout size
func (c *Canvas) Size() (float64, float64) { return c.width, c.height }

// Skipped returns how many paths were dropped as degenerate or oversized
func (c *Canvas) Skipped() int { return c.fillSkip }

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

// Restore pops the last saved state, unmatched calls are ignored
func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.cur = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *Canvas) Translate(x, y float64) {
	c.cur.tx += c.cur.k * x
	c.cur.ty += c.cur.k * y
}

func (c *Canvas) Scale(k float64) {
	c.cur.k *= k
}

func (c *Canvas) SetFillColor(col color.NRGBA) {
	c.cur.fill = col
}

func (c *Canvas) SetGlobalAlpha(a float64) {
	c.cur.alpha = a
}

// device maps a layout point through the current transform to device pixels
func (c *Canvas) device(x, y float64) (float64, float64) {
	return c.backing * (c.cur.tx + c.cur.k*x), c.backing * (c.cur.ty + c.cur.k*y)
}

// source returns the fill color with global alpha applied, ok is false when fully transparent
func (c *Canvas) source() (*image.Uniform, bool) {
	a := clampAlpha(c.cur.alpha)
	col := c.cur.fill
	col.A = uint8(math.Round(float64(col.A) * a))
	if col.A == 0 {
		return nil, false
	}
	c.uniform.C = col
	return c.uniform, true
}

func clampAlpha(a float64) float64 {
	if math.IsNaN(a) || a <= 0 {
		return 0
	}
	if a >= 1 {
		return 1
	}
	return a
}

// FillRect fills an axis-aligned rectangle, snapped to whole device pixels
func (c *Canvas) FillRect(x, y, w, h float64) {
	src, ok := c.source()
	if !ok {
		return
	}
	x0, y0 := c.device(x, y)
	x1, y1 := c.device(x+w, y+h)
	if !finite4(x0, y0, x1, y1) {
		return
	}
	r := image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
	op := draw.Over
	if src.C.(color.NRGBA).A == 0xFF {
		op = draw.Src
	}
	draw.Draw(c.img, r.Intersect(c.img.Rect), src, image.Point{}, op)
}

// FillPath fills p with the nonzero rule, anti-aliased
// Open subpaths are closed implicitly
func (c *Canvas) FillPath(p glyph.Path) {
	if p.Empty() {
		return
	}
	src, ok := c.source()
	if !ok {
		return
	}

	lo, hi, ok := glyph.Bounds(p)
	if !ok {
		return
	}
	x0, y0 := c.device(lo.X, lo.Y)
	x1, y1 := c.device(hi.X, hi.Y)
	if !finite4(x0, y0, x1, y1) {
		c.fillSkip++
		return
	}
	box := image.Rect(int(math.Floor(math.Min(x0, x1))), int(math.Floor(math.Min(y0, y1))),
		int(math.Ceil(math.Max(x0, x1))), int(math.Ceil(math.Max(y0, y1))))
	if box.Empty() || !box.Overlaps(c.img.Rect) {
		return
	}
	if box.Dx() > maxMaskSide || box.Dy() > maxMaskSide {
		c.fillSkip++
		return
	}

	c.ras.Reset(box.Dx(), box.Dy())
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	pt := func(q glyph.Point) (float32, float32) {
		dx, dy := c.device(q.X, q.Y)
		return float32(dx - ox), float32(dy - oy)
	}

	open := false
	for _, cmd := range p {
		switch cmd.Op {
		case glyph.OpMove:
			if open {
				c.ras.ClosePath()
			}
			c.ras.MoveTo(pt(cmd.Pts[0]))
			open = true
		case glyph.OpLine:
			c.ras.LineTo(pt(cmd.Pts[0]))
		case glyph.OpQuad:
			bx, by := pt(cmd.Pts[0])
			cx, cy := pt(cmd.Pts[1])
			c.ras.QuadTo(bx, by, cx, cy)
		case glyph.OpCube:
			bx, by := pt(cmd.Pts[0])
			cx, cy := pt(cmd.Pts[1])
			dx, dy := pt(cmd.Pts[2])
			c.ras.CubeTo(bx, by, cx, cy, dx, dy)
		case glyph.OpClose:
			if open {
				c.ras.ClosePath()
				open = false
			}
		}
	}
	if open {
		c.ras.ClosePath()
	}

	mask := c.mask(box.Dx(), box.Dy())
	c.ras.Draw(mask, mask.Rect, image.Opaque, image.Point{})
	draw.DrawMask(c.img, box, src, image.Point{}, mask, image.Point{}, draw.Over)
}

// mask returns a zero-origin alpha image backed by a reused buffer
// Every pixel is overwritten by the rasterizer, so the buffer is not cleared
func (c *Canvas) mask(w, h int) *image.Alpha {
	if cap(c.maskPix) < w*h {
		c.maskPix = make([]uint8, w*h)
	}
	return &image.Alpha{Pix: c.maskPix[:w*h], Stride: w, Rect: image.Rect(0, 0, w, h)}
}

func finite4(a, b, c, d float64) bool {
	for _, v := range [4]float64{a, b, c, d} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
