package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/glyph-globe/engine"
	"github.com/lixenwraith/glyph-globe/globe"
	"github.com/lixenwraith/glyph-globe/glyph"
	"github.com/lixenwraith/glyph-globe/raster"
	"github.com/lixenwraith/glyph-globe/status"
)

// game drives the globe from ebiten: Update feeds pointer state and due decay
// ticks, Draw paints one frame into a raster canvas and uploads it
type game struct {
	clock engine.TimeProvider
	sched *engine.Scheduler

	vel    *globe.Velocity
	ctrl   *globe.Controller
	rend   *globe.Renderer
	canvas *raster.Canvas

	width, height int // layout units
	pixelRatio    float64

	// Last pointer position in layout units, valid while over
	cx, cy int
	over   bool

	frame *ebiten.Image
}

func newGame(glyphs []glyph.Glyph, tuning globe.Tuning, clock engine.TimeProvider, reg *status.Registry, width, height int) *game {
	sched := engine.NewScheduler(clock)
	vel := globe.NewVelocity(tuning.MinSpeed)
	g := &game{
		clock:      clock,
		sched:      sched,
		vel:        vel,
		ctrl:       globe.NewController(vel, sched, tuning, reg),
		rend:       globe.NewRenderer(glyphs, vel, tuning, reg),
		canvas:     raster.New(width, height, 1),
		pixelRatio: 1,
	}
	g.resize(width, height, 1)
	return g
}

func (g *game) resize(width, height int, pixelRatio float64) {
	if width == g.width && height == g.height && pixelRatio == g.pixelRatio {
		return
	}
	g.width, g.height, g.pixelRatio = width, height, pixelRatio
	g.canvas.Resize(width, height, pixelRatio)
	g.ctrl.Resize(float64(width), float64(height))
}

// pointer applies one sampled pointer state; moves are reported only on change
// and leave only on the transition out of the surface
func (g *game) pointer(x, y int, focused bool) {
	inside := focused && x >= 0 && y >= 0 && x < g.width && y < g.height
	switch {
	case inside && (!g.over || x != g.cx || y != g.cy):
		g.cx, g.cy, g.over = x, y, true
		g.ctrl.PointerMove(float64(x), float64(y))
	case !inside && g.over:
		g.over = false
		g.ctrl.PointerLeave()
	}
}

func (g *game) Update() error {
	// Cursor is reported in screen pixels, the layout runs at the backing scale
	k := raster.BackingScale(g.pixelRatio)
	x, y := ebiten.CursorPosition()
	g.pointer(int(float64(x)/k), int(float64(y)/k), ebiten.IsFocused())
	g.sched.RunDue(g.clock.Now())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.rend.Frame(g.canvas, globe.Surface{Width: float64(g.width), Height: float64(g.height), PixelRatio: g.pixelRatio})

	img := g.canvas.Image()
	b := img.Bounds()
	if g.frame == nil || g.frame.Bounds().Dx() != b.Dx() || g.frame.Bounds().Dy() != b.Dy() {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.frame.WritePixels(img.Pix)
	screen.DrawImage(g.frame, nil)
}

// Layout sizes the screen image to the canvas backing store
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.resize(outsideWidth, outsideHeight, ebiten.Monitor().DeviceScaleFactor())
	k := raster.BackingScale(g.pixelRatio)
	return int(float64(g.width) * k), int(float64(g.height) * k)
}
