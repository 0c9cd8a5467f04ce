package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/glyph-globe/audio"
	"github.com/lixenwraith/glyph-globe/globe"
	"github.com/lixenwraith/glyph-globe/glyph"
	"github.com/lixenwraith/glyph-globe/raster"
	"github.com/lixenwraith/glyph-globe/render"
	"github.com/lixenwraith/glyph-globe/status"
	"github.com/lixenwraith/glyph-globe/terminal"
)

// gaugeWidth is the HUD speed bar length in cells
const gaugeWidth = 10

// app wires the terminal to the globe: cells hold two canvas pixel rows each,
// so the surface is w x 2h pixels and a mouse cell maps to its center pixel
type app struct {
	screen *terminal.Screen
	cells  *render.CellBuffer
	canvas *raster.Canvas

	tuning globe.Tuning
	vel    *globe.Velocity
	ctrl   *globe.Controller
	rend   *globe.Renderer
	reg    *status.Registry

	sound *audio.SoundManager // nil when audio is off
	hud   bool

	ticks     *atomic.Int64
	lastTicks int64
	frameMs   *status.Float
}

func newApp(screen *terminal.Screen, glyphs []glyph.Glyph, tuning globe.Tuning, sched globe.Scheduler,
	reg *status.Registry, sound *audio.SoundManager, hud bool) *app {
	vel := globe.NewVelocity(tuning.MinSpeed)
	a := &app{
		screen:  screen,
		cells:   render.NewCellBuffer(0, 0),
		canvas:  raster.New(0, 0, 1),
		tuning:  tuning,
		vel:     vel,
		ctrl:    globe.NewController(vel, sched, tuning, reg),
		rend:    globe.NewRenderer(glyphs, vel, tuning, reg),
		reg:     reg,
		sound:   sound,
		hud:     hud,
		ticks:   reg.Int(status.DecayTicks),
		frameMs: reg.Float(status.FrameMillis),
	}
	a.resize(screen.Size())
	return a
}

func (a *app) resize(w, h int) {
	a.cells.Resize(w, h)
	pw, ph := a.cells.PixelSize()
	a.canvas.Resize(pw, ph, 1)
	a.ctrl.Resize(float64(pw), float64(ph))
}

// hudRow returns the cell row reserved for the HUD, -1 when hidden
func (a *app) hudRow() int {
	_, h := a.cells.Size()
	if !a.hud || h < 2 {
		return -1
	}
	return h - 1
}

// handleEvent applies one input event, returning false to quit
func (a *app) handleEvent(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventClosed:
		return false

	case terminal.EventKey:
		if ev.IsQuit() {
			return false
		}
		if ev.Rune == 'h' {
			a.hud = !a.hud
		}

	case terminal.EventResize:
		a.resize(ev.Width, ev.Height)
		a.screen.Sync()

	case terminal.EventFocus:
		if !ev.Focused {
			a.leave()
		}

	case terminal.EventMouse:
		w, h := a.cells.Size()
		if ev.X < 0 || ev.Y < 0 || ev.X >= w || ev.Y >= h || ev.Y == a.hudRow() {
			a.leave()
			return true
		}
		a.ctrl.PointerMove(float64(ev.X)+0.5, float64(2*ev.Y)+1)
	}
	return true
}

// leave ends pointer tracking once; repeated leave reports would restart the decay run
func (a *app) leave() {
	if a.ctrl.Over() {
		a.ctrl.PointerLeave()
	}
}

// frame paints the globe, composes it into cells, overlays the HUD and flushes
func (a *app) frame(time.Time) {
	pw, ph := a.cells.PixelSize()
	a.rend.Frame(a.canvas, globe.Surface{Width: float64(pw), Height: float64(ph), PixelRatio: 1})
	a.cells.Compose(a.canvas.Image())

	frac := globe.SpinFraction(a.vel.Snapshot(), a.tuning)
	if row := a.hudRow(); row >= 0 {
		a.drawHUD(row, frac)
	}

	if a.sound != nil {
		a.sound.Update(frac)
		if n := a.ticks.Load(); n != a.lastTicks {
			a.lastTicks = n
			a.sound.PlayTick()
		}
	}

	a.cells.Flush(a.screen)
}

func (a *app) drawHUD(row int, frac float64) {
	w, _ := a.cells.Size()
	a.cells.Fill(0, row, w, render.RgbHudPanel)

	v := a.vel.Snapshot()
	line := fmt.Sprintf(" %-8s vy %+.4f vz %+.4f  %5.1fms ", a.ctrl.State(), v.Y, v.Z, a.frameMs.Get())
	x := a.cells.Text(0, row, line, render.RgbHudText, terminal.AttrNone)

	filled := int(frac*gaugeWidth + 0.5)
	for i := 0; i < gaugeWidth; i++ {
		r, attrs := "█", terminal.AttrBold
		if i >= filled {
			r, attrs = "░", terminal.AttrDim
		}
		a.cells.Text(x+i, row, r, render.SpeedColor(frac), attrs)
	}
	a.cells.Text(x+gaugeWidth, row, "  h hud  q quit", render.RgbHudText, terminal.AttrDim)
}
