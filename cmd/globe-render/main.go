// Command globe-render draws globe frames headless on a simulated clock and
// writes the last frame as PNG, replaying scripted pointer events
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/glyph-globe/config"
	"github.com/lixenwraith/glyph-globe/engine"
	"github.com/lixenwraith/glyph-globe/globe"
	"github.com/lixenwraith/glyph-globe/glyph"
	"github.com/lixenwraith/glyph-globe/raster"
	"github.com/lixenwraith/glyph-globe/status"
)

var (
	configFlag = flag.String("config", "globe.toml", "Settings file, missing file uses defaults")
	glyphsFlag = flag.String("glyphs", "", "SVG container document, overrides globe.glyphs")
	framesFlag = flag.Int("frames", 1, "Frames to draw")
	widthFlag  = flag.Int("width", 0, "Surface width, overrides display.width")
	heightFlag = flag.Int("height", 0, "Surface height, overrides display.height")
	ratioFlag  = flag.Float64("ratio", 1, "Device pixel ratio, above 1 doubles the backing store")
	outFlag    = flag.String("out", "globe.png", "PNG output path")
)

func main() {
	var s script
	flag.Var(moveFlag{&s}, "move", "Pointer move x,y@frame in surface units (repeatable)")
	flag.Var(leaveFlag{&s}, "leave", "Pointer leave @frame (repeatable)")
	flag.Parse()

	if err := run(&s); err != nil {
		fmt.Fprintf(os.Stderr, "globe-render: %v\n", err)
		os.Exit(1)
	}
}

func run(s *script) error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "glyphs":
			cfg.Globe.Glyphs = *glyphsFlag
		case "width":
			cfg.Display.Width = *widthFlag
		case "height":
			cfg.Display.Height = *heightFlag
		}
	})
	tuning, err := cfg.Tuning()
	if err != nil {
		return err
	}
	glyphs, err := cfg.Glyphs()
	if err != nil {
		return err
	}

	r := newRun(glyphs, tuning, cfg.Display.FPS, cfg.Display.Width, cfg.Display.Height, *ratioFlag)
	r.play(s, *framesFlag)

	f, err := os.Create(*outFlag)
	if err != nil {
		return err
	}
	if err := png.Encode(f, r.canvas.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", *outFlag, err)
	}
	log.Printf("globe-render: %d frames to %s, %s", *framesFlag, *outFlag, r.reg.Summary())
	return f.Close()
}

// runner owns one headless globe on a mock clock
type runner struct {
	clock  *engine.MockTimeProvider
	sched  *engine.Scheduler
	loop   *engine.Loop[struct{}]
	vel    *globe.Velocity
	ctrl   *globe.Controller
	canvas *raster.Canvas
	reg    *status.Registry
	frames int
}

func newRun(glyphs []glyph.Glyph, tuning globe.Tuning, fps, width, height int, ratio float64) *runner {
	r := &runner{
		clock:  engine.NewMockTimeProvider(time.Unix(0, 0)),
		vel:    globe.NewVelocity(tuning.MinSpeed),
		canvas: raster.New(width, height, ratio),
		reg:    status.NewRegistry(),
	}
	r.sched = engine.NewScheduler(r.clock)
	r.ctrl = globe.NewController(r.vel, r.sched, tuning, r.reg)
	r.ctrl.Resize(float64(width), float64(height))

	rend := globe.NewRenderer(glyphs, r.vel, tuning, r.reg)
	surf := globe.Surface{Width: float64(width), Height: float64(height), PixelRatio: ratio}

	r.loop = engine.NewLoop[struct{}](r.clock, r.sched, fps, nil, r.reg)
	r.loop.OnFrame = func(time.Time) {
		rend.Frame(r.canvas, surf)
	}
	return r
}

// play draws n frames, applying scripted events before the frame they name
// and advancing the clock one frame interval after each frame
func (r *runner) play(s *script, n int) {
	for i := 0; i < n; i++ {
		for _, a := range s.due(i) {
			if a.leave {
				r.ctrl.PointerLeave()
			} else {
				r.ctrl.PointerMove(a.x, a.y)
			}
		}
		r.loop.Step()
		r.frames++
		r.clock.Advance(r.loop.Interval())
	}
}
