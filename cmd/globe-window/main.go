// Command globe-window spins the glyph globe in a desktop window
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/glyph-globe/config"
	"github.com/lixenwraith/glyph-globe/engine"
	"github.com/lixenwraith/glyph-globe/status"
)

var (
	configFlag = flag.String("config", "globe.toml", "Settings file, missing file uses defaults")
	glyphsFlag = flag.String("glyphs", "", "SVG container document, overrides globe.glyphs")
	widthFlag  = flag.Int("width", 0, "Window width, overrides display.width")
	heightFlag = flag.Int("height", 0, "Window height, overrides display.height")
	fpsFlag    = flag.Int("fps", 0, "Update rate, overrides display.fps")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "globe-window: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
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
		case "fps":
			cfg.Display.FPS = *fpsFlag
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

	reg := status.NewRegistry()
	g := newGame(glyphs, tuning, engine.NewMonotonicTimeProvider(), reg, cfg.Display.Width, cfg.Display.Height)

	ebiten.SetWindowTitle("glyph globe")
	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Display.FPS)

	err = ebiten.RunGame(g)
	log.Printf("globe-window: exit %s", reg.Summary())
	return err
}
