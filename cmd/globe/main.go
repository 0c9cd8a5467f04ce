// Command globe spins the glyph globe in the terminal at two pixels per cell
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/glyph-globe/audio"
	"github.com/lixenwraith/glyph-globe/config"
	"github.com/lixenwraith/glyph-globe/core"
	"github.com/lixenwraith/glyph-globe/engine"
	"github.com/lixenwraith/glyph-globe/status"
	"github.com/lixenwraith/glyph-globe/terminal"
)

var (
	configFlag = flag.String("config", "globe.toml", "Settings file, missing file uses defaults")
	glyphsFlag = flag.String("glyphs", "", "SVG container document, overrides globe.glyphs")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides display.color)")
	fpsFlag    = flag.Int("fps", 0, "Frame rate, overrides display.fps")
	audioFlag  = flag.Bool("audio", false, "Play the spin hum and decay ticks")
	hudFlag    = flag.Bool("hud", true, "Show the status line")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/globe.log")
	dumpFlag   = flag.Bool("dump-config", false, "Print the effective settings as TOML and exit")
)

func main() {
	flag.Parse()
	os.Exit(execute())
}

// execute runs the globe and returns the process exit status, so deferred
// cleanup completes before main calls os.Exit
func execute() int {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer func() {
			log.SetOutput(io.Discard)
			logFile.Close()
		}()
	}

	if err := run(); err != nil {
		log.Printf("globe: %v", err)
		fmt.Fprintf(os.Stderr, "globe: %v\n", err)
		return 1
	}
	return 0
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(&cfg)
	if *dumpFlag {
		return config.Encode(os.Stdout, cfg)
	}

	tuning, err := cfg.Tuning()
	if err != nil {
		return err
	}
	glyphs, err := cfg.Glyphs()
	if err != nil {
		return err
	}

	mode, err := terminal.ParseColorMode(cfg.Display.Color)
	if err != nil {
		return err
	}

	screen, err := terminal.NewScreen(mode)
	if err != nil {
		return err
	}
	core.SetCrashScreen(screen)
	defer core.SetCrashScreen(nil)
	defer screen.Fini()

	var sound *audio.SoundManager
	if cfg.Audio.Enabled {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := status.NewRegistry()
	clock := engine.NewMonotonicTimeProvider()
	sched := engine.NewScheduler(clock)

	a := newApp(screen, glyphs, tuning, sched, reg, sound, cfg.Display.HUD)
	loop := engine.NewLoop(clock, sched, cfg.Display.FPS, screen.Events(ctx, core.Go), reg)
	loop.OnEvent = a.handleEvent
	loop.OnFrame = a.frame

	log.Printf("globe: %d glyphs, %s, %d fps", len(glyphs), mode, cfg.Display.FPS)
	err = loop.Run(ctx)
	log.Printf("globe: exit %s", reg.Summary())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// applyFlags layers explicitly set flags over the loaded settings
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "glyphs":
			cfg.Globe.Glyphs = *glyphsFlag
		case "color":
			cfg.Display.Color = *colorFlag
		case "fps":
			cfg.Display.FPS = *fpsFlag
		case "audio":
			cfg.Audio.Enabled = *audioFlag
		case "hud":
			cfg.Display.HUD = *hudFlag
		}
	})
}
