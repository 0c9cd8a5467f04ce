// Package config loads the TOML settings file and turns it into globe tuning
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/glyph-globe/asset"
	"github.com/lixenwraith/glyph-globe/globe"
	"github.com/lixenwraith/glyph-globe/glyph"
	"github.com/lixenwraith/glyph-globe/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Duration is a time.Duration read and written as a Go duration string ("200ms")
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Config is the settings file layout
type Config struct {
	Globe    Globe    `toml:"globe"`
	Velocity Velocity `toml:"velocity"`
	Display  Display  `toml:"display"`
	Audio    Audio    `toml:"audio"`
}

type Globe struct {
	Glyphs           string  `toml:"glyphs"` // SVG container document, empty for the built-in set
	DotRadius        float64 `toml:"dot_radius"`
	FixedDotRadius   bool    `toml:"fixed_dot_radius"`
	RenderScale      float64 `toml:"render_scale"`
	ReferenceWidth   float64 `toml:"reference_width"`
	PerspectiveRatio float64 `toml:"perspective_ratio"`
	GlobeRadiusRatio float64 `toml:"globe_radius_ratio"`
	Background       string  `toml:"background"`
}

type Velocity struct {
	MinSpeed           float64  `toml:"min_speed"`
	MouseSpeed         float64  `toml:"mouse_speed"`
	DecayFactor        float64  `toml:"decay_factor"`
	DecayInterval      Duration `toml:"decay_interval"`
	DecayDirectionGain float64  `toml:"decay_direction_gain"`
}

type Display struct {
	FPS    int    `toml:"fps"`
	Color  string `toml:"color"` // auto, 256, truecolor
	HUD    bool   `toml:"hud"`
	Width  int    `toml:"width"` // window size for the windowed binary
	Height int    `toml:"height"`
}

type Audio struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Globe: Globe{
			DotRadius:        parameter.DotRadius,
			RenderScale:      parameter.RenderScale,
			ReferenceWidth:   parameter.ReferenceWidth,
			PerspectiveRatio: parameter.PerspectiveRatio,
			GlobeRadiusRatio: parameter.GlobeRadiusRatio,
			Background:       glyph.Hex(color.NRGBA{parameter.Background[0], parameter.Background[1], parameter.Background[2], 0xFF}),
		},
		Velocity: Velocity{
			MinSpeed:           parameter.MinSpeed,
			MouseSpeed:         parameter.MouseSpeed,
			DecayFactor:        parameter.DecayFactor,
			DecayInterval:      Duration(parameter.DecayInterval),
			DecayDirectionGain: parameter.DecayDirectionGain,
		},
		Display: Display{
			FPS:    parameter.FPS,
			Color:  "auto",
			HUD:    true,
			Width:  960,
			Height: 720,
		},
	}
}

// Load reads path over the defaults; a missing file yields the defaults unchanged
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if cfg, err = Decode(f, cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r over base and validates the result
// Unknown keys are rejected so typos surface instead of silently using defaults
func Decode(r io.Reader, base Config) (Config, error) {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&base); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return base, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return base, fmt.Errorf("decode config: %w", err)
	}
	return base, base.Validate()
}

// Encode writes cfg as TOML
func Encode(w io.Writer, cfg Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(cfg)
}

// Validate reports every out-of-range field, each wrapped with ErrInvalid
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	g := c.Globe
	if g.DotRadius < 0 {
		bad("globe.dot_radius %v is negative", g.DotRadius)
	}
	if g.RenderScale <= 0 {
		bad("globe.render_scale %v must be positive", g.RenderScale)
	}
	if g.ReferenceWidth <= 0 {
		bad("globe.reference_width %v must be positive", g.ReferenceWidth)
	}
	if g.GlobeRadiusRatio <= 0 {
		bad("globe.globe_radius_ratio %v must be positive", g.GlobeRadiusRatio)
	}
	// Keeps perspective + z*radius positive for every z on the unit sphere
	if g.PerspectiveRatio <= g.GlobeRadiusRatio {
		bad("globe.perspective_ratio %v must exceed globe_radius_ratio %v", g.PerspectiveRatio, g.GlobeRadiusRatio)
	}
	if _, err := glyph.ParseColor(g.Background); err != nil {
		bad("globe.background %q: %v", g.Background, err)
	}

	v := c.Velocity
	if v.MinSpeed <= 0 {
		bad("velocity.min_speed %v must be positive", v.MinSpeed)
	}
	if v.MouseSpeed < 0 {
		bad("velocity.mouse_speed %v is negative", v.MouseSpeed)
	}
	if v.DecayFactor <= 1 {
		bad("velocity.decay_factor %v must exceed 1", v.DecayFactor)
	}
	if v.DecayInterval <= 0 {
		bad("velocity.decay_interval %v must be positive", time.Duration(v.DecayInterval))
	}

	d := c.Display
	if d.FPS < 1 || d.FPS > parameter.MaxFPS {
		bad("display.fps %d outside 1..%d", d.FPS, parameter.MaxFPS)
	}
	switch d.Color {
	case "auto", "256", "truecolor":
	default:
		bad("display.color %q is not auto, 256 or truecolor", d.Color)
	}
	if d.Width < 1 || d.Height < 1 {
		bad("display size %dx%d must be positive", d.Width, d.Height)
	}

	return errors.Join(errs...)
}

// Tuning converts the settings into globe constants
func (c Config) Tuning() (globe.Tuning, error) {
	if err := c.Validate(); err != nil {
		return globe.Tuning{}, err
	}
	bg, _ := glyph.ParseColor(c.Globe.Background)
	return globe.Tuning{
		DotRadius:          c.Globe.DotRadius,
		FixedDotRadius:     c.Globe.FixedDotRadius,
		RenderScale:        c.Globe.RenderScale,
		ReferenceWidth:     c.Globe.ReferenceWidth,
		PerspectiveRatio:   c.Globe.PerspectiveRatio,
		GlobeRadiusRatio:   c.Globe.GlobeRadiusRatio,
		MinSpeed:           c.Velocity.MinSpeed,
		MouseSpeed:         c.Velocity.MouseSpeed,
		DecayFactor:        c.Velocity.DecayFactor,
		DecayInterval:      time.Duration(c.Velocity.DecayInterval),
		DecayDirectionGain: c.Velocity.DecayDirectionGain,
		Background:         [3]uint8{bg.R, bg.G, bg.B},
	}, nil
}

// Glyphs loads the configured glyph document, or the built-in set when none is named
func (c Config) Glyphs() ([]glyph.Glyph, error) {
	if c.Globe.Glyphs == "" {
		return glyph.LoadString(asset.DefaultGlyphs)
	}
	f, err := os.Open(c.Globe.Glyphs)
	if err != nil {
		return nil, fmt.Errorf("open glyphs: %w", err)
	}
	defer f.Close()

	glyphs, err := glyph.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Globe.Glyphs, err)
	}
	return glyphs, nil
}
