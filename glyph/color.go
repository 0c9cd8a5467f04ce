package glyph

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrNoColor reports an absent fill ("", "none", "inherit")
var ErrNoColor = errors.New("no color")

// White is the fill used when neither a region nor its glyph declares one
var White = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// ParseColor accepts #rgb, #rrggbb and SVG/CSS color keywords
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none", "inherit", "currentcolor":
		return color.NRGBA{}, ErrNoColor
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
	}

	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}, nil
	}
	return color.NRGBA{}, fmt.Errorf("parse color %q: unknown color", s)
}

// Hex formats a color as #rrggbb
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
