package render

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HUD palette
var (
	RgbHudText  = RGB{R: 0x1A, G: 0x1B, B: 0x26}
	RgbHudPanel = RGB{R: 0xE8, G: 0xE8, B: 0xEE}
	RgbSpinIdle = RGB{R: 0x2A, G: 0x9D, B: 0x8F} // teal at idle spin
	RgbSpinFast = RGB{R: 0xE6, G: 0x39, B: 0x46} // red at full pointer speed
)

// SpeedColor maps a speed fraction in [0,1] to the HUD gauge color, blended in
// CIE-L*a*b* so the midpoint stays saturated
func SpeedColor(frac float64) RGB {
	if math.IsNaN(frac) || frac <= 0 {
		return RgbSpinIdle
	}
	if frac >= 1 {
		return RgbSpinFast
	}
	a := toColorful(RgbSpinIdle)
	b := toColorful(RgbSpinFast)
	r, g, bl := a.BlendLab(b, frac).Clamped().RGB255()
	return RGB{R: r, G: g, B: bl}
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
