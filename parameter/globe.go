package parameter

import "time"

// Glyph placement and paint scaling
const (
	// DotRadius is the nominal glyph radius in glyph units at ReferenceWidth
	// Projected positions are offset by this radius so the glyph box centers on the point
	DotRadius = 64.0

	// RenderScale multiplies the per-dot paint scale
	RenderScale = 1.1

	// ReferenceWidth is the surface width the glyph art is sized for
	ReferenceWidth = 1920.0
)

// Camera derived from surface width
const (
	// PerspectiveRatio sets perspective distance as a fraction of surface width
	PerspectiveRatio = 0.8

	// GlobeRadiusRatio sets globe radius as a fraction of surface width
	// Must stay below PerspectiveRatio so the depth divide never reaches zero
	GlobeRadiusRatio = 0.25

	// MinDepthDenominator floors perspective+z*radius as a fraction of perspective
	MinDepthDenominator = 0.05

	// AlphaDepthGain is the depth multiplier in the opacity heuristic
	AlphaDepthGain = 3.0
)

// Angular velocity, radians per frame
const (
	// MinSpeed is the idle spin kept on every axis
	MinSpeed = 0.0007

	// MouseSpeed maps a pointer offset of one full surface width/height to this velocity
	MouseSpeed = 0.05

	// DecayFactor divides vy/vz on every decay tick after pointer leave
	DecayFactor = 1.3

	// DecayInterval is the cadence of decay ticks
	DecayInterval = 200 * time.Millisecond

	// DecayDirectionGain scales the unit decay direction captured on pointer leave
	DecayDirectionGain = 0.1
)

// Frame loop
const (
	// FPS is the default frame rate standing in for the display refresh signal
	FPS = 60

	// MaxFPS bounds configured frame rates
	MaxFPS = 240
)

// Background is the surface clear color
var Background = [3]uint8{0xFF, 0xFF, 0xFF}
