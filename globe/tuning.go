package globe

import (
	"time"

	"github.com/lixenwraith/glyph-globe/parameter"
)

// Tuning carries the adjustable constants of the globe
// Zero values are not meaningful; start from DefaultTuning
type Tuning struct {
	DotRadius        float64
	FixedDotRadius   bool // offset by DotRadius as is instead of scaling it with surface width
	RenderScale      float64
	ReferenceWidth   float64
	PerspectiveRatio float64
	GlobeRadiusRatio float64

	MinSpeed           float64
	MouseSpeed         float64
	DecayFactor        float64
	DecayInterval      time.Duration
	DecayDirectionGain float64

	Background [3]uint8
}

// DefaultTuning returns the parameter package defaults
func DefaultTuning() Tuning {
	return Tuning{
		DotRadius:          parameter.DotRadius,
		RenderScale:        parameter.RenderScale,
		ReferenceWidth:     parameter.ReferenceWidth,
		PerspectiveRatio:   parameter.PerspectiveRatio,
		GlobeRadiusRatio:   parameter.GlobeRadiusRatio,
		MinSpeed:           parameter.MinSpeed,
		MouseSpeed:         parameter.MouseSpeed,
		DecayFactor:        parameter.DecayFactor,
		DecayInterval:      parameter.DecayInterval,
		DecayDirectionGain: parameter.DecayDirectionGain,
		Background:         parameter.Background,
	}
}
