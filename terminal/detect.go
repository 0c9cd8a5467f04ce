package terminal

import (
	"os"

	"github.com/muesli/termenv"
)

// DetectColorMode determines terminal color capability from the environment
// Anything short of 24-bit support is driven through the 256 palette
func DetectColorMode() ColorMode {
	return colorModeFor(termenv.NewOutput(os.Stdout).EnvColorProfile())
}

func colorModeFor(p termenv.Profile) ColorMode {
	if p == termenv.TrueColor {
		return ColorModeTrueColor
	}
	return ColorMode256
}
