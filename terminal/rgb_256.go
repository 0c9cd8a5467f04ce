package terminal

// xterm 256-color palette layout
//
// Color cube: index = 16 + 36*r + 6*g + b where r,g,b ∈ [0,5]
// Grayscale ramp: indices 232-255, level = 8 + 10*(index-232)

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// r, g, b must be in [0,5]. Values outside that range are clamped.
func Cube256(r, g, b uint8) uint8 {
	r, g, b = min(r, 5), min(g, 5), min(b, 5)
	return 16 + 36*r + 6*g + b
}

// CubeRGB256 returns the (r, g, b) cube coordinates for a 256-palette color cube index.
// Returns (0,0,0) for indices outside [16,231].
func CubeRGB256(index uint8) (r, g, b uint8) {
	if index < 16 || index > 231 {
		return 0, 0, 0
	}
	n := index - 16
	return n / 36, (n % 36) / 6, n % 6
}

// Gray256 returns the xterm 256-palette index for a grayscale step in [0,23]
func Gray256(step uint8) uint8 {
	return 232 + min(step, 23)
}

// PaletteRGB returns the nominal RGB of a cube or grayscale palette index
// The 16 system colors are terminal-defined and report black
func PaletteRGB(index uint8) RGB {
	switch {
	case index >= 232:
		l := uint8(8 + 10*int(index-232))
		return RGB{l, l, l}
	case index >= 16:
		r, g, b := CubeRGB256(index)
		return RGB{cubeValues[r], cubeValues[g], cubeValues[b]}
	}
	return RGBBlack
}
