package terminal

import (
	"fmt"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode accepts "auto", "256" or "truecolor"; auto probes the environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DetectColorMode(), nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "24bit":
		return ColorModeTrueColor, nil
	}
	return ColorMode256, fmt.Errorf("unknown color mode %q", s)
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to the nearest cube level
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			if d := abs(i - int(cubeValues[j])); d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 converts RGB to the nearest 256-color palette index, preferring the
// grayscale ramp for near-neutral colors when it is closer than the cube
func RGBTo256(c RGB) uint8 {
	r, g, b := c.R, c.G, c.B
	cube := Cube256(cubeIndex[r], cubeIndex[g], cubeIndex[b])

	gray := (int(r) + int(g) + int(b)) / 3
	if max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray)) >= 10 {
		return cube
	}
	if gray < 4 {
		return Cube256(0, 0, 0)
	}
	if gray > 243 {
		return Cube256(5, 5, 5)
	}

	step := uint8(min((gray-8+5)/10, 23))
	if gray < 8 {
		step = 0
	}
	grayLevel := 8 + 10*int(step)
	grayDist := abs(int(r)-grayLevel) + abs(int(g)-grayLevel) + abs(int(b)-grayLevel)
	cubeDist := abs(int(r)-int(cubeValues[cubeIndex[r]])) +
		abs(int(g)-int(cubeValues[cubeIndex[g]])) +
		abs(int(b)-int(cubeValues[cubeIndex[b]]))
	if grayDist < cubeDist {
		return Gray256(step)
	}
	return cube
}
