// Package glyph holds the vector glyph set painted on the globe: outlines as
// flattened command lists, per-region fill colors, and the SVG container loader.
package glyph

import (
	"image/color"
	"math"
)

// Op is a path drawing operation
type Op uint8

const (
	OpMove Op = iota
	OpLine
	OpQuad
	OpCube
	OpClose
)

func (o Op) String() string {
	switch o {
	case OpMove:
		return "M"
	case OpLine:
		return "L"
	case OpQuad:
		return "Q"
	case OpCube:
		return "C"
	case OpClose:
		return "Z"
	}
	return "?"
}

// pointCount is the number of points each Op consumes from Command.Pts
var pointCount = [...]int{OpMove: 1, OpLine: 1, OpQuad: 2, OpCube: 3, OpClose: 0}

// Points returns the number of meaningful entries in Command.Pts for op
func (o Op) Points() int {
	if int(o) >= len(pointCount) {
		return 0
	}
	return pointCount[o]
}

// Point is a 2D coordinate in glyph units
type Point struct {
	X, Y float64
}

// Command is one path operation; Pts holds control points followed by the end point
type Command struct {
	Op  Op
	Pts [3]Point
}

// End returns the pen position after the command, Close reports false
func (c Command) End() (Point, bool) {
	n := c.Op.Points()
	if n == 0 {
		return Point{}, false
	}
	return c.Pts[n-1], true
}

// Path is an outline in absolute coordinates, arcs already converted to cubics
type Path []Command

// Empty reports whether the path has nothing to fill
func (p Path) Empty() bool {
	for _, c := range p {
		if c.Op != OpMove && c.Op != OpClose {
			return false
		}
	}
	return true
}

// Bounds returns the control-point bounding box of the path
// ok is false for a path without points
func Bounds(p Path) (lo, hi Point, ok bool) {
	lo = Point{math.Inf(1), math.Inf(1)}
	hi = Point{math.Inf(-1), math.Inf(-1)}
	for _, c := range p {
		for i := 0; i < c.Op.Points(); i++ {
			pt := c.Pts[i]
			lo.X = math.Min(lo.X, pt.X)
			lo.Y = math.Min(lo.Y, pt.Y)
			hi.X = math.Max(hi.X, pt.X)
			hi.Y = math.Max(hi.Y, pt.Y)
			ok = true
		}
	}
	if !ok {
		return Point{}, Point{}, false
	}
	return lo, hi, true
}

// Region is one filled sub-shape of a glyph
type Region struct {
	Outline Path
	Fill    color.NRGBA
}

// Glyph is an ordered set of regions painted as one dot
type Glyph struct {
	Name    string
	// Primary is the first region's resolved fill, inherited by later regions without one
	Primary color.NRGBA
	Regions []Region
}

// Bounds returns the union of all region bounds
func (g *Glyph) Bounds() (lo, hi Point, ok bool) {
	for _, r := range g.Regions {
		rmin, rmax, rok := Bounds(r.Outline)
		if !rok {
			continue
		}
		if !ok {
			lo, hi, ok = rmin, rmax, true
			continue
		}
		lo.X = math.Min(lo.X, rmin.X)
		lo.Y = math.Min(lo.Y, rmin.Y)
		hi.X = math.Max(hi.X, rmax.X)
		hi.Y = math.Max(hi.Y, rmax.Y)
	}
	return lo, hi, ok
}
