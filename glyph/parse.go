package glyph

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrBadPath wraps every path data syntax error
var ErrBadPath = errors.New("bad path")

// argCount is the number of arguments per set for each SVG path command
func argCount(cmd byte) int {
	switch cmd {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'C', 'c':
		return 6
	case 'S', 's', 'Q', 'q':
		return 4
	case 'A', 'a':
		return 7
	case 'Z', 'z':
		return 0
	}
	return -1
}

// pathScanner walks SVG path data bytes
type pathScanner struct {
	d   []byte
	pos int
}

func (s *pathScanner) done() bool {
	return s.pos >= len(s.d)
}

// skipSep consumes whitespace and at most one comma between arguments
func (s *pathScanner) skipSep() {
	comma := false
	for !s.done() {
		switch c := s.d[s.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
			s.pos++
		case c == ',' && !comma:
			comma = true
			s.pos++
		default:
			return
		}
	}
}

func (s *pathScanner) startsNumber() bool {
	if s.done() {
		return false
	}
	c := s.d[s.pos]
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func (s *pathScanner) number() (float64, bool) {
	if !s.startsNumber() {
		return 0, false
	}
	f, n := strconv.ParseFloat(s.d[s.pos:])
	if n == 0 {
		return 0, false
	}
	s.pos += n
	return f, true
}

// flag reads a single 0/1 arc flag, which may be written without separators
func (s *pathScanner) flag() (float64, bool) {
	if s.done() {
		return 0, false
	}
	switch s.d[s.pos] {
	case '0':
		s.pos++
		return 0, true
	case '1':
		s.pos++
		return 1, true
	}
	return 0, false
}

// pathBuilder tracks pen state while commands are appended
type pathBuilder struct {
	p       Path
	cur     Point
	start   Point
	ctrl    Point // last control point for smooth curve reflection
	lastCmd byte
	open    bool
}

func (b *pathBuilder) ensureOpen() {
	if !b.open {
		b.p = append(b.p, Command{Op: OpMove, Pts: [3]Point{b.cur}})
		b.start = b.cur
		b.open = true
	}
}

func (b *pathBuilder) moveTo(pt Point) {
	b.p = append(b.p, Command{Op: OpMove, Pts: [3]Point{pt}})
	b.cur, b.start, b.ctrl = pt, pt, pt
	b.open = true
}

func (b *pathBuilder) lineTo(pt Point) {
	b.ensureOpen()
	b.p = append(b.p, Command{Op: OpLine, Pts: [3]Point{pt}})
	b.cur, b.ctrl = pt, pt
}

func (b *pathBuilder) quadTo(c, pt Point) {
	b.ensureOpen()
	b.p = append(b.p, Command{Op: OpQuad, Pts: [3]Point{c, pt}})
	b.cur, b.ctrl = pt, c
}

func (b *pathBuilder) cubeTo(c1, c2, pt Point) {
	b.ensureOpen()
	b.p = append(b.p, Command{Op: OpCube, Pts: [3]Point{c1, c2, pt}})
	b.cur, b.ctrl = pt, c2
}

func (b *pathBuilder) arcTo(rx, ry, phi float64, large, sweep bool, pt Point) {
	b.ensureOpen()
	b.p = append(b.p, arcToCubics(b.cur, rx, ry, phi, large, sweep, pt)...)
	b.cur, b.ctrl = pt, pt
}

func (b *pathBuilder) close() {
	if !b.open {
		return
	}
	b.p = append(b.p, Command{Op: OpClose})
	b.cur, b.ctrl = b.start, b.start
	b.open = false
}

// reflect mirrors the last control point through the pen when the previous command
// belongs to the same curve family, otherwise the pen itself is the control point
func (b *pathBuilder) reflect(family string) Point {
	for i := 0; i < len(family); i++ {
		if b.lastCmd == family[i] {
			return Point{2*b.cur.X - b.ctrl.X, 2*b.cur.Y - b.ctrl.Y}
		}
	}
	return b.cur
}

func (b *pathBuilder) apply(cmd byte, a *[7]float64) {
	rel := cmd >= 'a'
	abs := func(x, y float64) Point {
		if rel {
			return Point{b.cur.X + x, b.cur.Y + y}
		}
		return Point{x, y}
	}

	switch cmd {
	case 'M', 'm':
		b.moveTo(abs(a[0], a[1]))
	case 'L', 'l':
		b.lineTo(abs(a[0], a[1]))
	case 'H':
		b.lineTo(Point{a[0], b.cur.Y})
	case 'h':
		b.lineTo(Point{b.cur.X + a[0], b.cur.Y})
	case 'V':
		b.lineTo(Point{b.cur.X, a[0]})
	case 'v':
		b.lineTo(Point{b.cur.X, b.cur.Y + a[0]})
	case 'C', 'c':
		b.cubeTo(abs(a[0], a[1]), abs(a[2], a[3]), abs(a[4], a[5]))
	case 'S', 's':
		c1 := b.reflect("CcSs")
		b.cubeTo(c1, abs(a[0], a[1]), abs(a[2], a[3]))
	case 'Q', 'q':
		b.quadTo(abs(a[0], a[1]), abs(a[2], a[3]))
	case 'T', 't':
		c := b.reflect("QqTt")
		b.quadTo(c, abs(a[0], a[1]))
	case 'A', 'a':
		b.arcTo(a[0], a[1], a[2], a[3] == 1, a[4] == 1, abs(a[5], a[6]))
	case 'Z', 'z':
		b.close()
	}
	b.lastCmd = cmd
}

// ParsePath parses SVG path data into an absolute command list
// Empty input yields a nil path and no error
func ParsePath(d string) (Path, error) {
	s := pathScanner{d: []byte(d)}
	b := pathBuilder{}

	s.skipSep()
	var cmd byte
	for !s.done() {
		c := s.d[s.pos]
		if n := argCount(c); n >= 0 {
			cmd = c
			s.pos++
		} else if cmd == 0 {
			return nil, fmt.Errorf("%w: path should start with command", ErrBadPath)
		} else if !s.startsNumber() || argCount(cmd) == 0 {
			return nil, fmt.Errorf("%w: unknown command '%c' at position %d", ErrBadPath, c, s.pos)
		}

		n := argCount(cmd)
		if n == 0 {
			b.apply(cmd, &[7]float64{})
			s.skipSep()
			continue
		}

		var args [7]float64
		for first := true; ; first = false {
			s.skipSep()
			if !first && !s.startsNumber() {
				break
			}
			for i := 0; i < n; i++ {
				s.skipSep()
				var ok bool
				if (cmd == 'A' || cmd == 'a') && (i == 3 || i == 4) {
					args[i], ok = s.flag()
					if !ok {
						return nil, fmt.Errorf("%w: largeArc and sweep flags should be 0 or 1 in command '%c' at position %d", ErrBadPath, cmd, s.pos)
					}
					continue
				}
				args[i], ok = s.number()
				if !ok {
					return nil, fmt.Errorf("%w: sets of %d numbers should follow command '%c' at position %d", ErrBadPath, n, cmd, s.pos)
				}
			}
			b.apply(cmd, &args)

			// Extra coordinate pairs after a moveto are implicit linetos
			switch cmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			}
		}
	}
	return b.p, nil
}

// MustParsePath is ParsePath for static data, it panics on error
func MustParsePath(d string) Path {
	p, err := ParsePath(d)
	if err != nil {
		panic(err)
	}
	return p
}

// arcToCubics converts an SVG endpoint-parameterized elliptical arc into cubic segments
// of at most a quarter turn each
func arcToCubics(from Point, rx, ry, phiDeg float64, large, sweep bool, to Point) []Command {
	if from == to {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []Command{{Op: OpLine, Pts: [3]Point{to}}}
	}

	sinPhi, cosPhi := math.Sincos(phiDeg * math.Pi / 180)
	dx, dy := (from.X-to.X)/2, (from.Y-to.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// Scale radii up when the endpoints cannot be joined
	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if den != 0 {
		coef = math.Sqrt(math.Max(0, num/den))
	}
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	cx := cosPhi*cx1 - sinPhi*cy1 + (from.X+to.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (from.Y+to.Y)/2

	ux, uy := (x1-cx1)/rx, (y1-cy1)/ry
	vx, vy := (-x1-cx1)/rx, (-y1-cy1)/ry
	theta := vecAngle(1, 0, ux, uy)
	delta := vecAngle(ux, uy, vx, vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	segs := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if segs < 1 {
		segs = 1
	}
	step := delta / float64(segs)
	k := 4.0 / 3.0 * math.Tan(step/4)

	onEllipse := func(x, y float64) Point {
		return Point{
			X: cx + rx*x*cosPhi - ry*y*sinPhi,
			Y: cy + rx*x*sinPhi + ry*y*cosPhi,
		}
	}

	out := make([]Command, 0, segs)
	for i := 0; i < segs; i++ {
		s1, c1 := math.Sincos(theta)
		s2, c2 := math.Sincos(theta + step)
		out = append(out, Command{Op: OpCube, Pts: [3]Point{
			onEllipse(c1-k*s1, s1+k*c1),
			onEllipse(c2+k*s2, s2-k*c2),
			onEllipse(c2, s2),
		}})
		theta += step
	}
	out[len(out)-1].Pts[2] = to
	return out
}

func vecAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
