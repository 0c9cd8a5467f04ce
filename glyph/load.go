package glyph

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/parse/v2/xml"
)

// ErrTooFewGlyphs is returned when a document yields fewer than two glyphs,
// the minimum the sphere sampler spreads over both poles
var ErrTooFewGlyphs = errors.New("glyph document needs at least two glyphs")

// element is a minimal XML node, only elements and attributes are retained
type element struct {
	name     string
	attrs    map[string]string
	children []*element
}

func (e *element) attr(name string) string {
	return e.attrs[name]
}

// readTree lexes an XML document into an element tree under a synthetic root
func readTree(r io.Reader) (*element, error) {
	l := xml.NewLexer(parse.NewInput(r))
	root := &element{name: "#document"}
	stack := []*element{root}
	var pending *element // element whose start tag is still open
	inPI := false

	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if err := l.Err(); err != io.EOF {
				return nil, fmt.Errorf("read glyph document: %w", err)
			}
			return root, nil
		case xml.StartTagPIToken:
			inPI = true
		case xml.StartTagClosePIToken:
			inPI = false
		case xml.StartTagToken:
			pending = &element{name: localName(string(l.Text())), attrs: map[string]string{}}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, pending)
		case xml.AttributeToken:
			if inPI || pending == nil {
				continue
			}
			pending.attrs[localName(string(l.Text()))] = unquote(string(l.AttrVal()))
		case xml.StartTagCloseToken:
			if pending != nil {
				stack = append(stack, pending)
				pending = nil
			}
		case xml.StartTagCloseVoidToken:
			pending = nil
		case xml.EndTagToken:
			name := localName(string(l.Text()))
			// Pop to the matching element, tolerating unbalanced markup
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].name == name {
					stack = stack[:i]
					break
				}
			}
		}
	}
}

func localName(s string) string {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[i+1:]
	}
	return s
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// container finds the first element holding at least two <svg> items, so the
// outermost <svg> wrapper of a container document is descended through
func container(e *element) *element {
	items := 0
	for _, c := range e.children {
		if c.name == "svg" {
			items++
		}
	}
	if items >= 2 {
		return e
	}
	for _, c := range e.children {
		if found := container(c); found != nil {
			return found
		}
	}
	return nil
}

// Load reads an SVG container document; each child <svg> becomes one glyph, in
// document order. A leading <g> in an item holds the regions and supplies the first
// region's fill when it has none; the first region's resolved fill is the glyph's primary.
func Load(r io.Reader) ([]Glyph, error) {
	root, err := readTree(r)
	if err != nil {
		return nil, err
	}

	box := container(root)
	if box == nil {
		return nil, fmt.Errorf("%w: no container element", ErrTooFewGlyphs)
	}

	var glyphs []Glyph
	for _, item := range box.children {
		if item.name != "svg" {
			continue
		}
		glyphs = append(glyphs, buildGlyph(item, len(glyphs)))
	}
	if len(glyphs) < 2 {
		return nil, fmt.Errorf("%w: found %d", ErrTooFewGlyphs, len(glyphs))
	}
	return glyphs, nil
}

// LoadString is Load over an in-memory document
func LoadString(doc string) ([]Glyph, error) {
	return Load(strings.NewReader(doc))
}

func buildGlyph(item *element, index int) Glyph {
	g := Glyph{Name: item.attr("id"), Primary: White}
	if g.Name == "" {
		g.Name = fmt.Sprintf("glyph-%d", index)
	}

	shapes := item.children
	if len(shapes) > 0 && shapes[0].name == "g" {
		group := shapes[0]
		if c, err := ParseColor(group.attr("fill")); err == nil {
			g.Primary = c
		} else if !errors.Is(err, ErrNoColor) {
			log.Printf("glyph %s: group fill: %v", g.Name, err)
		}
		shapes = group.children
	}

	g.Regions = make([]Region, 0, len(shapes))
	for j, shape := range shapes {
		fill := g.Primary
		if c, err := ParseColor(shape.attr("fill")); err == nil {
			fill = c
		} else if !errors.Is(err, ErrNoColor) {
			log.Printf("glyph %s region %d: %v", g.Name, j, err)
		}

		outline, err := shapeOutline(shape)
		if err != nil {
			// Region kept so fill order stays aligned, painter skips empty outlines
			log.Printf("glyph %s region %d: %v", g.Name, j, err)
			outline = nil
		}
		if j == 0 {
			// Later regions without a fill fall back to the first region's resolved fill
			g.Primary = fill
		}
		g.Regions = append(g.Regions, Region{Outline: outline, Fill: fill})
	}
	return g
}

// shapeOutline converts a shape element into a path
func shapeOutline(e *element) (Path, error) {
	switch e.name {
	case "path":
		d := e.attr("d")
		if strings.TrimSpace(d) == "" {
			return nil, fmt.Errorf("path without outline data")
		}
		return ParsePath(d)
	case "circle":
		r := attrFloat(e, "r")
		return ellipsePath(attrFloat(e, "cx"), attrFloat(e, "cy"), r, r)
	case "ellipse":
		return ellipsePath(attrFloat(e, "cx"), attrFloat(e, "cy"), attrFloat(e, "rx"), attrFloat(e, "ry"))
	case "rect":
		x, y := attrFloat(e, "x"), attrFloat(e, "y")
		w, h := attrFloat(e, "width"), attrFloat(e, "height")
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("rect without area")
		}
		return Path{
			{Op: OpMove, Pts: [3]Point{{x, y}}},
			{Op: OpLine, Pts: [3]Point{{x + w, y}}},
			{Op: OpLine, Pts: [3]Point{{x + w, y + h}}},
			{Op: OpLine, Pts: [3]Point{{x, y + h}}},
			{Op: OpClose},
		}, nil
	case "polygon":
		return ParsePath("M" + e.attr("points") + "Z")
	}
	return nil, fmt.Errorf("unsupported shape <%s>", e.name)
}

func ellipsePath(cx, cy, rx, ry float64) (Path, error) {
	if rx <= 0 || ry <= 0 || math.IsNaN(rx) || math.IsNaN(ry) {
		return nil, fmt.Errorf("ellipse without radius")
	}
	p := Path{{Op: OpMove, Pts: [3]Point{{cx + rx, cy}}}}
	p = append(p, arcToCubics(Point{cx + rx, cy}, rx, ry, 0, false, true, Point{cx - rx, cy})...)
	p = append(p, arcToCubics(Point{cx - rx, cy}, rx, ry, 0, false, true, Point{cx + rx, cy})...)
	return append(p, Command{Op: OpClose}), nil
}

func attrFloat(e *element, name string) float64 {
	v := strings.TrimSpace(e.attr(name))
	if v == "" {
		return 0
	}
	f, n := strconv.ParseFloat([]byte(v))
	if n == 0 {
		return math.NaN()
	}
	return f
}
