package render

import (
	"image"

	"github.com/lixenwraith/glyph-globe/terminal"
)

// HalfBlock is the upper half block; its foreground paints the top pixel row of
// a cell and its background the bottom row
const HalfBlock = '▀'

// CellBuffer is a row-major cell grid fed from a pixel image at two pixel rows per cell
type CellBuffer struct {
	cells  []terminal.Cell
	width  int
	height int
}

// NewCellBuffer creates a buffer with the specified dimensions
func NewCellBuffer(width, height int) *CellBuffer {
	b := &CellBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *CellBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(terminal.RGBBlack)
}

// Clear fills every cell with a blank of the given background using exponential copy
func (b *CellBuffer) Clear(bg RGB) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = terminal.Cell{Rune: ' ', Fg: bg, Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns width and height in cells
func (b *CellBuffer) Size() (int, int) { return b.width, b.height }

// PixelSize returns the pixel grid one frame should be drawn at
func (b *CellBuffer) PixelSize() (int, int) { return b.width, b.height * 2 }

// Cells returns the row-major backing slice
func (b *CellBuffer) Cells() []terminal.Cell { return b.cells }

// Get returns the cell at (x, y), ok is false when out of bounds
func (b *CellBuffer) Get(x, y int) (terminal.Cell, bool) {
	if !b.inBounds(x, y) {
		return terminal.Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Compose maps img onto the grid, each cell covering an equal share of the image
// split into a top and bottom half; each half is the box average of its pixels
func (b *CellBuffer) Compose(img *image.RGBA) {
	bounds := img.Bounds()
	if b.width == 0 || b.height == 0 || bounds.Empty() {
		return
	}
	rows := b.height * 2
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			x0 := bounds.Min.X + x*bounds.Dx()/b.width
			x1 := bounds.Min.X + (x+1)*bounds.Dx()/b.width
			top := average(img, x0, x1, bounds.Min.Y+(2*y)*bounds.Dy()/rows, bounds.Min.Y+(2*y+1)*bounds.Dy()/rows)
			bottom := average(img, x0, x1, bounds.Min.Y+(2*y+1)*bounds.Dy()/rows, bounds.Min.Y+(2*y+2)*bounds.Dy()/rows)
			b.cells[y*b.width+x] = terminal.Cell{Rune: HalfBlock, Fg: top, Bg: bottom}
		}
	}
}

// average box-filters the pixel rectangle [x0,x1)x[y0,y1), widened to at least one pixel
func average(img *image.RGBA, x0, x1, y0, y1 int) RGB {
	x1, y1 = max(x1, x0+1), max(y1, y0+1)
	var r, g, bl, n int
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !(image.Point{X: x, Y: y}).In(img.Rect) {
				continue
			}
			i := img.PixOffset(x, y)
			r += int(img.Pix[i])
			g += int(img.Pix[i+1])
			bl += int(img.Pix[i+2])
			n++
		}
	}
	if n == 0 {
		return terminal.RGBBlack
	}
	return RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n)}
}

// Text writes s from (x, y) over the composed image, clipped to the row
// The cell background becomes the mean of the two pixel halves
func (b *CellBuffer) Text(x, y int, s string, fg RGB, attrs terminal.Attr) int {
	n := 0
	for _, r := range s {
		if b.inBounds(x+n, y) {
			dst := &b.cells[y*b.width+x+n]
			if dst.Rune == HalfBlock {
				dst.Bg = Blend(dst.Fg, dst.Bg, 0.5)
			}
			dst.Rune = r
			dst.Fg = fg
			dst.Attrs = attrs
		}
		n++
	}
	return n
}

// Fill paints a solid background span, used for HUD panels
func (b *CellBuffer) Fill(x, y, w int, bg RGB) {
	for i := x; i < x+w; i++ {
		if b.inBounds(i, y) {
			b.cells[y*b.width+i] = terminal.Cell{Rune: ' ', Fg: bg, Bg: bg}
		}
	}
}

// Flush writes render buffer to the screen
func (b *CellBuffer) Flush(s *terminal.Screen) {
	s.Flush(b.cells, b.width, b.height)
}
