package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyph-globe/terminal"
)

func TestBlend(t *testing.T) {
	black, white := RGB{}, RGB{R: 255, G: 255, B: 255}
	var tts = []struct {
		alpha float64
		want  RGB
	}{
		{0, black},
		{-1, black},
		{math.NaN(), black},
		{1, white},
		{2, white},
		{0.5, RGB{R: 128, G: 128, B: 128}},
	}
	for _, tt := range tts {
		if got := Blend(black, white, tt.alpha); got != tt.want {
			t.Errorf("Blend(alpha=%v) = %v, want %v", tt.alpha, got, tt.want)
		}
	}
	if got := Lerp(RGB{R: 100}, RGB{R: 200}, 0.25); got.R != 125 {
		t.Errorf("Lerp = %v", got)
	}
}

func TestScaleAndContrast(t *testing.T) {
	if got := Scale(RGB{R: 200, G: 100, B: 10}, 2); got != (RGB{R: 255, G: 200, B: 20}) {
		t.Errorf("Scale = %v", got)
	}
	if Contrast(RGB{R: 255, G: 255, B: 255}) != (RGB{}) {
		t.Error("dark text expected on white")
	}
	if Contrast(RGB{R: 10, G: 10, B: 40}) != (RGB{R: 255, G: 255, B: 255}) {
		t.Error("light text expected on navy")
	}
	if got := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 128}); got.R != 128 || got.G != 0 {
		t.Errorf("FromColor should composite over black, got %v", got)
	}
}

func TestSpeedColor(t *testing.T) {
	if SpeedColor(0) != RgbSpinIdle || SpeedColor(math.NaN()) != RgbSpinIdle {
		t.Error("idle color at zero")
	}
	if SpeedColor(1) != RgbSpinFast || SpeedColor(3) != RgbSpinFast {
		t.Error("fast color at one")
	}
	mid := SpeedColor(0.5)
	if mid == RgbSpinIdle || mid == RgbSpinFast {
		t.Errorf("midpoint should differ from both ends, got %v", mid)
	}
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func TestComposeHalfBlocks(t *testing.T) {
	b := NewCellBuffer(2, 2)
	if w, h := b.PixelSize(); w != 2 || h != 4 {
		t.Fatalf("PixelSize = %dx%d", w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, 2, 4))
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	fillRect(img, image.Rect(0, 0, 2, 1), red)
	fillRect(img, image.Rect(0, 1, 2, 2), blue)
	b.Compose(img)

	c, ok := b.Get(1, 0)
	if !ok || c.Rune != HalfBlock || c.Fg != (RGB{R: 255}) || c.Bg != (RGB{B: 255}) {
		t.Errorf("cell (1,0) = %+v", c)
	}
	c, _ = b.Get(0, 1)
	if c.Fg != (RGB{}) || c.Bg != (RGB{}) {
		t.Errorf("cell (0,1) = %+v, want black halves", c)
	}
}

func TestComposeAveragesLargerImage(t *testing.T) {
	b := NewCellBuffer(1, 1)
	img := image.NewRGBA(image.Rect(0, 0, 2, 4))
	// Top half: one white and one black column
	fillRect(img, image.Rect(0, 0, 1, 2), color.RGBA{R: 200, G: 200, B: 200, A: 255})
	b.Compose(img)

	c, _ := b.Get(0, 0)
	if c.Fg != (RGB{R: 100, G: 100, B: 100}) {
		t.Errorf("top average = %v", c.Fg)
	}
	if c.Bg != (RGB{}) {
		t.Errorf("bottom average = %v", c.Bg)
	}
}

func TestTextOverlay(t *testing.T) {
	b := NewCellBuffer(4, 1)
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	fillRect(img, image.Rect(0, 0, 4, 1), color.RGBA{R: 200, A: 255})
	b.Compose(img)

	n := b.Text(2, 0, "hey", RGB{G: 255}, terminal.AttrBold)
	if n != 3 {
		t.Errorf("Text advanced %d, want 3", n)
	}
	c, _ := b.Get(2, 0)
	if c.Rune != 'h' || c.Fg != (RGB{G: 255}) || c.Bg != (RGB{R: 100}) || c.Attrs != terminal.AttrBold {
		t.Errorf("text cell = %+v", c)
	}
	if _, ok := b.Get(4, 0); ok {
		t.Error("out of bounds Get should fail")
	}

	b.Fill(0, 0, 2, RgbHudPanel)
	c, _ = b.Get(1, 0)
	if c.Bg != RgbHudPanel || c.Rune != ' ' {
		t.Errorf("filled cell = %+v", c)
	}
}

func TestResizeAndClear(t *testing.T) {
	b := NewCellBuffer(3, 3)
	b.Resize(5, 2)
	if w, h := b.Size(); w != 5 || h != 2 || len(b.Cells()) != 10 {
		t.Fatalf("Resize: %dx%d len %d", w, h, len(b.Cells()))
	}
	b.Clear(RGB{R: 9})
	for i, c := range b.Cells() {
		if c.Bg != (RGB{R: 9}) {
			t.Fatalf("cell %d not cleared: %+v", i, c)
		}
	}
	b.Resize(-1, 4)
	if len(b.Cells()) != 0 {
		t.Errorf("negative width should give empty buffer")
	}
	b.Compose(image.NewRGBA(image.Rect(0, 0, 1, 1)))
}

func TestFlushToSimulationScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := terminal.Attach(sim, terminal.ColorModeTrueColor)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	sim.SetSize(2, 1)

	b := NewCellBuffer(2, 1)
	b.Text(0, 0, "ok", RGB{R: 1}, terminal.AttrNone)
	b.Flush(s)

	contents, _, _ := sim.GetContents()
	if string(contents[0].Runes)+string(contents[1].Runes) != "ok" {
		t.Errorf("screen shows %q%q", contents[0].Runes, contents[1].Runes)
	}
}
