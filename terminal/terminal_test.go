package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

func TestRGBTo256(t *testing.T) {
	var tts = []struct {
		name string
		in   RGB
		want uint8
	}{
		{"black", RGB{0, 0, 0}, 16},
		{"white", RGB{255, 255, 255}, 231},
		{"red", RGB{255, 0, 0}, 196},
		{"cube level", RGB{95, 135, 175}, Cube256(1, 2, 3)},
		{"mid gray", RGB{128, 128, 128}, Gray256(12)},
		{"near gray prefers ramp", RGB{50, 52, 49}, Gray256(4)},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.in); got != tt.want {
				t.Errorf("RGBTo256(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPaletteRoundTrip(t *testing.T) {
	for i := 16; i < 256; i++ {
		idx := uint8(i)
		if got := RGBTo256(PaletteRGB(idx)); PaletteRGB(got) != PaletteRGB(idx) {
			t.Errorf("index %d maps back to %d", idx, got)
		}
	}
	if r, g, b := CubeRGB256(Cube256(9, 3, 1)); r != 5 || g != 3 || b != 1 {
		t.Errorf("Cube256 should clamp, got (%d,%d,%d)", r, g, b)
	}
	if Gray256(40) != 255 {
		t.Errorf("Gray256 should clamp")
	}
}

func TestParseColorMode(t *testing.T) {
	if m, err := ParseColorMode("256"); err != nil || m != ColorMode256 {
		t.Errorf("256: %v %v", m, err)
	}
	if m, err := ParseColorMode("TrueColor"); err != nil || m != ColorModeTrueColor {
		t.Errorf("truecolor: %v %v", m, err)
	}
	if _, err := ParseColorMode("cga"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if colorModeFor(termenv.TrueColor) != ColorModeTrueColor || colorModeFor(termenv.ANSI) != ColorMode256 {
		t.Error("termenv profile mapping")
	}
	if ColorModeTrueColor.String() != "truecolor" || ColorMode256.String() != "256" {
		t.Error("ColorMode.String")
	}
}

func TestTranslate(t *testing.T) {
	ev, ok := Translate(tcell.NewEventMouse(7, 3, tcell.ButtonNone, tcell.ModNone))
	if !ok || ev.Type != EventMouse || ev.X != 7 || ev.Y != 3 {
		t.Errorf("mouse: %+v %v", ev, ok)
	}

	ev, _ = Translate(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if !ev.IsQuit() {
		t.Errorf("q should quit: %+v", ev)
	}
	ev, _ = Translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	if ev.IsQuit() {
		t.Errorf("x should not quit")
	}
	ev, _ = Translate(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if !ev.IsQuit() {
		t.Errorf("ctrl-c should quit")
	}

	ev, _ = Translate(tcell.NewEventResize(120, 40))
	if ev.Type != EventResize || ev.Width != 120 || ev.Height != 40 {
		t.Errorf("resize: %+v", ev)
	}

	ev, _ = Translate(tcell.NewEventFocus(false))
	if ev.Type != EventFocus || ev.Focused {
		t.Errorf("focus: %+v", ev)
	}

	if ev, ok := Translate(nil); !ok || ev.Type != EventClosed {
		t.Errorf("nil: %+v", ev)
	}
	if _, ok := Translate(tcell.NewEventInterrupt(nil)); ok {
		t.Error("interrupts should be ignored")
	}
}

func newSimScreen(t *testing.T, mode ColorMode) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := Attach(sim, mode)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	sim.SetSize(4, 2)
	return s, sim
}

func TestScreenFlush(t *testing.T) {
	s, sim := newSimScreen(t, ColorModeTrueColor)
	defer s.Fini()

	cells := make([]Cell, 4*2)
	for i := range cells {
		cells[i] = Cell{Rune: '▀', Fg: RGB{255, 0, 0}, Bg: RGB{0, 0, 255}}
	}
	cells[5] = Cell{Rune: 'A', Fg: RGB{1, 2, 3}, Bg: RGB{4, 5, 6}, Attrs: AttrBold}
	s.Flush(cells, 4, 2)

	contents, w, h := sim.GetContents()
	if w != 4 || h != 2 {
		t.Fatalf("sim size %dx%d", w, h)
	}
	if string(contents[0].Runes) != "▀" || string(contents[5].Runes) != "A" {
		t.Errorf("unexpected runes %q %q", contents[0].Runes, contents[5].Runes)
	}
	fg, bg, attr := contents[5].Style.Decompose()
	if fg != tcell.NewRGBColor(1, 2, 3) || bg != tcell.NewRGBColor(4, 5, 6) || attr&tcell.AttrBold == 0 {
		t.Errorf("style = %v %v %v", fg, bg, attr)
	}
}

func TestScreenColor256(t *testing.T) {
	s, _ := newSimScreen(t, ColorMode256)
	defer s.Fini()
	if got := s.Color(RGB{255, 0, 0}); got != tcell.PaletteColor(196) {
		t.Errorf("Color = %v, want palette 196", got)
	}
}

func TestScreenEvents(t *testing.T) {
	s, sim := newSimScreen(t, ColorMode256)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := s.Events(ctx, nil)
	sim.InjectMouse(2, 1, tcell.ButtonNone, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	var got []Event
	timeout := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case ev := <-events:
			if ev.Type == EventMouse || ev.Type == EventKey {
				got = append(got, ev)
			}
		case <-timeout:
			t.Fatalf("timed out, got %+v", got)
		}
	}
	if got[0].Type != EventMouse || got[0].X != 2 || got[0].Y != 1 {
		t.Errorf("first event %+v", got[0])
	}
	if !got[1].IsQuit() {
		t.Errorf("second event %+v", got[1])
	}

	s.Fini()
	for ev := range events {
		if ev.Type == EventClosed {
			return
		}
	}
}

func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	out := buf.String()
	for _, seq := range []string{"\x1b[?1003l", "\x1b[?25h", "\x1b[?1049l", "\x1b[0m"} {
		if !strings.Contains(out, seq) {
			t.Errorf("missing %q in reset output", seq)
		}
	}
}
