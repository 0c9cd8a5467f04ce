package terminal

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen is a tcell screen set up for full-screen animation with mouse motion and focus reporting
type Screen struct {
	tcell tcell.Screen
	mode  ColorMode

	finiOnce sync.Once
}

// NewScreen opens the controlling terminal
func NewScreen(mode ColorMode) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return Attach(s, mode)
}

// Attach initializes an existing tcell screen, simulation screens included
func Attach(s tcell.Screen, mode ColorMode) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.EnableMouse(tcell.MouseMotionEvents)
	s.EnableFocus()
	s.HideCursor()
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	return &Screen{tcell: s, mode: mode}, nil
}

// Fini restores terminal state. Safe to call multiple times
func (s *Screen) Fini() {
	s.finiOnce.Do(func() {
		s.tcell.DisableFocus()
		s.tcell.DisableMouse()
		s.tcell.Fini()
	})
}

// Size returns current terminal dimensions in cells
func (s *Screen) Size() (int, int) {
	return s.tcell.Size()
}

// ColorMode returns the color capability cells are written with
func (s *Screen) ColorMode() ColorMode {
	return s.mode
}

// Color converts an RGB to a tcell color for the screen's mode
func (s *Screen) Color(c RGB) tcell.Color {
	if s.mode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.PaletteColor(int(RGBTo256(c)))
}

// Flush writes a row-major cell buffer and shows it
func (s *Screen) Flush(cells []Cell, width, height int) {
	sw, sh := s.tcell.Size()
	w, h := min(width, sw), min(height, sh)
	for y := 0; y < h; y++ {
		row := cells[y*width : y*width+width]
		for x := 0; x < w; x++ {
			c := row[x]
			style := tcell.StyleDefault.Foreground(s.Color(c.Fg)).Background(s.Color(c.Bg))
			if c.Attrs&AttrBold != 0 {
				style = style.Bold(true)
			}
			if c.Attrs&AttrDim != 0 {
				style = style.Dim(true)
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			s.tcell.SetContent(x, y, r, nil, style)
		}
	}
	s.tcell.Show()
}

// Sync forces full redraw
func (s *Screen) Sync() {
	s.tcell.Sync()
}

// PollEvent blocks until the next event the globe consumes
// Returns an EventClosed event once the screen is finalized
func (s *Screen) PollEvent() Event {
	for {
		if ev, ok := Translate(s.tcell.PollEvent()); ok {
			return ev
		}
	}
}

// Events reads input on a goroutine started by spawn until ctx ends or the screen closes
// spawn lets callers install panic recovery; nil uses a plain go statement
// The channel is closed after the EventClosed event
func (s *Screen) Events(ctx context.Context, spawn func(func())) <-chan Event {
	if spawn == nil {
		spawn = func(fn func()) { go fn() }
	}
	ch := make(chan Event, 64)
	spawn(func() {
		defer close(ch)
		for {
			ev := s.PollEvent()
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
			if ev.Type == EventClosed {
				return
			}
		}
	})
	return ch
}
