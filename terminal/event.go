package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// EventType identifies the kind of input event
type EventType uint8

const (
	EventKey EventType = iota
	EventMouse
	EventFocus
	EventResize
	EventClosed
)

func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventFocus:
		return "focus"
	case EventResize:
		return "resize"
	case EventClosed:
		return "closed"
	}
	return "unknown"
}

// Event is a tcell event reduced to what the globe consumes
type Event struct {
	Type EventType

	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask

	// Mouse cell position
	X, Y    int
	Buttons tcell.ButtonMask

	Focused bool

	Width, Height int
}

// IsQuit reports whether the event is q, Esc or Ctrl-C
func (e Event) IsQuit() bool {
	if e.Type != EventKey {
		return false
	}
	switch e.Key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return e.Rune == 'q' || e.Rune == 'Q'
	}
	return false
}

// Translate converts a tcell event, ok is false for kinds the globe ignores
func Translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case nil:
		return Event{Type: EventClosed}, true
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: ev.Key(), Rune: ev.Rune(), Mod: ev.Modifiers()}, true
	case *tcell.EventMouse:
		x, y := ev.Position()
		return Event{Type: EventMouse, X: x, Y: y, Buttons: ev.Buttons(), Mod: ev.Modifiers()}, true
	case *tcell.EventFocus:
		return Event{Type: EventFocus, Focused: ev.Focused}, true
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	}
	return Event{}, false
}
