// Package terminal drives the text screen through tcell: cell output in 256 or
// 24-bit color, mouse motion and focus reporting, and crash-time reset.
package terminal

import (
	"io"
	"os"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << 0
	AttrDim  Attr = 1 << 1
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Raw sequences for EmergencyReset, written without going through tcell
var resetSequences = [][]byte{
	[]byte("\x1b[?1003l"), // mouse motion off
	[]byte("\x1b[?1002l"), // mouse drag off
	[]byte("\x1b[?1000l"), // mouse click off
	[]byte("\x1b[?1006l"), // SGR mouse off
	[]byte("\x1b[?1004l"), // focus reporting off
	[]byte("\x1b[?25h"),   // cursor show
	[]byte("\x1b[?1049l"), // alt screen exit
	[]byte("\x1b[0m"),
	[]byte("\x1b[?7h"), // auto wrap on
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	for _, seq := range resetSequences {
		_, _ = w.Write(seq)
	}

	if f, ok := w.(*os.File); ok {
		_ = f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
