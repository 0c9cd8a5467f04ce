// Package core holds process-wide crash handling shared by the binaries
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/lixenwraith/glyph-globe/terminal"
)

// Finisher restores a screen; *terminal.Screen satisfies it
type Finisher interface {
	Fini()
}

type finisherBox struct{ f Finisher }

var crashScreen atomic.Pointer[finisherBox]

// exit is swapped in tests
var exit = os.Exit

// SetCrashScreen registers the screen to restore before a crash report, nil clears it
func SetCrashScreen(f Finisher) {
	if f == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&finisherBox{f: f})
}

// HandleCrash restores the terminal, prints the panic value and stack trace to
// stderr and exits with status 1. A nil value is ignored
func HandleCrash(r any) {
	if r == nil {
		return
	}
	if box := crashScreen.Load(); box != nil {
		box.f.Fini()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}
	report(os.Stderr, r, debug.Stack())
	exit(1)
}

func report(w io.Writer, r any, stack []byte) {
	fmt.Fprintf(w, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", stack)
	if f, ok := w.(*os.File); ok {
		_ = f.Sync()
	}
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
