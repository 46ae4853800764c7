// Package terminal restores the terminal after a crash. During normal
// operation tcell owns the terminal lifecycle; this package exists for
// panic paths where Fini cannot be trusted to run.
package terminal

import (
	"io"
	"os"
)

// Escape sequences for the crash path, written blind
var (
	csiMouseOff      = []byte("\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset attempts to restore the terminal to a sane state. Call
// from panic recovery when the screen's own Fini cannot be called normally;
// every step is best-effort.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; raw mode needs a
	// direct reset
	resetTerminalMode()
}
