//go:build !linux

package terminal

// resetTerminalMode is a no-op where termios ioctls are unavailable; the
// escape sequences are the best that can be done
func resetTerminalMode() {}
