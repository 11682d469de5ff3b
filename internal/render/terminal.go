package render

import (
	"os"

	"golang.org/x/term"
)

// Fallback terminal size when stdout is not a terminal.
const (
	// DefaultWidth is the column count assumed without a terminal.
	DefaultWidth = 80
	// DefaultHeight is the row count assumed without a terminal.
	DefaultHeight = 24
)

// TerminalSize returns the size of the terminal attached to stdout, or the
// defaults when stdout is not a terminal.
func TerminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
