package util

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth reports the column count of the terminal attached to f, or
// 0 when f is not a terminal or its size cannot be read.
func TerminalWidth(f *os.File) int {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < 0 {
		return 0
	}
	return width
}
