package config

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// TerminalWidth reports the current width of the terminal attached to
// stdout, in cells. Falls back to 80 when stdout is not a terminal or the
// size cannot be determined.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// StdoutIsTTY reports whether stdout is attached to a terminal. Used to
// decide the default for the color toggle: styled output only makes sense on
// a terminal.
func StdoutIsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
