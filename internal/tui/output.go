// Package tui holds terminal helpers shared by the gridkit commands: output
// mode detection and static table rendering. The interactive grid lives in
// the gridview subpackage.
package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how a command presents rows.
type OutputMode int

const (
	// OutputModePlain prints unstyled text, for pipes and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints a styled static table.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen grid.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	case OutputModePlain:
		return "plain"
	default:
		return "plain"
	}
}

// Fallback terminal size when stdout is not a terminal.
const (
	DefaultTerminalWidth  = 80
	DefaultTerminalHeight = 24
)

//nolint:gochecknoglobals // Swapped in tests.
var (
	isTerminal = func(fd int) bool { return term.IsTerminal(fd) }
	getSize    = term.GetSize
	lookupEnv  = os.LookupEnv
)

// DetectOutputMode picks the richest mode the environment supports. plain
// and noColor force plain output; forceColor allows styling without a
// terminal. The interactive grid needs both stdin and stdout to be terminals.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if termName, _ := lookupEnv("TERM"); termName == "dumb" {
		return OutputModePlain
	}

	stdoutTTY := isTerminal(int(os.Stdout.Fd()))
	if stdoutTTY && isTerminal(int(os.Stdin.Fd())) {
		if _, ci := lookupEnv("CI"); !ci {
			return OutputModeInteractive
		}
	}
	if stdoutTTY || forceColor {
		return OutputModeStyled
	}
	return OutputModePlain
}

// TerminalSize returns the size of stdout, or the defaults when it is not a
// terminal.
func TerminalSize() (int, int) {
	w, h, err := getSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return DefaultTerminalWidth, DefaultTerminalHeight
	}
	return w, h
}

// TerminalWidth returns the width of stdout.
func TerminalWidth() int {
	w, _ := TerminalSize()
	return w
}
