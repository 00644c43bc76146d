package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain writes unstyled text, for pipes and files.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes styled text without taking over the terminal.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen browser.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// isTerminal reports whether stdout is a terminal. Replaced in tests.
//
//nolint:gochecknoglobals // Test seam for terminal detection.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// DetectOutputMode picks the output mode for stdout.
// plain always wins; NO_COLOR or noColor disable styling; CI environments
// and non-terminals never get the interactive browser.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	if plain {
		return OutputModePlain
	}

	colorOff := noColor || os.Getenv("NO_COLOR") != ""

	if !isTerminal() {
		if forceColor && !colorOff {
			return OutputModeStyled
		}
		return OutputModePlain
	}

	if os.Getenv("CI") != "" {
		if colorOff {
			return OutputModePlain
		}
		return OutputModeStyled
	}

	return OutputModeInteractive
}
