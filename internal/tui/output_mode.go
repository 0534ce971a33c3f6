package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how table output is presented.
type OutputMode int

// Output modes, from least to most capable.
const (
	OutputModePlain OutputMode = iota
	OutputModeStyled
	OutputModeInteractive
)

// String returns the lowercase name of the mode.
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

// terminalChecker reports whether a file descriptor is a terminal.
//
//nolint:gochecknoglobals // Swapped in tests.
var terminalChecker = func(fd uintptr) bool {
	return term.IsTerminal(int(fd)) //nolint:gosec // File descriptors fit in int.
}

// DetectOutputMode picks the output mode for the current process.
//
// forcePlain (--plain) always yields plain output. noColor (--no-color), the
// NO_COLOR variable, TERM=dumb or a non-terminal stdout downgrade to plain.
// A styled terminal becomes interactive unless skipInteractive is set or stdin
// is not a terminal.
func DetectOutputMode(forcePlain, noColor, skipInteractive bool) OutputMode {
	if forcePlain || noColor {
		return OutputModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if !terminalChecker(os.Stdout.Fd()) {
		return OutputModePlain
	}
	if skipInteractive || !terminalChecker(os.Stdin.Fd()) {
		return OutputModeStyled
	}
	return OutputModeInteractive
}
