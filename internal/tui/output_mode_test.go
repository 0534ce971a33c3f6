package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withTerminal(t *testing.T, isTTY bool) {
	t.Helper()
	orig := terminalChecker
	terminalChecker = func(uintptr) bool { return isTTY }
	t.Cleanup(func() { terminalChecker = orig })
}

func TestDetectOutputMode(t *testing.T) {
	tests := []struct {
		name            string
		tty             bool
		forcePlain      bool
		noColor         bool
		skipInteractive bool
		term            string
		want            OutputMode
	}{
		{"interactive terminal", true, false, false, false, "xterm-256color", OutputModeInteractive},
		{"skip interactive", true, false, false, true, "xterm-256color", OutputModeStyled},
		{"forced plain", true, true, false, false, "xterm-256color", OutputModePlain},
		{"no color flag", true, false, true, false, "xterm-256color", OutputModePlain},
		{"dumb terminal", true, false, false, false, "dumb", OutputModePlain},
		{"piped stdout", false, false, false, false, "xterm-256color", OutputModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withTerminal(t, tt.tty)
			t.Setenv("TERM", tt.term)
			t.Setenv("NO_COLOR", "")
			assert.Equal(t, tt.want, DetectOutputMode(tt.forcePlain, tt.noColor, tt.skipInteractive))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(9).String())
}
