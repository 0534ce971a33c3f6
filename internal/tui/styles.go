package tui

import "github.com/charmbracelet/lipgloss"

// Layout defaults used before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 120
	defaultHeight = 30
	minHeight     = 5
	borderPadding = 2
	// chromeHeight is the number of lines around the table: title, strip, footer, help.
	chromeHeight = 7
)

// Colour palette.
const (
	colorAccent   = lipgloss.Color("12")
	colorSubtle   = lipgloss.Color("244")
	colorBorder   = lipgloss.Color("240")
	colorError    = lipgloss.Color("9")
	colorActiveBg = lipgloss.Color("57")
	colorActiveFg = lipgloss.Color("229")
)

//nolint:gochecknoglobals // Styles are immutable values shared by all views.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginBottom(1)

	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	LabelStyle = lipgloss.NewStyle().Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorBorder).
				BorderBottom(true).
				Padding(0, 1)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(colorActiveFg).
				Background(colorActiveBg)

	ButtonStyle = lipgloss.NewStyle().Padding(0, 1)

	ActiveButtonStyle = ButtonStyle.
				Bold(true).
				Foreground(colorActiveFg).
				Background(colorActiveBg)

	DisabledButtonStyle = ButtonStyle.Faint(true)
)
