package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
)

// KeyMap holds the pager key bindings.
type KeyMap struct {
	First    key.Binding
	Previous key.Binding
	Next     key.Binding
	Last     key.Binding
	Button   key.Binding
	Goto     key.Binding
	Up       key.Binding
	Down     key.Binding
	Quit     key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

// DefaultKeyMap returns the standard pager bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→/l", "next"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last"),
		),
		Button: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-0", "page button"),
		),
		Goto: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "go to page"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.First, k.Previous, k.Next, k.Last, k.Goto, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.First, k.Previous, k.Next, k.Last},
		{k.Button, k.Goto, k.Up, k.Down},
		{k.Quit},
	}
}

// tableKeyMap restricts the embedded table to row movement so paging keys
// reach the pager.
func (k KeyMap) tableKeyMap() table.KeyMap {
	return table.KeyMap{
		LineUp:   k.Up,
		LineDown: k.Down,
	}
}

// buttonIndex maps a digit key to a 0-based window button index: "1" is the
// first button and "0" the tenth.
func buttonIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	if s[0] == '0' {
		return 9, true //nolint:mnd // "0" selects the tenth button.
	}
	return int(s[0] - '1'), true
}
