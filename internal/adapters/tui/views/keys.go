package views

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines key bindings for the dual-pane view
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Focus     key.Binding
	Expand    key.Binding
	Highlight key.Binding
	Clear     key.Binding
	Sync      key.Binding
	Reload    key.Binding
	Open      key.Binding
	Yank      key.Binding
	Dismiss   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch pane"),
	),
	Expand: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "open"),
	),
	Highlight: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "mark"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear marks"),
	),
	Sync: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sync"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload index"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "edit"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy id"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "dismiss"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Expand, k.Highlight, k.Sync, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the help view, grouped by section
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Focus, k.Expand},
		{k.Highlight, k.Clear, k.Open, k.Yank},
		{k.Sync, k.Reload},
		{k.Dismiss, k.Help, k.Quit},
	}
}
