package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the dashboard key bindings.
type KeyMap struct {
	Quit        key.Binding
	Help        key.Binding
	NextFocus   key.Binding
	PrevFocus   key.Binding
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	SelectAll   key.Binding
	SelectNone  key.Binding
	ToggleTable key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	Preview     key.Binding
	CopyRows    key.Binding
	ExportChart key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	NextFocus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next filter"),
	),
	PrevFocus: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous filter"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle option"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select all"),
	),
	SelectNone: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "select none"),
	),
	ToggleTable: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "data table"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("←/h", "scroll chart"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("→/l", "scroll chart"),
	),
	Preview: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "image preview"),
	),
	CopyRows: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy rows as csv"),
	),
	ExportChart: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export chart"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Toggle, k.ToggleTable, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.Up, k.Down, k.Toggle, k.SelectAll, k.SelectNone},
		{k.ToggleTable, k.ScrollLeft, k.ScrollRight, k.Preview},
		{k.CopyRows, k.ExportChart, k.Help, k.Quit},
	}
}
