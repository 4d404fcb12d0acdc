package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// PickerKeys defines key bindings for the theme picker
type PickerKeys struct {
	ClearFilter key.Binding
	Down        key.Binding
	ForceQuit   key.Binding
	Select      key.Binding
	Up          key.Binding
}

// NewPickerKeys creates the default picker key bindings.
// Letters are left to the filter input, so navigation uses arrows and ctrl keys.
func NewPickerKeys() PickerKeys {
	return PickerKeys{
		ClearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter / quit"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "tab"),
			key.WithHelp("↓", "next theme"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select theme"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p", "shift+tab"),
			key.WithHelp("↑", "previous theme"),
		),
	}
}

// ShortHelp returns the bindings shown in the picker footer
func (k PickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.ClearFilter}
}
