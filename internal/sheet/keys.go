package sheet

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard bindings a visible sheet responds to.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
	Jump   key.Binding
}

// DefaultKeyMap returns the default sheet bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up", "shift+tab"),
			key.WithHelp("k/up", "Previous action"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down", "tab"),
			key.WithHelp("j/down", "Next action"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Run action"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "Dismiss"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Run action by number"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Cancel}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Jump, k.Cancel},
	}
}
