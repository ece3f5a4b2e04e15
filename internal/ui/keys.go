package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo screen bindings. While the sheet is open only
// Interrupt reaches the screen.
type keyMap struct {
	Open       key.Binding
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
	Interrupt  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Open: key.NewBinding(
			key.WithKeys(" ", "enter", "a"),
			key.WithHelp("space", "Open actions"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit from anywhere"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.CycleTheme, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.CycleTheme},
		{k.Help, k.Quit, k.Interrupt},
	}
}
