package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the demo key bindings. It implements help.KeyMap.
type KeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	Toggle    key.Binding
	Direction key.Binding
	Offset    key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Focus     key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard demo bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Toggle:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open/close")),
		Direction: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "direction")),
		Offset:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "clamp offset")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.Direction, k.Offset, k.Down, k.Focus, k.Quit}
}

// FullHelp returns every binding grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Toggle},
		{k.Direction, k.Offset},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Focus, k.Quit},
	}
}
