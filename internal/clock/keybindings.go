package clock

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the clock's keybindings.
type keyMap struct {
	Quit    key.Binding
	Refresh key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recompute cycle"),
		),
	}
}
