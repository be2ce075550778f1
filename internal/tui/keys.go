package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the gallery reacts to.
type KeyMap struct {
	Prev          key.Binding
	Next          key.Binding
	First         key.Binding
	Last          key.Binding
	TogglePlay    key.Binding
	SelectUp      key.Binding
	SelectDown    key.Binding
	NextComponent key.Binding
	PrevComponent key.Binding
	Quit          key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:          key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		First:         key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		Last:          key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		TogglePlay:    key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		SelectUp:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "select")),
		SelectDown:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "select")),
		NextComponent: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next component")),
		PrevComponent: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev component")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// HelpFor lists the bindings shown in the footer for a component kind.
func (k KeyMap) HelpFor(kind string) []key.Binding {
	out := []key.Binding{k.NextComponent}
	switch kind {
	case "carousel":
		out = append(out, k.Prev, k.Next, k.TogglePlay)
	case "tabs":
		out = append(out, k.Prev, k.Next, k.First, k.Last)
	}
	return append(out, k.Quit)
}

// digitIndex maps "1".."9" to 0..8.
func digitIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
