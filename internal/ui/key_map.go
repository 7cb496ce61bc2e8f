package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	left   key.Binding
	right  key.Binding
	up     key.Binding
	down   key.Binding
	move   key.Binding
	toggle key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev card")),
		right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next card")),
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "top row")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "bottom row")),
		move:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/click", "move card")),
		toggle: key.NewBinding(key.WithKeys("enter", " ", "t"), key.WithHelp("t/click", "toggle layout")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.move, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.left, k.right, k.up, k.down},
		{k.move, k.quit},
	}
}
