package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Deal    key.Binding
	Hit     key.Binding
	Stand   key.Binding
	Double  key.Binding
	Split   key.Binding
	Advisor key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Deal: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "deal"),
		),
		Hit: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hit"),
		),
		Stand: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stand"),
		),
		Double: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "double"),
		),
		Split: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "split"),
		),
		Advisor: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "advisor"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Deal, k.Hit, k.Stand, k.Double, k.Split, k.Advisor, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Deal, k.Hit, k.Stand, k.Double, k.Split},
		{k.Advisor, k.Quit},
	}
}
