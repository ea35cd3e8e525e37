package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Narrower key.Binding
	Wider    key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp is the single-line hint shown under the gallery.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Narrower, k.Wider, k.Copy, k.Help, k.Quit}
}

// FullHelp is the expanded overlay toggled with ?.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Narrower, k.Wider},
		{k.Copy},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Narrower: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "narrower"),
		),
		Wider: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "wider"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy css"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
