package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Chess   key.Binding
	ARC     key.Binding
	Toggle  key.Binding
	Palette key.Binding
	Help    key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Close   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Chess:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chess")),
		ARC:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "arc-agi")),
		Toggle:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle mode")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Chess, k.ARC, k.Toggle, k.Palette, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Chess, k.ARC, k.Toggle}, {k.Palette, k.Enter, k.Close}, {k.Help, k.Quit}}
}

type paletteKeyMap struct {
	keyMap
}

func (k paletteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Close}
}

func (k paletteKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Enter, k.Close}}
}
