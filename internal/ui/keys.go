package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Wider    key.Binding
	Narrower key.Binding
	Taller   key.Binding
	Shorter  key.Binding
	Invert   key.Binding
	Charset  key.Binding
	Filter   key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Wider:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "wider")),
		Narrower: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "narrower")),
		Taller:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "taller")),
		Shorter:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "shorter")),
		Invert:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "invert")),
		Charset:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "charset")),
		Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Wider, k.Narrower, k.Invert, k.Charset, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Wider, k.Narrower, k.Taller, k.Shorter},
		{k.Invert, k.Charset, k.Filter},
		{k.Copy, k.Help, k.Quit},
	}
}
