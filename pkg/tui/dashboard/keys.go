package dashboard

import "github.com/charmbracelet/bubbles/v2/key"

type keyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Today   key.Binding
	Write   key.Binding
	Prompt  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
	Submit  key.Binding
	Cancel  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Prev:    key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev month")),
		Next:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next month")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this month")),
		Write:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "write")),
		Prompt:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prompt")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Write, k.Prompt, k.Help, k.Quit}
}

func (k keyMap) writing() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}
