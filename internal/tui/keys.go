package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add         key.Binding
	Edit        key.Binding
	Toggle      key.Binding
	Delete      key.Binding
	Clear       key.Binding
	ToggleAll   key.Binding
	NextFilter  key.Binding
	ShowAll     key.Binding
	ShowActive  key.Binding
	ShowDone    key.Binding
	Quit        key.Binding
	Commit      key.Binding
	CancelInput key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Clear:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear done")),
		ToggleAll:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle all")),
		NextFilter:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		ShowAll:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		ShowActive:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		ShowDone:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Commit:      key.NewBinding(key.WithKeys("enter")),
		CancelInput: key.NewBinding(key.WithKeys("esc")),
	}
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Toggle, k.Delete, k.NextFilter}
}

func (k keyMap) full() []key.Binding {
	return []key.Binding{
		k.Add, k.Edit, k.Toggle, k.Delete, k.Clear, k.ToggleAll,
		k.NextFilter, k.ShowAll, k.ShowActive, k.ShowDone,
	}
}
