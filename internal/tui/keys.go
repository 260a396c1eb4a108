package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the application key bindings.
type keyMap struct {
	Parse        key.Binding
	SaveSource   key.Binding
	SaveTemplate key.Binding
	CycleBackend key.Binding
	ToggleView   key.Binding
	NextPane     key.Binding
	ClearAll     key.Binding
	NewFile      key.Binding
	NewDir       key.Binding
	Rename       key.Binding
	Delete       key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Parse:        key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "parse")),
		SaveSource:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save source")),
		SaveTemplate: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "save template")),
		CycleBackend: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "backend")),
		ToggleView:   key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "json/table")),
		NextPane:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		ClearAll:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		NewFile:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new file")),
		NewDir:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "new dir")),
		Rename:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Delete:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}
