package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the app-level bindings. Everything else falls through to the
// active editor.
type keyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	Save      key.Binding
	MoreBlank key.Binding
	LessBlank key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next file")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev file")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		MoreBlank: key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("ctrl+↑", "more blanks")),
		LessBlank: key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("ctrl+↓", "fewer blanks")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
	}
}

func (k keyMap) helpLine() string {
	bindings := []key.Binding{k.NextTab, k.Save, k.MoreBlank, k.LessBlank, k.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
