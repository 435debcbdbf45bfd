package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/codesnap/shortcut"
)

// KeyMap holds the UI-level bindings. The snippet shortcuts come from the
// router.
type KeyMap struct {
	Shortcuts shortcut.KeyMap

	NextFocus   key.Binding
	PrevFocus   key.Binding
	LineNumbers key.Binding
	Quit        key.Binding
}

func DefaultKeyMap(sk shortcut.KeyMap) KeyMap {
	return KeyMap{
		Shortcuts:   sk,
		NextFocus:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next field")),
		PrevFocus:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "prev field")),
		LineNumbers: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "line numbers")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return append(k.Shortcuts.ShortHelp(), k.NextFocus, k.LineNumbers, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Shortcuts.ShortHelp(),
		{k.NextFocus, k.PrevFocus, k.LineNumbers, k.Quit},
	}
}
