package shortcut

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the global shortcut bindings.
//
// Bindings list the lower-case key only, so a shifted combination never
// matches.
type KeyMap struct {
	Copy  key.Binding
	Paste key.Binding
	Clear key.Binding
}

func DefaultKeyMap(p Platform) KeyMap {
	mod := p.Modifier()
	return KeyMap{
		Copy:  key.NewBinding(key.WithKeys(mod+"+c"), key.WithHelp(mod+"+c", "copy snippet")),
		Paste: key.NewBinding(key.WithKeys(mod+"+v"), key.WithHelp(mod+"+v", "paste")),
		Clear: key.NewBinding(key.WithKeys(mod+"+d"), key.WithHelp(mod+"+d", "clear")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Paste, k.Clear}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
