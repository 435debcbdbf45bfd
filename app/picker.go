package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type option struct {
	value string
	label string
}

// picker is a one-line selection control cycled with the arrow keys.
type picker struct {
	title   string
	options []option
	index   int
	focused bool

	prev, next key.Binding
}

func newPicker(title string, options []option, value string) picker {
	p := picker{
		title:   title,
		options: options,
		prev:    key.NewBinding(key.WithKeys("left", "up", "h", "k")),
		next:    key.NewBinding(key.WithKeys("right", "down", "l", "j")),
	}
	p.set(value)
	return p
}

func (p *picker) set(value string) {
	for i, o := range p.options {
		if o.value == value {
			p.index = i
			return
		}
	}
}

func (p picker) value() string {
	if len(p.options) == 0 {
		return ""
	}
	return p.options[p.index].value
}

// update reports whether the selection changed.
func (p *picker) update(msg tea.KeyMsg) bool {
	n := len(p.options)
	if n == 0 {
		return false
	}
	switch {
	case key.Matches(msg, p.prev):
		p.index = (p.index + n - 1) % n
	case key.Matches(msg, p.next):
		p.index = (p.index + 1) % n
	default:
		return false
	}
	return true
}

func (p picker) view(st Styles) string {
	label := ""
	if len(p.options) > 0 {
		label = p.options[p.index].label
	}
	s := st.Control
	if p.focused {
		s = st.ControlFocused
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, st.Label.Render(p.title+": "), s.Render("‹ "+label+" ›"))
}
