package notify

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Style controls toast rendering.
type Style struct {
	Success lipgloss.Style
	Failure lipgloss.Style
}

func DefaultStyle() Style {
	box := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	return Style{
		Success: box.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42")),
		Failure: box.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")),
	}
}

// Config configures a toast stack.
type Config struct {
	// TTL is how long each toast stays. Zero means DefaultTTL.
	TTL time.Duration
	// MaxVisible bounds the stack. Zero means DefaultMaxVisible.
	MaxVisible int
	Style      Style
}

// Model is a stack of toasts, newest last. Toasts from overlapping
// operations interleave in arrival order.
type Model struct {
	cfg    Config
	toasts []Msg
}

func New(cfg Config) Model {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxVisible <= 0 {
		cfg.MaxVisible = DefaultMaxVisible
	}
	return Model{cfg: cfg}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Msg:
		m.toasts = append(append([]Msg(nil), m.toasts...), msg)
		if over := len(m.toasts) - m.cfg.MaxVisible; over > 0 {
			m.toasts = m.toasts[over:]
		}
		id := msg.ID
		return m, tea.Tick(m.cfg.TTL, func(time.Time) tea.Msg { return expireMsg{id: id} })
	case expireMsg:
		out := make([]Msg, 0, len(m.toasts))
		for _, t := range m.toasts {
			if t.ID != msg.id {
				out = append(out, t)
			}
		}
		m.toasts = out
	}
	return m, nil
}

// Toasts returns the visible notifications, oldest first.
func (m Model) Toasts() []Msg {
	return append([]Msg(nil), m.toasts...)
}

func (m Model) View() string {
	if len(m.toasts) == 0 {
		return ""
	}
	rows := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		st := m.cfg.Style.Success
		if t.Level == LevelFailure {
			st = m.cfg.Style.Failure
		}
		rows = append(rows, st.Render(t.Text))
	}
	return strings.Join(rows, "\n")
}
