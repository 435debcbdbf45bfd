// Package shortcut routes global keyboard shortcuts (copy, paste, clear) for
// the snippet editor.
//
// Hub is the global key-down registry: the owning UI forwards every key press
// to Hub.Dispatch before the focused control sees it. Router is the listener
// that turns modifier shortcuts into editor actions.
package shortcut

import tea "github.com/charmbracelet/bubbletea"

// Target classifies the control that had focus when a key was pressed.
type Target uint8

const (
	// TargetEditor is the code textarea or the editor pane itself.
	TargetEditor Target = iota
	// TargetInput is a plain single-line input.
	TargetInput
	// TargetSelect is a selection control such as a picker.
	TargetSelect
)

func (t Target) String() string {
	switch t {
	case TargetEditor:
		return "editor"
	case TargetInput:
		return "input"
	case TargetSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Event is one key press travelling through the hub.
type Event struct {
	Key    tea.KeyMsg
	Target Target

	prevented bool
}

// PreventDefault keeps the key away from the focused control.
func (e *Event) PreventDefault() { e.prevented = true }

func (e *Event) DefaultPrevented() bool { return e.prevented }

// Listener handles a key event. The returned command, if any, is run by the
// Bubble Tea loop.
type Listener func(ev *Event) tea.Cmd

type registration struct {
	id int
	fn Listener
}

// Hub is a registry of global key listeners. It is not safe for concurrent
// use; it belongs to the UI loop.
type Hub struct {
	nextID    int
	listeners []registration
}

func NewHub() *Hub { return &Hub{} }

// Add registers fn and returns a func that removes it. Calling remove more
// than once is a no-op.
func (h *Hub) Add(fn Listener) (remove func()) {
	h.nextID++
	id := h.nextID
	h.listeners = append(h.listeners, registration{id: id, fn: fn})

	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		for i, reg := range h.listeners {
			if reg.id == id {
				h.listeners = append(h.listeners[:i:i], h.listeners[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of registered listeners.
func (h *Hub) Len() int { return len(h.listeners) }

// Dispatch runs every listener in registration order and batches their
// commands.
func (h *Hub) Dispatch(ev *Event) tea.Cmd {
	if ev == nil {
		return nil
	}
	// Listeners may detach themselves while running.
	regs := append([]registration(nil), h.listeners...)

	var cmds []tea.Cmd
	for _, reg := range regs {
		if cmd := reg.fn(ev); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}
