// Package notify carries transient success/failure notifications ("toasts")
// through the Bubble Tea loop and renders them.
package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Level distinguishes success from failure. Wording is up to the caller.
type Level uint8

const (
	LevelSuccess Level = iota
	LevelFailure
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Msg is a single notification. It is a tea.Msg; Model consumes it.
type Msg struct {
	ID    string
	Level Level
	Text  string
}

func newMsg(level Level, text string) Msg {
	return Msg{ID: uuid.NewString(), Level: level, Text: text}
}

// Success returns a success notification.
func Success(text string) Msg { return newMsg(LevelSuccess, text) }

// Failure returns a failure notification.
func Failure(text string) Msg { return newMsg(LevelFailure, text) }

// SuccessCmd emits a success notification.
func SuccessCmd(text string) tea.Cmd {
	return func() tea.Msg { return Success(text) }
}

// FailureCmd emits a failure notification.
func FailureCmd(text string) tea.Cmd {
	return func() tea.Msg { return Failure(text) }
}

type expireMsg struct{ id string }

// DefaultTTL is how long a toast stays on screen.
const DefaultTTL = 3 * time.Second

// DefaultMaxVisible bounds the stack; older toasts are dropped first.
const DefaultMaxVisible = 3
