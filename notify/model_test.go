package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestModel_ShowsAndExpires(t *testing.T) {
	m := New(Config{TTL: time.Millisecond})

	first := Success("Code copied to clipboard!")
	m, cmd := m.Update(first)
	if cmd == nil {
		t.Fatalf("expected expiry command")
	}
	if got := len(m.Toasts()); got != 1 {
		t.Fatalf("toasts: got %d, want 1", got)
	}
	if !strings.Contains(m.View(), "Code copied to clipboard!") {
		t.Fatalf("view missing toast text: %q", m.View())
	}

	m, _ = m.Update(Failure("Failed to paste from clipboard."))
	m, _ = m.Update(cmd())
	toasts := m.Toasts()
	if len(toasts) != 1 || toasts[0].Level != LevelFailure {
		t.Fatalf("after expiry: got %+v, want only the failure toast", toasts)
	}
}

func TestModel_DropsOldest(t *testing.T) {
	m := New(Config{MaxVisible: 2})
	for _, s := range []string{"a", "b", "c"} {
		m, _ = m.Update(Success(s))
	}
	toasts := m.Toasts()
	if len(toasts) != 2 || toasts[0].Text != "b" || toasts[1].Text != "c" {
		t.Fatalf("toasts: got %+v, want [b c]", toasts)
	}
}

func TestCmds_CarryLevel(t *testing.T) {
	if msg := SuccessCmd("ok")().(Msg); msg.Level != LevelSuccess || msg.Text != "ok" {
		t.Fatalf("success cmd: got %+v", msg)
	}
	if msg := FailureCmd("no")().(Msg); msg.Level != LevelFailure || msg.Text != "no" {
		t.Fatalf("failure cmd: got %+v", msg)
	}
	if Success("x").ID == Success("x").ID {
		t.Fatalf("notification ids must be unique")
	}
}

func TestModel_InterleavesInArrivalOrder(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(Success("Code copied to clipboard!"))
	m, _ = m.Update(Failure("Failed to paste from clipboard."))
	m, _ = m.Update(Success("Code cleared!"))

	want := []Msg{
		{Level: LevelSuccess, Text: "Code copied to clipboard!"},
		{Level: LevelFailure, Text: "Failed to paste from clipboard."},
		{Level: LevelSuccess, Text: "Code cleared!"},
	}
	if diff := cmp.Diff(want, m.Toasts(), cmpopts.IgnoreFields(Msg{}, "ID")); diff != "" {
		t.Fatalf("toasts mismatch (-want +got):\n%s", diff)
	}
	ids := map[string]bool{}
	for _, toast := range m.Toasts() {
		if toast.ID == "" || ids[toast.ID] {
			t.Fatalf("toast ids must be unique and non-empty: %+v", m.Toasts())
		}
		ids[toast.ID] = true
	}
}
