package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/codesnap/buffer"
	"github.com/iw2rmb/codesnap/clipboard"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func focused(cfg Config) *TextArea {
	t := NewTextArea(cfg)
	t.Focus()
	return t
}

func TestTextArea_TypingMovementAndDelete(t *testing.T) {
	ta := focused(Config{Text: "ab"})

	ta.Update(tea.KeyMsg{Type: tea.KeyRight})
	ta.Update(runes("X"))
	if got := ta.Value(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := ta.Buffer().Cursor(); got != (buffer.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor after insert: got %v, want %v", got, buffer.Pos{Row: 0, Col: 2})
	}

	ta.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	ta.Update(tea.KeyMsg{Type: tea.KeyEnter})
	ta.Update(tea.KeyMsg{Type: tea.KeyTab})
	ta.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if got, want := ta.Value(), "a\n\t b"; got != want {
		t.Fatalf("text after edits: got %q, want %q", got, want)
	}
}

func TestTextArea_IgnoresKeysWhenBlurred(t *testing.T) {
	ta := NewTextArea(Config{Text: "ab"})
	ta.Update(runes("X"))
	if got := ta.Value(); got != "ab" {
		t.Fatalf("text: got %q, want %q", got, "ab")
	}
}

func TestTextArea_SelectionOffsets(t *testing.T) {
	ta := focused(Config{Text: "h\u00e9llo\nw\u00f6rld"})

	ta.SetSelection(2, 8)
	start, end := ta.Selection()
	if start != 2 || end != 8 {
		t.Fatalf("selection: got (%d,%d), want (2,8)", start, end)
	}
	if got, want := ta.SelectedText(), "llo\nw\u00f6"; got != want {
		t.Fatalf("selected text: got %q, want %q", got, want)
	}

	ta.SetSelection(4, 4)
	start, end = ta.Selection()
	if start != 4 || end != 4 {
		t.Fatalf("caret: got (%d,%d), want (4,4)", start, end)
	}
	if got := ta.SelectedText(); got != "" {
		t.Fatalf("selected text after collapse: got %q, want empty", got)
	}
}

func TestTextArea_ShiftSelection(t *testing.T) {
	ta := focused(Config{Text: "abc"})
	ta.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	ta.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	start, end := ta.Selection()
	if start != 0 || end != 2 {
		t.Fatalf("selection: got (%d,%d), want (0,2)", start, end)
	}

	ta.Update(runes("Z"))
	if got := ta.Value(); got != "Zc" {
		t.Fatalf("typing over selection: got %q, want %q", got, "Zc")
	}
}

func TestTextArea_Decorations(t *testing.T) {
	ta := focused(Config{Text: "abc\nde"})
	ta.SetSelection(1, 5)

	want := Decorations{
		Caret:        Point{Row: 1, Cell: 1},
		CaretVisible: true,
		Selection: []CellSpan{
			{Row: 0, Start: 1, End: 4},
			{Row: 1, Start: 0, End: 1},
		},
	}
	if diff := cmp.Diff(want, ta.Decorations()); diff != "" {
		t.Fatalf("decorations mismatch (-want +got):\n%s", diff)
	}

	ta.Blur()
	if ta.Decorations().CaretVisible {
		t.Fatalf("caret visible after blur")
	}
}

func TestTextArea_NativeCopyAndCut(t *testing.T) {
	cb := clipboard.NewMemory()
	ta := focused(Config{Text: "hello world", Clipboard: cb})

	if cmd := ta.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd != nil {
		t.Fatalf("copy without selection returned a command")
	}

	ta.SetSelection(0, 5)
	cmd := ta.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("copy with selection returned no command")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("copy message: got %#v, want nil", msg)
	}
	if got, _ := cb.ReadText(); got != "hello" {
		t.Fatalf("clipboard after copy: got %q, want %q", got, "hello")
	}
	if got := ta.Value(); got != "hello world" {
		t.Fatalf("copy changed text: got %q", got)
	}

	ta.SetSelection(5, 11)
	cmd = ta.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := ta.Value(); got != "hello" {
		t.Fatalf("text after cut: got %q, want %q", got, "hello")
	}
	cmd()
	if got, _ := cb.ReadText(); got != " world" {
		t.Fatalf("clipboard after cut: got %q, want %q", got, " world")
	}
}

func TestTextArea_BracketedPasteNormalizesNewlines(t *testing.T) {
	ta := focused(Config{})
	ta.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb\rc"), Paste: true})
	if got, want := ta.Value(), "a\nb\nc"; got != want {
		t.Fatalf("pasted text: got %q, want %q", got, want)
	}
}

func TestTextArea_ScrollFollowsCaret(t *testing.T) {
	ta := focused(Config{Text: "0\n1\n2\n3\n4\n5\n6\n7"})
	ta.SetSize(4, 3)

	for i := 0; i < 5; i++ {
		ta.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := ta.ScrollTop(); got != 3 {
		t.Fatalf("top after moving down: got %d, want 3", got)
	}

	ta.SetValue("0123456789")
	ta.SetSelection(9, 9)
	if got := ta.ScrollLeft(); got != 6 {
		t.Fatalf("left after moving right: got %d, want 6", got)
	}
	if got := ta.ScrollTop(); got != 0 {
		t.Fatalf("top after SetValue: got %d, want 0", got)
	}
}

func TestTextArea_MouseWheelClamps(t *testing.T) {
	ta := NewTextArea(Config{Text: "0\n1\n2\n3\n4\n5"})
	ta.SetSize(4, 2)

	ta.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if got := ta.ScrollTop(); got != 3 {
		t.Fatalf("top after wheel down: got %d, want 3", got)
	}
	ta.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if got := ta.ScrollTop(); got != 4 {
		t.Fatalf("top after second wheel down: got %d, want 4", got)
	}
	ta.Update(tea.MouseMsg{Button: tea.MouseButtonWheelRight, Action: tea.MouseActionPress})
	if got := ta.ScrollLeft(); got != 0 {
		t.Fatalf("left with short lines: got %d, want 0", got)
	}
	ta.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	ta.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if got := ta.ScrollTop(); got != 0 {
		t.Fatalf("top after wheel up: got %d, want 0", got)
	}
}

func TestTextArea_ClickAndDrag(t *testing.T) {
	ta := focused(Config{Text: "abcd\nefgh"})
	ta.SetSize(10, 2)

	ta.Update(tea.MouseMsg{X: 1, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := ta.Buffer().Cursor(); got != (buffer.Pos{Row: 1, Col: 1}) {
		t.Fatalf("cursor after click: got %v, want {1 1}", got)
	}

	ta.Update(tea.MouseMsg{X: 3, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	start, end := ta.Selection()
	if start != 3 || end != 6 {
		t.Fatalf("selection after drag: got (%d,%d), want (3,6)", start, end)
	}
}

func TestTextArea_View(t *testing.T) {
	ta := NewTextArea(Config{Placeholder: "type here"})
	ta.SetSize(12, 2)
	if got, want := ta.View(), "type here   \n            "; got != want {
		t.Fatalf("placeholder view: got %q, want %q", got, want)
	}

	ta.Focus()
	ta.SetValue("ab")
	ta.SetSelection(2, 2)
	if got, want := ta.View(), "ab          \n            "; got != want {
		t.Fatalf("focused view: got %q, want %q", got, want)
	}
}
