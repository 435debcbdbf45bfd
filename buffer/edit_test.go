package buffer

import "testing"

func TestInsertText_ReplacesSelection(t *testing.T) {
	b := New("hello world")
	b.SetSelection(Range{Start: Pos{Col: 6}, End: Pos{Col: 11}})
	b.InsertText("there")

	if got := b.Text(); got != "hello there" {
		t.Fatalf("text=%q, want %q", got, "hello there")
	}
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 11}) {
		t.Fatalf("cursor=%v, want (0,11)", got)
	}
}

func TestInsertText_Multiline(t *testing.T) {
	b := New("ad")
	b.SetCursor(Pos{Col: 1})
	b.InsertText("b\nc")

	if got := b.Text(); got != "ab\ncd" {
		t.Fatalf("text=%q, want %q", got, "ab\ncd")
	}
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 1}) {
		t.Fatalf("cursor=%v, want (1,1)", got)
	}
}

func TestDeleteBackward_JoinsLines(t *testing.T) {
	b := New("ab\ncd")
	b.SetCursor(Pos{Row: 1, Col: 0})
	b.DeleteBackward()

	if got := b.Text(); got != "abcd" {
		t.Fatalf("text=%q, want %q", got, "abcd")
	}
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}

	b.SetCursor(Pos{})
	v := b.TextVersion()
	b.DeleteBackward()
	if b.TextVersion() != v {
		t.Fatalf("backspace at doc start changed text")
	}
}

func TestDeleteForward(t *testing.T) {
	b := New("ab\ncd")
	b.SetCursor(Pos{Row: 0, Col: 2})
	b.DeleteForward()
	if got := b.Text(); got != "abcd" {
		t.Fatalf("text=%q, want %q", got, "abcd")
	}

	b.SetCursor(Pos{Row: 0, Col: 0})
	b.DeleteForward()
	if got := b.Text(); got != "bcd" {
		t.Fatalf("text=%q, want %q", got, "bcd")
	}
}

func TestTextInRange(t *testing.T) {
	b := New("one\ntwo\nthree")
	got := b.TextInRange(Range{Start: Pos{Row: 0, Col: 1}, End: Pos{Row: 2, Col: 2}})
	if want := "ne\ntwo\nth"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.TextInRange(Range{Start: Pos{Row: 1, Col: 1}, End: Pos{Row: 1, Col: 1}}); got != "" {
		t.Fatalf("empty range text=%q, want empty", got)
	}
}
