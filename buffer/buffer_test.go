package buffer

import "testing"

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc")
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}
	if b.TextVersion() != 0 {
		t.Fatalf("expected text version unchanged, got %d", b.TextVersion())
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_SetSelection_NormalizesAndClamps(t *testing.T) {
	b := New("a\nbc")

	b.SetSelection(Range{
		Start: Pos{Row: 1, Col: 99},
		End:   Pos{Row: 0, Col: -1},
	})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	want := Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 1, Col: 2}}
	if r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}

	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	v := b.Version()
	b.ClearSelection()
	if b.Version() != v {
		t.Fatalf("clearing twice bumped version: got %d, want %d", b.Version(), v)
	}
}

func TestBuffer_SetText_ResetsSelection(t *testing.T) {
	b := New("hello world")
	b.SetSelection(Range{Start: Pos{Col: 0}, End: Pos{Col: 5}})

	b.SetText("hi")
	if _, ok := b.Selection(); ok {
		t.Fatalf("selection survived SetText")
	}
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor=%v, want clamped to (0,2)", got)
	}
	if b.TextVersion() != 1 {
		t.Fatalf("text version=%d, want 1", b.TextVersion())
	}

	v := b.Version()
	b.SetText("hi")
	if b.Version() != v {
		t.Fatalf("same text bumped version")
	}
}

func TestBuffer_SetText_StoresLineFeeds(t *testing.T) {
	b := New("a\r\nb")
	if got, want := b.Text(), "a\nb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	b.SetText("x\ry\r\nz")
	if got, want := b.Text(), "x\ny\nz"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := b.LineCount(); got != 3 {
		t.Fatalf("line count: got %d, want 3", got)
	}

	v := b.TextVersion()
	b.SetText("x\ny\r\nz")
	if b.TextVersion() != v {
		t.Fatalf("equivalent line breaks bumped text version")
	}
}

func TestBuffer_Lines(t *testing.T) {
	b := New("a\n\nb")
	if got := b.LineCount(); got != 3 {
		t.Fatalf("line count=%d, want 3", got)
	}
	if got := b.Line(2); got != "b" {
		t.Fatalf("line 2=%q, want %q", got, "b")
	}
	if got := b.Line(7); got != "" {
		t.Fatalf("line out of range=%q, want empty", got)
	}
	if got := New("").LineCount(); got != 1 {
		t.Fatalf("empty doc line count=%d, want 1", got)
	}
}
