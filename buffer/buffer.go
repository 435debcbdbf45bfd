package buffer

import "strings"

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, cursor, and selection.
//
// Version increases on every observable change (text, cursor or selection);
// TextVersion only when the text changes.
type Buffer struct {
	lines       [][]rune
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState
}

func New(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// SetText replaces the whole document. The cursor is clamped into the new
// text and the selection is dropped. CRLF and lone CR are stored as LF.
func (b *Buffer) SetText(text string) {
	text = NormalizeNewlines(text)
	if text == b.Text() {
		return
	}
	b.lines = splitLines(text)
	b.cursor = b.clampPos(b.cursor)
	b.sel = selectionState{}
	b.version++
	b.textVersion++
}

func (b *Buffer) Version() uint64     { return b.version }
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// Lines returns a copy of every line as a string.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SetSelection selects r and places the cursor at r.End. An empty range
// clears the selection.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}
	if next == b.sel && b.cursor == clamped.End {
		return
	}
	b.sel = next
	b.cursor = clamped.End
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

// NormalizeNewlines rewrites CRLF and lone CR line breaks as LF.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func splitLines(text string) [][]rune {
	parts := strings.Split(NormalizeNewlines(text), "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	return lines
}
