package buffer

import "strings"

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.Replace(r, s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case row == 0 && col == 0:
		return
	case col > 0:
		b.Replace(Range{Start: Pos{Row: row, Col: col - 1}, End: b.cursor}, "")
	default:
		// Join with previous line (delete the newline).
		prev := row - 1
		b.Replace(Range{Start: Pos{Row: prev, Col: len(b.lines[prev])}, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	lastRow := len(b.lines) - 1
	switch {
	case row == lastRow && col == len(b.lines[lastRow]):
		return
	case col < len(b.lines[row]):
		b.Replace(Range{Start: b.cursor, End: Pos{Row: row, Col: col + 1}}, "")
	default:
		b.Replace(Range{Start: b.cursor, End: Pos{Row: row + 1, Col: 0}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.Replace(r, "")
}

// Replace substitutes the text in r with text and places the cursor right
// after the inserted text. The selection is cleared.
func (b *Buffer) Replace(r Range, text string) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return
	}

	prefix := append([]rune(nil), b.lines[r.Start.Row][:r.Start.Col]...)
	suffix := append([]rune(nil), b.lines[r.End.Row][r.End.Col:]...)

	parts := strings.Split(text, "\n")
	repl := make([][]rune, 0, len(parts))
	for i, p := range parts {
		var line []rune
		if i == 0 {
			line = append(line, prefix...)
		}
		line = append(line, []rune(p)...)
		repl = append(repl, line)
	}
	last := len(repl) - 1
	next := Pos{Row: r.Start.Row + last, Col: len(repl[last])}
	repl[last] = append(repl[last], suffix...)

	out := make([][]rune, 0, len(b.lines)-(r.End.Row-r.Start.Row)+last)
	out = append(out, b.lines[:r.Start.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[r.End.Row+1:]...)

	b.lines = out
	b.cursor = next
	b.sel = selectionState{}
	b.version++
	b.textVersion++
}

// TextInRange returns the document text covered by r.
func (b *Buffer) TextInRange(r Range) string {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return string(b.lines[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		line := b.lines[row]
		start, end := 0, len(line)
		if row == r.Start.Row {
			start = r.Start.Col
		}
		if row == r.End.Row {
			end = r.End.Col
		}
		sb.WriteString(string(line[start:end]))
	}
	return sb.String()
}
