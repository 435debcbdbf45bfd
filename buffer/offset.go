package buffer

// RuneLen returns the document length in runes, counting '\n' as one rune.
func (b *Buffer) RuneLen() int {
	n := len(b.lines) - 1
	for _, l := range b.lines {
		n += len(l)
	}
	return n
}

// RuneOffset converts p to a rune offset. p is clamped first.
func (b *Buffer) RuneOffset(p Pos) int {
	p = b.clampPos(p)
	off := 0
	for row := 0; row < p.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off + p.Col
}

// PosAt converts a rune offset to a position. Offsets outside the document
// are clamped to its bounds.
func (b *Buffer) PosAt(off int) Pos {
	if off <= 0 {
		return Pos{}
	}
	for row, l := range b.lines {
		if off <= len(l) {
			return Pos{Row: row, Col: off}
		}
		off -= len(l) + 1
	}
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last])}
}

// SelectionOffsets reports the selection as rune offsets [start, end). With no
// selection both offsets equal the cursor offset.
func (b *Buffer) SelectionOffsets() (start, end int) {
	if r, ok := b.Selection(); ok {
		return b.RuneOffset(r.Start), b.RuneOffset(r.End)
	}
	c := b.RuneOffset(b.cursor)
	return c, c
}

// SetSelectionOffsets selects [start, end) given as rune offsets. Equal
// offsets place the cursor and clear the selection.
func (b *Buffer) SetSelectionOffsets(start, end int) {
	if start == end {
		b.SetCursor(b.PosAt(start))
		return
	}
	b.SetSelection(Range{Start: b.PosAt(start), End: b.PosAt(end)})
}
