package buffer

import "unicode"

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := b.clampPos(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && prevSel == nextSel {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1

	switch m.Unit {
	case MoveDoc:
		switch m.Dir {
		case DirHome, DirUp, DirLeft:
			return Pos{}
		default:
			return Pos{Row: lastRow, Col: len(b.lines[lastRow])}
		}
	case MoveWord:
		switch m.Dir {
		case DirLeft:
			return Pos{Row: row, Col: prevWordBoundary(b.lines[row], col)}
		case DirRight:
			return Pos{Row: row, Col: nextWordBoundary(b.lines[row], col)}
		}
	case MoveLine:
		switch m.Dir {
		case DirHome:
			return Pos{Row: row}
		case DirEnd:
			return Pos{Row: row, Col: len(b.lines[row])}
		}
	}

	switch m.Dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, Col: col - 1}
		}
		if row > 0 {
			return Pos{Row: row - 1, Col: len(b.lines[row-1])}
		}
	case DirRight:
		if col < len(b.lines[row]) {
			return Pos{Row: row, Col: col + 1}
		}
		if row < lastRow {
			return Pos{Row: row + 1}
		}
	case DirUp:
		if row > 0 {
			return Pos{Row: row - 1, Col: min(col, len(b.lines[row-1]))}
		}
	case DirDown:
		if row < lastRow {
			return Pos{Row: row + 1, Col: min(col, len(b.lines[row+1]))}
		}
	case DirHome:
		return Pos{Row: row}
	case DirEnd:
		return Pos{Row: row, Col: len(b.lines[row])}
	}
	return p
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func prevWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && !isWordRune(line[i-1]) {
		i--
	}
	for i > 0 && isWordRune(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && !isWordRune(line[i]) {
		i++
	}
	for i < len(line) && isWordRune(line[i]) {
		i++
	}
	return i
}
