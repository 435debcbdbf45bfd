package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codesnap/buffer"
	"github.com/iw2rmb/codesnap/clipboard"
	graphemeutil "github.com/iw2rmb/codesnap/internal/grapheme"
)

const (
	wheelRows  = 3
	wheelCells = 4
)

// Config configures a TextArea.
type Config struct {
	Text        string
	Placeholder string

	KeyMap KeyMap
	Style  Style

	// TabWidth is the tab stop distance in cells. Non-positive means
	// graphemeutil.DefaultTabWidth.
	TabWidth int

	// Clipboard backs native copy and cut of the selection. Nil disables them.
	Clipboard clipboard.Clipboard
}

// Point is a caret position in cell coordinates.
type Point struct {
	Row  int
	Cell int
}

// CellSpan is the half-open cell range [Start, End) of one row.
type CellSpan struct {
	Row   int
	Start int
	End   int
}

// Decorations describe the textarea's caret and selection in cell coordinates
// so that another view can draw them over its own glyphs.
type Decorations struct {
	Caret        Point
	CaretVisible bool
	// Selection has at most one span per row, in row order. A span that
	// continues onto the next row includes the cell after the line's text.
	Selection []CellSpan
}

// ClipboardErrorMsg reports a failed native copy or cut.
type ClipboardErrorMsg struct {
	Err error
}

// TextArea is the interactive text element. It owns the document, the caret
// and the selection, and scrolls to keep the caret visible.
type TextArea struct {
	cfg Config
	buf *buffer.Buffer

	focused       bool
	width, height int
	top, left     int
}

func NewTextArea(cfg Config) *TextArea {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = graphemeutil.DefaultTabWidth
	}
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap("")
	}
	return &TextArea{cfg: cfg, buf: buffer.New(cfg.Text)}
}

// Buffer exposes the underlying document.
func (t *TextArea) Buffer() *buffer.Buffer { return t.buf }

func (t *TextArea) Value() string { return t.buf.Text() }

// SetValue replaces the document. The caret is clamped into the new text.
func (t *TextArea) SetValue(s string) {
	t.buf.SetText(s)
	t.followCursor()
}

// Selection returns the selection as rune offsets. With nothing selected both
// offsets equal the caret offset.
func (t *TextArea) Selection() (start, end int) {
	return t.buf.SelectionOffsets()
}

// SetSelection selects [start, end) given as rune offsets; equal offsets place
// the caret.
func (t *TextArea) SetSelection(start, end int) {
	t.buf.SetSelectionOffsets(start, end)
	t.followCursor()
}

// SelectedText returns the selected text, or "" with no selection.
func (t *TextArea) SelectedText() string {
	r, ok := t.buf.Selection()
	if !ok {
		return ""
	}
	return t.buf.TextInRange(r)
}

func (t *TextArea) Focus()        { t.focused = true }
func (t *TextArea) Blur()         { t.focused = false }
func (t *TextArea) Focused() bool { return t.focused }

func (t *TextArea) SetSize(width, height int) {
	t.width = max(width, 0)
	t.height = max(height, 0)
	t.followCursor()
}

func (t *TextArea) Width() int  { return t.width }
func (t *TextArea) Height() int { return t.height }

func (t *TextArea) ScrollTop() int  { return t.top }
func (t *TextArea) ScrollLeft() int { return t.left }

func (t *TextArea) SetScrollTop(n int) {
	t.top = clamp(n, 0, max(t.buf.LineCount()-t.height, 0))
}

func (t *TextArea) SetScrollLeft(n int) {
	t.left = clamp(n, 0, max(t.contentWidth()+1-t.width, 0))
}

func (t *TextArea) contentWidth() int {
	w := 0
	for row := 0; row < t.buf.LineCount(); row++ {
		w = max(w, graphemeutil.LineWidth(t.buf.Line(row), t.cfg.TabWidth))
	}
	return w
}

func (t *TextArea) caretPoint() Point {
	c := t.buf.Cursor()
	return Point{Row: c.Row, Cell: graphemeutil.CellAt(t.buf.Line(c.Row), c.Col, t.cfg.TabWidth)}
}

// followCursor scrolls the minimum amount that brings the caret into view.
func (t *TextArea) followCursor() {
	p := t.caretPoint()
	if t.height > 0 {
		if p.Row < t.top {
			t.top = p.Row
		} else if p.Row >= t.top+t.height {
			t.top = p.Row - t.height + 1
		}
	}
	if t.width > 0 {
		if p.Cell < t.left {
			t.left = p.Cell
		} else if p.Cell >= t.left+t.width {
			t.left = p.Cell - t.width + 1
		}
	}
	t.SetScrollTop(t.top)
	t.SetScrollLeft(t.left)
}

// Decorations reports the caret and selection in cell coordinates.
func (t *TextArea) Decorations() Decorations {
	d := Decorations{Caret: t.caretPoint(), CaretVisible: t.focused}
	r, ok := t.buf.Selection()
	if !ok {
		return d
	}
	r = buffer.NormalizeRange(r)
	for row := r.Start.Row; row <= r.End.Row; row++ {
		line := t.buf.Line(row)
		start := 0
		if row == r.Start.Row {
			start = graphemeutil.CellAt(line, r.Start.Col, t.cfg.TabWidth)
		}
		var end int
		if row == r.End.Row {
			end = graphemeutil.CellAt(line, r.End.Col, t.cfg.TabWidth)
		} else {
			end = graphemeutil.LineWidth(line, t.cfg.TabWidth) + 1
		}
		if end > start {
			d.Selection = append(d.Selection, CellSpan{Row: row, Start: start, End: end})
		}
	}
	return d
}

// Update handles keys, bracketed paste and mouse input. Keys are ignored
// while blurred; the mouse wheel always scrolls.
func (t *TextArea) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !t.focused {
			return nil
		}
		cmd := t.handleKey(msg)
		t.followCursor()
		return cmd
	case tea.MouseMsg:
		t.handleMouse(msg)
	}
	return nil
}

func (t *TextArea) handleKey(msg tea.KeyMsg) tea.Cmd {
	km := t.cfg.KeyMap

	if msg.Paste {
		t.buf.InsertText(buffer.NormalizeNewlines(string(msg.Runes)))
		return nil
	}

	switch {
	case key.Matches(msg, km.Copy):
		return t.copySelection(false)
	case key.Matches(msg, km.Cut):
		return t.copySelection(true)
	case key.Matches(msg, km.SelectAll):
		t.buf.SetSelectionOffsets(0, t.buf.RuneLen())

	case key.Matches(msg, km.ShiftLeft):
		t.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		t.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		t.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		t.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown, Extend: true})
	case key.Matches(msg, km.WordLeft):
		t.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		t.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})
	case key.Matches(msg, km.Left):
		t.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		t.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		t.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		t.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})
	case key.Matches(msg, km.DocStart):
		t.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		t.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})
	case key.Matches(msg, km.Home):
		t.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		t.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		t.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		t.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		t.buf.InsertNewline()
	case key.Matches(msg, km.Tab):
		t.buf.InsertText("\t")

	default:
		switch msg.Type {
		case tea.KeyRunes:
			if !msg.Alt {
				t.buf.InsertText(string(msg.Runes))
			}
		case tea.KeySpace:
			t.buf.InsertText(" ")
		}
	}
	return nil
}

// copySelection writes the selection to the clipboard off the event loop.
// Cut removes the selection right away; the write result only matters for
// reporting.
func (t *TextArea) copySelection(cut bool) tea.Cmd {
	text := t.SelectedText()
	if text == "" || t.cfg.Clipboard == nil {
		return nil
	}
	if cut {
		t.buf.DeleteSelection()
	}
	cb := t.cfg.Clipboard
	return func() tea.Msg {
		if err := cb.WriteText(text); err != nil {
			return ClipboardErrorMsg{Err: err}
		}
		return nil
	}
}

func (t *TextArea) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		t.SetScrollTop(t.top - wheelRows)
	case tea.MouseButtonWheelDown:
		t.SetScrollTop(t.top + wheelRows)
	case tea.MouseButtonWheelLeft:
		t.SetScrollLeft(t.left - wheelCells)
	case tea.MouseButtonWheelRight:
		t.SetScrollLeft(t.left + wheelCells)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
			return
		}
		row := clamp(t.top+msg.Y, 0, t.buf.LineCount()-1)
		col := runeAtCell(t.buf.Line(row), t.left+msg.X, t.cfg.TabWidth)
		pos := buffer.Pos{Row: row, Col: col}
		if msg.Action == tea.MouseActionMotion {
			start, _ := t.buf.SelectionOffsets()
			if r, ok := t.buf.Selection(); ok {
				start = t.buf.RuneOffset(selectionAnchor(r, t.buf.Cursor()))
			}
			t.buf.SetSelectionOffsets(start, t.buf.RuneOffset(pos))
		} else {
			t.buf.SetCursor(pos)
		}
		t.followCursor()
	}
}

// selectionAnchor returns the end of r the caret is not on.
func selectionAnchor(r buffer.Range, cursor buffer.Pos) buffer.Pos {
	if r.Start == cursor {
		return r.End
	}
	return r.Start
}

// View renders the textarea without syntax highlighting.
func (t *TextArea) View() string {
	if t.width <= 0 || t.height <= 0 {
		return ""
	}
	st := t.cfg.Style
	dec := t.Decorations()

	rows := make([]string, 0, t.height)
	for i := 0; i < t.height; i++ {
		row := t.top + i
		if row >= t.buf.LineCount() {
			rows = append(rows, blank(st.Text, t.width))
			continue
		}
		line := plainLine(t.buf.Line(row), st.Text)
		if row == 0 && t.buf.LineCount() == 1 && len(line) == 0 && t.cfg.Placeholder != "" && !t.focused {
			line = plainLine(t.cfg.Placeholder, st.Placeholder)
		}
		rows = append(rows, renderRow(line, st.Text, dec.row(row), t.left, t.width, t.cfg.TabWidth, st))
	}
	return strings.Join(rows, "\n")
}


func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
