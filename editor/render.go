package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codesnap/highlight"
	graphemeutil "github.com/iw2rmb/codesnap/internal/grapheme"
)

// rowDecor is the part of Decorations that falls on one row.
type rowDecor struct {
	caret    int // cell, or -1
	selStart int // cells [selStart, selEnd)
	selEnd   int
}

func noDecor() rowDecor { return rowDecor{caret: -1} }

func (d rowDecor) selected(cell int) bool {
	return cell >= d.selStart && cell < d.selEnd
}

func (d Decorations) row(row int) rowDecor {
	out := noDecor()
	if d.CaretVisible && d.Caret.Row == row {
		out.caret = d.Caret.Cell
	}
	for _, sp := range d.Selection {
		if sp.Row == row {
			out.selStart, out.selEnd = sp.Start, sp.End
			break
		}
	}
	return out
}

// renderRow draws the cells [left, left+width) of one line. Clusters cut by
// either edge are drawn as blanks so the row keeps its exact width.
func renderRow(line highlight.Line, base lipgloss.Style, dec rowDecor, left, width, tabWidth int, st Style) string {
	if width <= 0 {
		return ""
	}
	right := left + width

	cellStyle := func(s lipgloss.Style, cell int) lipgloss.Style {
		if dec.selected(cell) {
			s = st.Selection.Inherit(s)
		}
		if cell == dec.caret {
			s = st.Cursor.Inherit(s)
		}
		return s
	}

	var sb strings.Builder
	cell := 0
	used := 0
	for _, sp := range line {
		spStyle := sp.Style.Inherit(base)
		for _, c := range graphemeutil.LayoutFrom(sp.Text, cell, tabWidth) {
			cell = c.Cell + c.Width
			if cell <= left || c.Width == 0 {
				continue
			}
			if c.Cell >= right {
				break
			}

			s := cellStyle(spStyle, c.Cell)
			switch {
			case c.Cell < left:
				n := min(cell, right) - left
				sb.WriteString(s.Render(strings.Repeat(" ", n)))
				used += n
			case cell > right:
				n := right - c.Cell
				sb.WriteString(s.Render(strings.Repeat(" ", n)))
				used += n
			default:
				sb.WriteString(s.Render(graphemeutil.Printable(c.Text, c.Width)))
				used += c.Width
			}
		}
		if cell >= right {
			break
		}
	}

	// The cell right after the text carries a caret at end of line and the
	// selected newline.
	if cell >= left && cell < right && (dec.caret == cell || dec.selected(cell)) {
		sb.WriteString(cellStyle(base, cell).Render(" "))
		used++
	}

	sb.WriteString(blank(base, width-used))
	return sb.String()
}

// plainLine wraps unhighlighted text as a single-span line.
func plainLine(text string, s lipgloss.Style) highlight.Line {
	if text == "" {
		return nil
	}
	return highlight.Line{{Text: text, Style: s}}
}

// runeAtCell maps a cell on line to the rune offset of the cluster drawn
// there. Cells past the end map to the line length.
func runeAtCell(line string, cell, tabWidth int) int {
	n := 0
	for _, c := range graphemeutil.Layout(line, tabWidth) {
		if cell < c.Cell+c.Width {
			if cell-c.Cell > (c.Width-1)/2 && c.Width > 1 {
				return c.Rune + c.Runes
			}
			return c.Rune
		}
		n = c.Rune + c.Runes
	}
	return n
}
