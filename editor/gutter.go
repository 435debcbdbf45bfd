package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LineNumberWidth returns the line-number gutter width for lineCount,
// including the trailing separator space.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

// renderLineNumber draws the gutter cell for row. Rows past the document end
// render as blanks.
func renderLineNumber(row, lineCount, cursorRow int, focused bool, st Style) string {
	digits := gutterDigits(lineCount)
	if row < 0 || row >= lineCount {
		return st.LineNum.Render(strings.Repeat(" ", digits+1))
	}
	s := st.LineNum
	if focused && row == cursorRow {
		s = st.LineNumActive
	}
	return s.Render(fmt.Sprintf("%*d ", digits, row+1))
}

// blank renders n cells of base.
func blank(base lipgloss.Style, n int) string {
	if n <= 0 {
		return ""
	}
	return base.Render(strings.Repeat(" ", n))
}
