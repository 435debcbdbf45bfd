// Package grapheme lays out text as terminal cells.
//
// The textarea and the highlighted overlay both place text through Layout so
// that a caret drawn by one lines up with glyphs drawn by the other.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a caller passes a non-positive tab width.
const DefaultTabWidth = 4

// Cluster is one grapheme cluster placed on a row of cells.
type Cluster struct {
	Text string
	// Rune is the rune offset of the cluster start within the line.
	Rune int
	// Runes is the number of runes in the cluster.
	Runes int
	// Cell is the first cell the cluster occupies.
	Cell int
	// Width is the number of cells the cluster occupies. Tabs expand to the
	// next tab stop.
	Width int
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Layout places every cluster of a single line, starting at cell 0.
func Layout(line string, tabWidth int) []Cluster {
	return LayoutFrom(line, 0, tabWidth)
}

// LayoutFrom places clusters starting at startCell. Tab stops are computed
// from cell 0, so a span laid out mid-line expands tabs consistently with the
// whole line.
func LayoutFrom(text string, startCell, tabWidth int) []Cluster {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]Cluster, 0, len(text))
	cell := startCell
	r := 0
	for g.Next() {
		s := g.Str()
		n := len(g.Runes())
		w := Width(s, cell, tabWidth)
		out = append(out, Cluster{Text: s, Rune: r, Runes: n, Cell: cell, Width: w})
		cell += w
		r += n
	}
	return out
}

// Width returns the cell width of cluster when it starts at cell.
func Width(cluster string, cell, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = DefaultTabWidth
		}
		return tabWidth - cell%tabWidth
	}

	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// LineWidth returns the number of cells line occupies.
func LineWidth(line string, tabWidth int) int {
	cs := Layout(line, tabWidth)
	if len(cs) == 0 {
		return 0
	}
	last := cs[len(cs)-1]
	return last.Cell + last.Width
}

// CellAt returns the first cell of the cluster containing rune offset col.
// Offsets at or past the end map to the cell right after the line.
func CellAt(line string, col, tabWidth int) int {
	end := 0
	for _, c := range Layout(line, tabWidth) {
		if col < c.Rune+c.Runes {
			return c.Cell
		}
		end = c.Cell + c.Width
	}
	return end
}

// Printable returns cluster as it should be written to the terminal: tabs
// become spaces of the given width.
func Printable(cluster string, width int) string {
	if cluster == "\t" {
		return strings.Repeat(" ", width)
	}
	return cluster
}
