package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codesnap/highlight"
	graphemeutil "github.com/iw2rmb/codesnap/internal/grapheme"
)

// OverlayConfig configures an Overlay.
type OverlayConfig struct {
	Style       Style
	TabWidth    int
	LineNumbers bool
}

// Overlay is the non-interactive highlighted display of the textarea's
// document. It draws the textarea's caret and selection over the highlighted
// glyphs and mirrors its scroll offsets.
type Overlay struct {
	cfg OverlayConfig
	vp  viewport.Model

	lines []highlight.Line
	base  lipgloss.Style
	dec   Decorations
	left  int
}

func NewOverlay(cfg OverlayConfig) *Overlay {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = graphemeutil.DefaultTabWidth
	}
	// The viewport never sees input; scrolling is driven by the textarea.
	return &Overlay{cfg: cfg, vp: viewport.New(0, 0)}
}

func (o *Overlay) SetSize(width, height int) {
	o.vp.Width = max(width, 0)
	o.vp.Height = max(height, 0)
	o.refresh()
}

func (o *Overlay) Width() int  { return o.vp.Width }
func (o *Overlay) Height() int { return o.vp.Height }

// SetLines replaces the highlighted content. base carries the theme colors.
func (o *Overlay) SetLines(lines []highlight.Line, base lipgloss.Style) {
	o.lines = lines
	o.base = base
	o.refresh()
}

func (o *Overlay) SetDecorations(d Decorations) {
	o.dec = d
	o.refresh()
}

func (o *Overlay) SetLineNumbers(on bool) {
	o.cfg.LineNumbers = on
	o.refresh()
}

func (o *Overlay) LineNumbers() bool { return o.cfg.LineNumbers }

// GutterWidth is the width of the line-number gutter, or 0 when hidden.
func (o *Overlay) GutterWidth() int {
	if !o.cfg.LineNumbers {
		return 0
	}
	return LineNumberWidth(len(o.lines))
}

// ContentWidth is the number of text cells per row, excluding the gutter.
func (o *Overlay) ContentWidth() int {
	return max(o.vp.Width-o.GutterWidth(), 0)
}

func (o *Overlay) ScrollTop() int  { return o.vp.YOffset }
func (o *Overlay) ScrollLeft() int { return o.left }

func (o *Overlay) SetScrollTop(n int) { o.vp.SetYOffset(n) }

func (o *Overlay) SetScrollLeft(n int) {
	n = max(n, 0)
	if n == o.left {
		return
	}
	o.left = n
	o.refresh()
}

func (o *Overlay) refresh() {
	width := o.ContentWidth()
	rows := make([]string, len(o.lines))
	for i, line := range o.lines {
		var sb strings.Builder
		if o.cfg.LineNumbers {
			sb.WriteString(renderLineNumber(i, len(o.lines), o.dec.Caret.Row, o.dec.CaretVisible, o.cfg.Style))
		}
		sb.WriteString(renderRow(line, o.base, o.dec.row(i), o.left, width, o.cfg.TabWidth, o.cfg.Style))
		rows[i] = sb.String()
	}
	top := o.vp.YOffset
	o.vp.SetContent(strings.Join(rows, "\n"))
	o.vp.SetYOffset(top)
}

func (o *Overlay) View() string {
	if o.vp.Width <= 0 || o.vp.Height <= 0 {
		return ""
	}
	return o.vp.View()
}
