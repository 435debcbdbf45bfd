// Package highlight turns snippet source into highlighted markup for the
// clipboard and styled lines for the terminal overlay.
//
// Markup always has one root <pre> block with one nested <code> block whose
// content holds one <span class="line"> per source line, separated by '\n'.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
)

// Span is a run of text drawn with one style.
type Span struct {
	Text  string
	Style lipgloss.Style
}

// Line is one source line as styled spans. Spans never contain '\n'.
type Line []Span

// Text returns the unstyled line text.
func (l Line) Text() string {
	var sb strings.Builder
	for _, sp := range l {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}

// Result is the output of Render.
type Result struct {
	// Markup is the highlighted HTML.
	Markup string
	// Lines has exactly one entry per '\n'-separated line of the input.
	Lines []Line
	// Base carries the theme's foreground and background.
	Base lipgloss.Style
}

// Render highlights code with the named chroma lexer and style. Unknown lexers
// fall back to plain text; unknown styles fall back to chroma's default.
func Render(code, lexerName, styleName string) (Result, error) {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	style := styles.Get(styleName)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return Result{}, fmt.Errorf("highlight: tokenise %s: %w", lexerName, err)
	}
	tokenLines := fitLines(chroma.SplitTokensIntoLines(it.Tokens()), strings.Count(code, "\n")+1)

	bg := style.Get(chroma.Background)
	base := lipgloss.NewStyle()
	if bg.Colour.IsSet() {
		base = base.Foreground(lipgloss.Color(bg.Colour.String()))
	}
	if bg.Background.IsSet() {
		base = base.Background(lipgloss.Color(bg.Background.String()))
	}

	var sb strings.Builder
	sb.WriteString(`<pre class="chroma"`)
	if css := entryCSS(bg, true); css != "" {
		sb.WriteString(` style="` + css + `"`)
	}
	sb.WriteString(`><code>`)

	lines := make([]Line, 0, len(tokenLines))
	for i, toks := range tokenLines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(`<span class="line">`)
		var line Line
		for _, tok := range toks {
			if tok.Value == "" {
				continue
			}
			entry := style.Get(tok.Type)
			if css := entryCSS(entry, false); css != "" {
				sb.WriteString(`<span style="` + css + `">` + html.EscapeString(tok.Value) + `</span>`)
			} else {
				sb.WriteString(html.EscapeString(tok.Value))
			}
			line = append(line, Span{Text: tok.Value, Style: entryStyle(entry).Inherit(base)})
		}
		sb.WriteString(`</span>`)
		lines = append(lines, line)
	}
	sb.WriteString(`</code></pre>`)

	return Result{Markup: sb.String(), Lines: lines, Base: base}, nil
}

// fitLines strips newlines from token values and makes the line count match
// the source: chroma drops a trailing empty line and some lexers append one.
func fitLines(in [][]chroma.Token, want int) [][]chroma.Token {
	out := make([][]chroma.Token, 0, want)
	for _, toks := range in {
		line := make([]chroma.Token, 0, len(toks))
		for _, tok := range toks {
			tok.Value = strings.TrimRight(tok.Value, "\r\n")
			line = append(line, tok)
		}
		out = append(out, line)
	}
	for len(out) > want && isBlank(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	for len(out) < want {
		out = append(out, nil)
	}
	return out
}

func isBlank(toks []chroma.Token) bool {
	for _, t := range toks {
		if t.Value != "" {
			return false
		}
	}
	return true
}

func entryCSS(e chroma.StyleEntry, withBackground bool) string {
	var decls []string
	if withBackground && e.Background.IsSet() {
		decls = append(decls, "background-color:"+e.Background.String())
	}
	if e.Colour.IsSet() {
		decls = append(decls, "color:"+e.Colour.String())
	}
	if e.Bold == chroma.Yes {
		decls = append(decls, "font-weight:bold")
	}
	if e.Italic == chroma.Yes {
		decls = append(decls, "font-style:italic")
	}
	if e.Underline == chroma.Yes {
		decls = append(decls, "text-decoration:underline")
	}
	return strings.Join(decls, ";")
}

func entryStyle(e chroma.StyleEntry) lipgloss.Style {
	s := lipgloss.NewStyle()
	if e.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(e.Colour.String()))
	}
	return s.
		Bold(e.Bold == chroma.Yes).
		Italic(e.Italic == chroma.Yes).
		Underline(e.Underline == chroma.Yes)
}
