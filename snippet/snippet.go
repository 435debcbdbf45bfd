// Package snippet ties a piece of code to its language, theme and rendered
// markup, and implements copying it to the clipboard.
package snippet

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codesnap/catalog"
	"github.com/iw2rmb/codesnap/highlight"
)

// Snippet is the user's current code plus what was rendered from it. Code and
// Markup must describe the same text; Render guarantees that.
type Snippet struct {
	Code     string
	Language string
	Theme    string
	Markup   string

	// Lines are the styled lines for terminal display.
	Lines []highlight.Line
	// Base is the theme's foreground and background.
	Base lipgloss.Style
}

// Render highlights code with the catalog entries named by language and
// theme. Unknown identifiers render as plain text in the default style.
func Render(code, language, theme string) (Snippet, error) {
	lexer := language
	if l, ok := catalog.LookupLanguage(language); ok {
		lexer = l.Lexer
	}
	style := theme
	if th, ok := catalog.LookupTheme(theme); ok {
		style = th.Style
	}

	res, err := highlight.Render(code, lexer, style)
	if err != nil {
		return Snippet{}, fmt.Errorf("snippet: render %s/%s: %w", language, theme, err)
	}
	return Snippet{
		Code:     code,
		Language: language,
		Theme:    theme,
		Markup:   res.Markup,
		Lines:    res.Lines,
		Base:     res.Base,
	}, nil
}
