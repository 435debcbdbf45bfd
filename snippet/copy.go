package snippet

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codesnap/clipboard"
	"github.com/iw2rmb/codesnap/markup"
	"github.com/iw2rmb/codesnap/notify"
)

const (
	MsgCopied     = "Code copied to clipboard!"
	MsgCopyFailed = "Failed to copy code to clipboard."
)

// CopyOptions controls how the copied HTML is presented.
type CopyOptions struct {
	FontSize    int
	LineHeight  float64
	LineNumbers bool
}

// Copier copies snippets to the clipboard as HTML plus plain text.
type Copier struct {
	Clipboard clipboard.Writer
	// Logger records fallback failures. Nil means log.Default().
	Logger *log.Logger
}

// Copy returns a command that performs the copy off the UI loop and reports
// the outcome as a notify.Msg.
//
// Any failure of the rich write triggers exactly one plain-text fallback and
// a single failure notification. A failed fallback is only logged.
func (c Copier) Copy(s Snippet, opt CopyOptions) tea.Cmd {
	return func() tea.Msg {
		return c.CopyNow(s, opt)
	}
}

// CopyNow is the synchronous form of Copy.
func (c Copier) CopyNow(s Snippet, opt CopyOptions) notify.Msg {
	err := c.writeRich(s, opt)
	if err == nil {
		return notify.Success(MsgCopied)
	}

	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("copy: rich write failed, falling back to plain text: %v", err)
	if ferr := c.Clipboard.WriteText(s.Code); ferr != nil {
		logger.Printf("copy: fallback copy failed: %v", ferr)
	}
	return notify.Failure(MsgCopyFailed)
}

func (c Copier) writeRich(s Snippet, opt CopyOptions) error {
	html, err := markup.Format(s.Markup, s.Code, markup.Options{
		FontSize:    opt.FontSize,
		LineHeight:  opt.LineHeight,
		LineNumbers: opt.LineNumbers,
	})
	if err != nil {
		return err
	}
	return c.Clipboard.WriteItem(clipboard.Item{HTML: html, Text: s.Code})
}
