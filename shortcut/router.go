package shortcut

import (
	"log"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codesnap/notify"
)

const (
	MsgPasted      = "Pasted from clipboard!"
	MsgPasteFailed = "Failed to paste from clipboard."
	MsgCleared     = "Code cleared!"
)

// TextArea is the part of the editor's text element the router needs.
// Offsets are in runes.
type TextArea interface {
	Selection() (start, end int)
	SetSelection(start, end int)
	Focus()
}

// Reader reads plain text from the clipboard.
type Reader interface {
	ReadText() (string, error)
}

// Options wires the router to the editor. Every callback is optional.
type Options struct {
	KeyMap    KeyMap
	Clipboard Reader

	// Textarea returns the editor's text element, or false when it is not
	// mounted.
	Textarea func() (TextArea, bool)
	// Code returns the current snippet text.
	Code func() string
	// OnCodeChange receives the full text after a paste.
	OnCodeChange func(code string)
	// OnCopy starts the snippet copy flow.
	OnCopy func() tea.Cmd
	// OnClear empties the snippet.
	OnClear func()

	// Logger records clipboard read failures. Nil means log.Default().
	Logger *log.Logger
}

// Router turns modifier shortcuts into editor actions. Attach it to a Hub
// and forward every message to Update so that paste results come back to it.
type Router struct {
	opt Options
}

func NewRouter(opt Options) *Router {
	if len(opt.KeyMap.Copy.Keys()) == 0 {
		opt.KeyMap = DefaultKeyMap(CurrentPlatform())
	}
	if opt.Logger == nil {
		opt.Logger = log.Default()
	}
	return &Router{opt: opt}
}

func (r *Router) KeyMap() KeyMap { return r.opt.KeyMap }

// Attach registers the router's key listener on h and returns the detach
// func. Detaching twice is harmless.
func (r *Router) Attach(h *Hub) (detach func()) {
	return h.Add(r.handle)
}

// pasteMsg carries a clipboard read back to the loop together with the state
// captured when the key was pressed.
type pasteMsg struct {
	text string
	err  error

	code       string
	start, end int
	textarea   TextArea
}

// repositionMsg moves the caret after a paste has been applied.
type repositionMsg struct {
	textarea TextArea
	offset   int
}

func (r *Router) handle(ev *Event) tea.Cmd {
	if ev.Target == TargetInput || ev.Target == TargetSelect {
		return nil
	}

	km := r.opt.KeyMap
	switch {
	case key.Matches(ev.Key, km.Copy):
		if ta, ok := r.textarea(); ok {
			if start, end := ta.Selection(); start != end {
				return nil
			}
		}
		ev.PreventDefault()
		if r.opt.OnCopy == nil {
			return nil
		}
		return r.opt.OnCopy()

	case key.Matches(ev.Key, km.Paste):
		ev.PreventDefault()
		return r.paste()

	case key.Matches(ev.Key, km.Clear):
		ev.PreventDefault()
		if r.opt.OnClear != nil {
			r.opt.OnClear()
		}
		return notify.SuccessCmd(MsgCleared)
	}
	return nil
}

// paste captures the code and selection now and reads the clipboard off the
// loop.
func (r *Router) paste() tea.Cmd {
	msg := pasteMsg{}
	if r.opt.Code != nil {
		msg.code = r.opt.Code()
	}
	if ta, ok := r.textarea(); ok {
		msg.textarea = ta
		msg.start, msg.end = ta.Selection()
	} else {
		n := utf8.RuneCountInString(msg.code)
		msg.start, msg.end = n, n
	}

	cb := r.opt.Clipboard
	return func() tea.Msg {
		if cb == nil {
			msg.err = errNoClipboard
			return msg
		}
		msg.text, msg.err = cb.ReadText()
		return msg
	}
}

// Update applies paste results and deferred caret moves. Other messages are
// ignored.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pasteMsg:
		return r.applyPaste(msg)
	case repositionMsg:
		msg.textarea.SetSelection(msg.offset, msg.offset)
		msg.textarea.Focus()
	}
	return nil
}

func (r *Router) applyPaste(msg pasteMsg) tea.Cmd {
	if msg.err != nil {
		r.opt.Logger.Printf("Failed to read clipboard: %v", msg.err)
		return notify.FailureCmd(MsgPasteFailed)
	}
	if msg.textarea == nil {
		return notify.SuccessCmd(MsgPasted)
	}

	code, offset := splice(msg.code, msg.start, msg.end, msg.text)
	if r.opt.OnCodeChange != nil {
		r.opt.OnCodeChange(code)
	}

	// The caret moves on a later turn of the loop, after the new code has
	// reached the textarea.
	ta := msg.textarea
	reposition := func() tea.Msg {
		return repositionMsg{textarea: ta, offset: offset}
	}
	return tea.Batch(reposition, notify.SuccessCmd(MsgPasted))
}

// splice replaces the rune range [start, end) of code with text and returns
// the result with the caret offset right after text. Out-of-range offsets are
// clamped. The text is inserted verbatim; the caret offset counts a CRLF pair
// as one character because the textarea stores it as a single line feed.
func splice(code string, start, end int, text string) (string, int) {
	rs := []rune(code)
	start = min(max(start, 0), len(rs))
	end = min(max(end, start), len(rs))
	out := string(rs[:start]) + text + string(rs[end:])
	return out, start + utf8.RuneCountInString(text) - strings.Count(text, "\r\n")
}

func (r *Router) textarea() (TextArea, bool) {
	if r.opt.Textarea == nil {
		return nil, false
	}
	ta, ok := r.opt.Textarea()
	if !ok || ta == nil {
		return nil, false
	}
	return ta, true
}
