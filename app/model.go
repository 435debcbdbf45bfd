// Package app is the snippet editor UI: a code pane with a highlighted
// overlay, language and theme pickers, copy settings and toasts, wired to
// the shortcut router.
package app

import (
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codesnap"
	"github.com/iw2rmb/codesnap/catalog"
	"github.com/iw2rmb/codesnap/clipboard"
	"github.com/iw2rmb/codesnap/editor"
	"github.com/iw2rmb/codesnap/highlight"
	"github.com/iw2rmb/codesnap/notify"
	"github.com/iw2rmb/codesnap/shortcut"
	"github.com/iw2rmb/codesnap/snippet"
)

const (
	headerHeight = 1
	placeholder  = "Type or paste code here"
)

type focus int

const (
	focusEditor focus = iota
	focusLanguage
	focusTheme
	focusFontSize
	focusLineHeight
	focusCount
)

// Options supplies collaborators. Zero values pick defaults.
type Options struct {
	// Clipboard overrides the backend selected by Config.Clipboard.
	Clipboard clipboard.ReadWriter
	// Logger defaults to log.Default().
	Logger *log.Logger
}

// Model is the editor UI. It is a pointer model: the router's callbacks
// read and write its live state.
type Model struct {
	cfg    Config
	keys   KeyMap
	styles Styles
	logger *log.Logger

	hub    *shortcut.Hub
	router *shortcut.Router
	detach func()

	copier   snippet.Copier
	snip     snippet.Snippet
	rendered bool

	textarea   *editor.TextArea
	overlay    *editor.Overlay
	syncScroll func()

	language   picker
	theme      picker
	fontSize   textinput.Model
	lineHeight textinput.Model
	toasts     notify.Model
	help       help.Model

	focus         focus
	width, height int
}

func New(cfg Config, opt Options) (*Model, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	platform, err := shortcut.ParsePlatform(cfg.Platform)
	if err != nil {
		return nil, err
	}

	logger := opt.Logger
	if logger == nil {
		logger = log.Default()
	}
	board := opt.Clipboard
	if board == nil {
		board = newBoard(cfg.Clipboard, logger)
	}

	m := &Model{
		cfg:    cfg,
		styles: DefaultStyles(),
		logger: logger,
		hub:    shortcut.NewHub(),
		copier: snippet.Copier{Clipboard: board, Logger: logger},
		toasts: notify.New(notify.Config{TTL: cfg.ToastTTL, Style: notify.DefaultStyle()}),
		help:   help.New(),
	}

	edStyle := editor.DefaultStyle()
	m.textarea = editor.NewTextArea(editor.Config{
		Text:        cfg.Code,
		Placeholder: placeholder,
		KeyMap:      editor.DefaultKeyMap(platform.Modifier()),
		Style:       edStyle,
		TabWidth:    cfg.TabWidth,
		Clipboard:   board,
	})
	m.overlay = editor.NewOverlay(editor.OverlayConfig{
		Style:       edStyle,
		TabWidth:    cfg.TabWidth,
		LineNumbers: cfg.LineNumbers,
	})
	m.syncScroll = editor.SyncScroll(m.textareaScroller, m.overlayScroller)

	m.router = shortcut.NewRouter(shortcut.Options{
		KeyMap:       shortcut.DefaultKeyMap(platform),
		Clipboard:    board,
		Textarea:     m.shortcutTextarea,
		Code:         m.Code,
		OnCodeChange: m.setCode,
		OnCopy:       m.copy,
		OnClear:      func() { m.setCode("") },
		Logger:       logger,
	})
	m.keys = DefaultKeyMap(m.router.KeyMap())

	m.language = newPicker("Language", languageOptions(), cfg.Language)
	m.theme = newPicker("Theme", themeOptions(), cfg.Theme)
	m.fontSize = newNumberInput(strconv.Itoa(cfg.FontSize), 3)
	m.lineHeight = newNumberInput(strconv.FormatFloat(cfg.LineHeight, 'f', -1, 64), 4)

	m.setFocus(focusEditor)
	m.sync()
	return m, nil
}

func newBoard(backend string, logger *log.Logger) clipboard.ReadWriter {
	if backend == ClipboardSystem {
		sys := clipboard.NewSystem()
		if sys.Available() {
			return sys
		}
		logger.Printf("system clipboard unavailable, using in-memory clipboard")
	}
	return clipboard.NewMemory()
}

func languageOptions() []option {
	var out []option
	for _, l := range catalog.Languages() {
		out = append(out, option{value: l.Value, label: l.Label})
	}
	return out
}

func themeOptions() []option {
	var out []option
	for _, t := range catalog.Themes() {
		out = append(out, option{value: t.Value, label: t.Label})
	}
	return out
}

func newNumberInput(value string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = limit
	ti.Width = limit + 1
	ti.SetValue(value)
	return ti
}

// Mount attaches the shortcut router to the key hub. It is a no-op while
// mounted.
func (m *Model) Mount() {
	if m.detach != nil {
		return
	}
	m.detach = m.router.Attach(m.hub)
}

// Unmount detaches the router. It is safe to call more than once.
func (m *Model) Unmount() {
	if m.detach == nil {
		return
	}
	m.detach()
	m.detach = nil
}

func (m *Model) Hub() *shortcut.Hub         { return m.hub }
func (m *Model) TextArea() *editor.TextArea { return m.textarea }
func (m *Model) Overlay() *editor.Overlay   { return m.overlay }
func (m *Model) Snippet() snippet.Snippet   { return m.snip }
func (m *Model) Config() Config             { return m.cfg }
func (m *Model) Toasts() []notify.Msg       { return m.toasts.Toasts() }
func (m *Model) Code() string               { return m.textarea.Value() }

func (m *Model) copyOptions() snippet.CopyOptions {
	return snippet.CopyOptions{
		FontSize:    m.cfg.FontSize,
		LineHeight:  m.cfg.LineHeight,
		LineNumbers: m.cfg.LineNumbers,
	}
}

func (m *Model) textareaScroller() (editor.Scroller, bool) {
	if m.textarea == nil {
		return nil, false
	}
	return m.textarea, true
}

func (m *Model) overlayScroller() (editor.Scroller, bool) {
	if m.overlay == nil {
		return nil, false
	}
	return m.overlay, true
}

func (m *Model) shortcutTextarea() (shortcut.TextArea, bool) {
	if m.textarea == nil {
		return nil, false
	}
	return m.textarea, true
}

func (m *Model) setCode(code string) {
	m.textarea.SetValue(code)
	m.render()
}

func (m *Model) copy() tea.Cmd {
	m.render()
	return m.copier.Copy(m.snip, m.copyOptions())
}

// render re-highlights the snippet when its code, language or theme changed.
func (m *Model) render() {
	code := m.textarea.Value()
	lang, theme := m.language.value(), m.theme.value()
	if m.rendered && m.snip.Code == code && m.snip.Language == lang && m.snip.Theme == theme {
		return
	}

	s, err := snippet.Render(code, lang, theme)
	if err != nil {
		// Without markup the copy flow falls back to plain text.
		m.logger.Printf("render snippet: %v", err)
		s = snippet.Snippet{Code: code, Language: lang, Theme: theme, Lines: plainLines(code)}
	}
	m.snip = s
	m.rendered = true
	m.cfg.Language, m.cfg.Theme = lang, theme
	m.overlay.SetLines(s.Lines, s.Base)
}

func plainLines(code string) []highlight.Line {
	parts := strings.Split(code, "\n")
	out := make([]highlight.Line, len(parts))
	for i, p := range parts {
		if p != "" {
			out[i] = highlight.Line{{Text: p}}
		}
	}
	return out
}

func (m *Model) target() shortcut.Target {
	switch m.focus {
	case focusLanguage, focusTheme:
		return shortcut.TargetSelect
	case focusFontSize, focusLineHeight:
		return shortcut.TargetInput
	default:
		return shortcut.TargetEditor
	}
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusEditor {
		m.textarea.Focus()
	} else {
		m.textarea.Blur()
	}
	m.language.focused = f == focusLanguage
	m.theme.focused = f == focusTheme
	if f == focusFontSize {
		m.fontSize.Focus()
	} else {
		m.fontSize.Blur()
	}
	if f == focusLineHeight {
		m.lineHeight.Focus()
	} else {
		m.lineHeight.Blur()
	}
}

func (m *Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		ev := &shortcut.Event{Key: msg, Target: m.target()}
		cmds = append(cmds, m.hub.Dispatch(ev))
		if !ev.DefaultPrevented() {
			cmds = append(cmds, m.handleKey(msg))
		}
	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))
	case editor.ClipboardErrorMsg:
		m.logger.Printf("copy selection: %v", msg.Err)
	default:
		var cmd tea.Cmd
		m.fontSize, cmd = m.fontSize.Update(msg)
		cmds = append(cmds, cmd)
		m.lineHeight, cmd = m.lineHeight.Update(msg)
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.router.Update(msg))
	var cmd tea.Cmd
	m.toasts, cmd = m.toasts.Update(msg)
	cmds = append(cmds, cmd)

	m.sync()
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.NextFocus):
		m.setFocus((m.focus + 1) % focusCount)
		return nil
	case key.Matches(msg, m.keys.PrevFocus):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return nil
	case key.Matches(msg, m.keys.LineNumbers):
		m.cfg.LineNumbers = !m.cfg.LineNumbers
		m.overlay.SetLineNumbers(m.cfg.LineNumbers)
		m.layout()
		return nil
	}

	if m.focus == focusEditor {
		return m.textarea.Update(msg)
	}

	// Tab only moves focus outside the code pane, where it indents.
	switch msg.Type {
	case tea.KeyTab:
		m.setFocus((m.focus + 1) % focusCount)
		return nil
	case tea.KeyShiftTab:
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusLanguage:
		if m.language.update(msg) {
			m.render()
		}
	case focusTheme:
		if m.theme.update(msg) {
			m.render()
		}
	case focusFontSize:
		m.fontSize, cmd = m.fontSize.Update(msg)
		if n, err := strconv.Atoi(strings.TrimSpace(m.fontSize.Value())); err == nil && n > 0 {
			m.cfg.FontSize = n
		}
	case focusLineHeight:
		m.lineHeight, cmd = m.lineHeight.Update(msg)
		if f, err := strconv.ParseFloat(strings.TrimSpace(m.lineHeight.Value()), 64); err == nil && f > 0 {
			m.cfg.LineHeight = f
		}
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Y < headerHeight || msg.Y >= headerHeight+m.overlay.Height() {
		return nil
	}
	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
		m.setFocus(focusEditor)
	}
	local := msg
	local.X = max(msg.X-m.overlay.GutterWidth(), 0)
	local.Y = msg.Y - headerHeight
	return m.textarea.Update(local)
}

func (m *Model) footerHeight() int {
	// Toasts plus the help line.
	return notify.DefaultMaxVisible + 1
}

func (m *Model) layout() {
	h := max(m.height-headerHeight-m.footerHeight(), 1)
	m.overlay.SetSize(m.width, h)
	m.textarea.SetSize(m.overlay.ContentWidth(), h)
}

// sync brings the overlay up to date with the textarea: content, caret and
// selection, then scroll offsets.
func (m *Model) sync() {
	m.render()
	if m.width > 0 && m.textarea.Width() != m.overlay.ContentWidth() {
		// The gutter widens as the line count grows.
		m.layout()
	}
	m.overlay.SetDecorations(m.textarea.Decorations())
	m.syncScroll()
}

func (m *Model) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Title.Render(codesnap.VersionLine()),
		m.language.view(m.styles),
		m.theme.view(m.styles),
		m.fieldView("Font px", m.fontSize, focusFontSize),
		m.fieldView("Line height", m.lineHeight, focusLineHeight),
		m.lineNumbersView(),
	)
	if m.width > 0 {
		header = lipgloss.NewStyle().MaxWidth(m.width).Render(header)
	}

	toasts := lipgloss.NewStyle().Height(notify.DefaultMaxVisible).Render(m.toasts.View())
	m.help.Width = m.width
	return lipgloss.JoinVertical(lipgloss.Left, header, m.overlay.View(), toasts, m.help.View(m.keys))
}

func (m *Model) fieldView(title string, in textinput.Model, f focus) string {
	s := m.styles.Control
	if m.focus == f {
		s = m.styles.ControlFocused
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.styles.Label.Render(title+": "), s.Render(in.View()))
}

func (m *Model) lineNumbersView() string {
	state := "off"
	if m.cfg.LineNumbers {
		state = "on"
	}
	return m.styles.Label.Render("Numbers: ") + m.styles.Control.Render(state)
}
