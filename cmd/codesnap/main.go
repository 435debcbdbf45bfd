package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/iw2rmb/codesnap"
	"github.com/iw2rmb/codesnap/app"
	"github.com/iw2rmb/codesnap/catalog"
)

// The system backend has a rich (HTML) writer only on macOS.
const clipboardUsage = "clipboard backend: system or memory. " +
	"Rich HTML copy needs macOS; elsewhere copy writes plain text and reports a failure"

type invocation struct {
	cfg     app.Config
	logFile string
	stdin   bool
	version bool
	list    bool
}

func parseArgs(args []string, stdin io.Reader) (invocation, error) {
	fs := pflag.NewFlagSet(codesnap.Name, pflag.ContinueOnError)
	fs.SortFlags = false

	envFile := fs.String("env-file", ".env", "read CODESNAP_* settings from this file when it exists")
	language := fs.StringP("language", "l", "", "snippet language (see --list)")
	theme := fs.StringP("theme", "t", "", "highlight theme (see --list)")
	fontSize := fs.Int("font-size", 0, "font size in px for copied HTML")
	lineHeight := fs.Float64("line-height", 0, "line height for copied HTML")
	lineNumbers := fs.BoolP("line-numbers", "n", false, "number lines in copied HTML and in the editor")
	tabWidth := fs.Int("tab-width", 0, "tab stop width in cells")
	platform := fs.String("platform", "", "shortcut modifier: auto, apple (alt) or other (ctrl)")
	board := fs.String("clipboard", "", clipboardUsage)
	file := fs.StringP("file", "f", "", "load initial code from a file, - for stdin")
	logFile := fs.String("log", "", "append logs to this file")
	version := fs.BoolP("version", "v", false, "print version and exit")
	list := fs.Bool("list", false, "list languages and themes and exit")

	if err := fs.Parse(args); err != nil {
		return invocation{}, err
	}
	inv := invocation{logFile: *logFile, version: *version, list: *list}
	if inv.version || inv.list {
		return inv, nil
	}

	cfg, err := app.LoadConfig(*envFile)
	if err != nil {
		return invocation{}, err
	}
	if fs.Changed("language") {
		cfg.Language = *language
	}
	if fs.Changed("theme") {
		cfg.Theme = *theme
	}
	if fs.Changed("font-size") {
		cfg.FontSize = *fontSize
	}
	if fs.Changed("line-height") {
		cfg.LineHeight = *lineHeight
	}
	if fs.Changed("line-numbers") {
		cfg.LineNumbers = *lineNumbers
	}
	if fs.Changed("tab-width") {
		cfg.TabWidth = *tabWidth
	}
	if fs.Changed("platform") {
		cfg.Platform = *platform
	}
	if fs.Changed("clipboard") {
		cfg.Clipboard = *board
	}

	path := *file
	if path == "" && fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	switch path {
	case "":
	case "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return invocation{}, fmt.Errorf("read stdin: %w", err)
		}
		cfg.Code = string(b)
		inv.stdin = true
	default:
		b, err := os.ReadFile(path)
		if err != nil {
			return invocation{}, err
		}
		cfg.Code = string(b)
	}

	if inv.cfg, err = cfg.Normalize(); err != nil {
		return invocation{}, err
	}
	return inv, nil
}

func printCatalog(w io.Writer) {
	fmt.Fprintln(w, "Languages:")
	for _, l := range catalog.Languages() {
		fmt.Fprintf(w, "  %-12s %s\n", l.Value, l.Label)
	}
	fmt.Fprintln(w, "Themes:")
	for _, t := range catalog.Themes() {
		fmt.Fprintf(w, "  %-16s %s\n", t.Value, t.Label)
	}
}

func run(args []string) error {
	inv, err := parseArgs(args, os.Stdin)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if inv.version {
		fmt.Println(codesnap.VersionLine())
		return nil
	}
	if inv.list {
		printCatalog(os.Stdout)
		return nil
	}

	if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("stdout is not a terminal")
	}

	// Anything written to the terminal would corrupt the UI.
	if inv.logFile != "" {
		f, err := tea.LogToFile(inv.logFile, codesnap.Name)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if inv.stdin {
		opts = append(opts, tea.WithInputTTY())
	}
	return app.Run(ctx, inv.cfg, app.Options{}, opts...)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(codesnap.Name + ": " + err.Error() + "\n")
		os.Exit(1)
	}
}
