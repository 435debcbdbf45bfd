package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run builds the UI and runs it until the user quits or ctx is done. The
// shortcut router stays attached for exactly the life of the program.
func Run(ctx context.Context, cfg Config, opt Options, progOpts ...tea.ProgramOption) error {
	m, err := New(cfg, opt)
	if err != nil {
		return err
	}
	m.Mount()
	defer m.Unmount()

	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithContext(ctx)}, progOpts...)...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
