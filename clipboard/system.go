package clipboard

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
)

// DefaultTimeout bounds a single call into the platform clipboard tool.
const DefaultTimeout = 3 * time.Second

// System talks to the operating system clipboard. Plain text goes through
// github.com/atotto/clipboard; rich entries use the platform tool when one
// can hold several representations at once.
type System struct {
	// Timeout bounds rich writes. Zero means DefaultTimeout.
	Timeout time.Duration
}

func NewSystem() *System { return &System{} }

// Available reports whether plain-text access works on this platform.
func (s *System) Available() bool { return !clipboard.Unsupported }

func (s *System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard: read: %w", err)
	}
	return text, nil
}

func (s *System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: write: %w", err)
	}
	return nil
}

func (s *System) WriteItem(it Item) error {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := writeRich(ctx, it); err != nil {
		return fmt.Errorf("clipboard: write rich: %w", err)
	}
	return nil
}

var (
	_ Clipboard  = (*System)(nil)
	_ Writer     = (*System)(nil)
	_ ReadWriter = (*System)(nil)
)
