// Package clipboard is the boundary to the system clipboard.
//
// Plain text is read and written through Clipboard. Multi-representation
// entries (HTML together with plain text) go through RichWriter; backends
// that cannot store them return ErrUnsupported so callers can fall back to
// plain text.
package clipboard

import "errors"

// ErrUnsupported reports that the backend cannot store the requested
// representation on this platform.
var ErrUnsupported = errors.New("clipboard: representation not supported")

// Item is one clipboard entry carrying several representations of the same
// content.
type Item struct {
	HTML string
	Text string
}

// Clipboard provides plain-text clipboard access.
//
// Errors must not crash the UI; callers report them to the user.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// RichWriter writes an Item as a single clipboard entry.
type RichWriter interface {
	WriteItem(it Item) error
}

// Writer is what the copy flow needs: a rich write with a plain-text
// fallback.
type Writer interface {
	RichWriter
	WriteText(s string) error
}

// ReadWriter is a complete backend: plain-text access plus rich writes.
type ReadWriter interface {
	Clipboard
	RichWriter
}
