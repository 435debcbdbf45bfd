// Package editor provides the snippet editor's terminal components.
//
// TextArea is the interactive element: it owns the document, caret and
// selection. Overlay is the non-interactive highlighted display drawn in its
// place. SyncScroll keeps the overlay's scroll offsets equal to the
// textarea's so that highlighted glyphs stay aligned with the caret.
package editor
