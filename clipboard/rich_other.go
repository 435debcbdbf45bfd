//go:build !darwin

package clipboard

import "context"

// writeRich has no single-entry HTML+text tool to call here: X11 and Wayland
// helpers serve one target per invocation.
func writeRich(context.Context, Item) error {
	return ErrUnsupported
}
