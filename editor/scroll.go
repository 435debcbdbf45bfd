package editor

// Scroller is an element with vertical and horizontal scroll offsets, in rows
// and cells.
type Scroller interface {
	ScrollTop() int
	ScrollLeft() int
	SetScrollTop(n int)
	SetScrollLeft(n int)
}

// SyncScroll returns a callback that copies source's scroll offsets onto
// target. Either accessor may report the element as absent (for example
// before the UI is mounted); the callback is then a no-op.
//
// Call it after every scroll of the source. The copy is direct: no easing or
// rate limiting.
func SyncScroll(source, target func() (Scroller, bool)) func() {
	return func() {
		if source == nil || target == nil {
			return
		}
		src, ok := source()
		if !ok || src == nil {
			return
		}
		dst, ok := target()
		if !ok || dst == nil {
			return
		}
		dst.SetScrollTop(src.ScrollTop())
		dst.SetScrollLeft(src.ScrollLeft())
	}
}
