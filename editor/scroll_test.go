package editor

import "testing"

type fakeScroller struct{ top, left int }

func (s *fakeScroller) ScrollTop() int      { return s.top }
func (s *fakeScroller) ScrollLeft() int     { return s.left }
func (s *fakeScroller) SetScrollTop(n int)  { s.top = n }
func (s *fakeScroller) SetScrollLeft(n int) { s.left = n }

func present(s Scroller) func() (Scroller, bool) {
	return func() (Scroller, bool) { return s, true }
}

func absent() (Scroller, bool) { return nil, false }

func TestSyncScroll_CopiesBothOffsets(t *testing.T) {
	src := &fakeScroller{top: 120, left: 8}
	dst := &fakeScroller{}

	SyncScroll(present(src), present(dst))()
	if dst.top != 120 || dst.left != 8 {
		t.Fatalf("target offsets: got (%d,%d), want (120,8)", dst.top, dst.left)
	}

	src.top, src.left = 0, 0
	SyncScroll(present(src), present(dst))()
	if dst.top != 0 || dst.left != 0 {
		t.Fatalf("target offsets after reset: got (%d,%d), want (0,0)", dst.top, dst.left)
	}
}

func TestSyncScroll_NoOpWhenAbsent(t *testing.T) {
	src := &fakeScroller{top: 5, left: 5}
	dst := &fakeScroller{top: 1, left: 2}

	SyncScroll(present(src), absent)()
	SyncScroll(absent, present(dst))()
	SyncScroll(nil, present(dst))()
	if dst.top != 1 || dst.left != 2 {
		t.Fatalf("target changed: got (%d,%d), want (1,2)", dst.top, dst.left)
	}
}

func TestSyncScroll_TextAreaToOverlay(t *testing.T) {
	ta := NewTextArea(Config{Text: "a\nb\nc\nd\ne\nf"})
	ta.SetSize(10, 2)
	ov := NewOverlay(OverlayConfig{})
	ov.SetSize(10, 2)
	ov.SetLines(linesOf(ta.Value()), ov.base)

	ta.SetScrollTop(3)
	SyncScroll(present(ta), present(ov))()
	if got := ov.ScrollTop(); got != 3 {
		t.Fatalf("overlay top: got %d, want 3", got)
	}
}
