package grapheme

import "testing"

func TestSplit_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + "\U0001F468\u200d\U0001F469\u200d\U0001F467" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
}

func TestLayout_TabsExpandToStops(t *testing.T) {
	cs := Layout("a\tb", 4)
	if len(cs) != 3 {
		t.Fatalf("clusters=%d, want %d", len(cs), 3)
	}
	if cs[1].Cell != 1 || cs[1].Width != 3 {
		t.Fatalf("tab cluster: got cell=%d width=%d, want cell=1 width=3", cs[1].Cell, cs[1].Width)
	}
	if cs[2].Cell != 4 || cs[2].Rune != 2 {
		t.Fatalf("b cluster: got cell=%d rune=%d, want cell=4 rune=2", cs[2].Cell, cs[2].Rune)
	}
}

func TestLayoutFrom_UsesAbsoluteTabStops(t *testing.T) {
	cs := LayoutFrom("\t", 6, 4)
	if len(cs) != 1 || cs[0].Width != 2 {
		t.Fatalf("tab from cell 6: got %+v, want width 2", cs)
	}
}

func TestLayout_WideAndCombining(t *testing.T) {
	cs := Layout("世e\u0301x", 4)
	if len(cs) != 3 {
		t.Fatalf("clusters=%d, want %d", len(cs), 3)
	}
	if cs[0].Width != 2 {
		t.Fatalf("wide rune width=%d, want 2", cs[0].Width)
	}
	if cs[1].Runes != 2 || cs[1].Width != 1 {
		t.Fatalf("combining cluster: got runes=%d width=%d, want 2/1", cs[1].Runes, cs[1].Width)
	}
	if cs[2].Rune != 3 || cs[2].Cell != 3 {
		t.Fatalf("x cluster: got rune=%d cell=%d, want 3/3", cs[2].Rune, cs[2].Cell)
	}
}

func TestCellAt(t *testing.T) {
	line := "世ab"
	cases := []struct {
		col  int
		want int
	}{
		{col: 0, want: 0},
		{col: 1, want: 2},
		{col: 2, want: 3},
		{col: 3, want: 4},
		{col: 99, want: 4},
	}
	for _, tc := range cases {
		if got := CellAt(line, tc.col, 4); got != tc.want {
			t.Fatalf("CellAt(%d): got %d, want %d", tc.col, got, tc.want)
		}
	}
	if got := LineWidth(line, 4); got != 4 {
		t.Fatalf("LineWidth: got %d, want %d", got, 4)
	}
}
