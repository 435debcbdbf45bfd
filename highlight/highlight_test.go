package highlight

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lineTexts(ls []Line) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Text())
	}
	return out
}

func TestRender_LinesMatchSource(t *testing.T) {
	cases := []struct {
		name  string
		code  string
		lexer string
	}{
		{name: "go", code: "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}", lexer: "go"},
		{name: "trailing newline", code: "x = 1\n", lexer: "python"},
		{name: "empty", code: "", lexer: "json"},
		{name: "unknown lexer", code: "a\nb\nc", lexer: "no-such-lexer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Render(tc.code, tc.lexer, "github")
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			want := strings.Split(tc.code, "\n")
			if diff := cmp.Diff(want, lineTexts(res.Lines)); diff != "" {
				t.Fatalf("lines mismatch (-want +got):\n%s", diff)
			}
			if got := strings.Count(res.Markup, `<span class="line">`); got != len(want) {
				t.Fatalf("line spans: got %d, want %d", got, len(want))
			}
		})
	}
}

func TestRender_MarkupShape(t *testing.T) {
	res, err := Render("if a < b {\n}", "go", "github")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(res.Markup, `<pre class="chroma"`) {
		t.Fatalf("markup must start with root pre: %q", res.Markup)
	}
	if !strings.HasSuffix(res.Markup, `</code></pre>`) {
		t.Fatalf("markup must end with code/pre: %q", res.Markup)
	}
	if got := strings.Count(res.Markup, "<code>"); got != 1 {
		t.Fatalf("code blocks: got %d, want 1", got)
	}
	if !strings.Contains(res.Markup, "&lt;") {
		t.Fatalf("markup must escape '<': %q", res.Markup)
	}
	if strings.Count(res.Markup, "\n") != 1 {
		t.Fatalf("markup must keep one newline per line break: %q", res.Markup)
	}
}

func TestRender_NewlinesSitBetweenLineSpans(t *testing.T) {
	res, err := Render("a := 1\nb := 2\n\nc := 3", "go", "github")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	body := strings.TrimSuffix(res.Markup[strings.Index(res.Markup, "<code>")+len("<code>"):], "</code></pre>")
	for i, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, `<span class="line">`) || !strings.HasSuffix(line, `</span>`) {
			t.Fatalf("line %d is not a whole line span: %q", i, line)
		}
	}
}

func TestRender_UnknownStyleFallsBack(t *testing.T) {
	if _, err := Render("x", "go", "no-such-style"); err != nil {
		t.Fatalf("render with unknown style: %v", err)
	}
}
