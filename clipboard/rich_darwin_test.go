package clipboard

import (
	"strings"
	"testing"
)

func TestRichScript_HexEncodesBothRepresentations(t *testing.T) {
	got := richScript(Item{HTML: "<b>", Text: `a"b`})
	if !strings.Contains(got, "«data HTML3C623E»") {
		t.Fatalf("html literal missing: %q", got)
	}
	if !strings.Contains(got, "«data utf8612262»") {
		t.Fatalf("text literal missing: %q", got)
	}
}
