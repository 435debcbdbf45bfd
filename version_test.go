package codesnap

import (
	"os"
	"strings"
	"testing"
)

func TestVersion_MatchesVersionFile(t *testing.T) {
	raw, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("read VERSION: %v", err)
	}
	if got, want := Version(), strings.TrimSpace(string(raw)); got != want {
		t.Fatalf("embedded version: got %q, want %q", got, want)
	}
	if !strings.HasPrefix(VersionLine(), Name+" v") {
		t.Fatalf("version line must start with the program name: got %q", VersionLine())
	}
}

func TestVersion_IsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestVersionLine_UsesTag(t *testing.T) {
	if got, want := VersionLine(), "codesnap v"+Version(); got != want {
		t.Fatalf("version line: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "1.2.3-rc.1", want: true},
		{version: "2.0.0+build.7", want: true},
		{version: "v1.2.3", want: false},
		{version: "1.2", want: false},
		{version: "01.2.3", want: false},
	}

	for _, tc := range cases {
		if got := IsSemver(tc.version); got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}
