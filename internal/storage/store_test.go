package storage

import (
	"strings"
	"testing"
)

// TestSanitizeObjectName checks path elements and control characters
// are stripped from original names.
func TestSanitizeObjectName(t *testing.T) {
	cases := map[string]string{
		"clip.mp4":             "clip.mp4",
		"  spaced.mp4  ":       "spaced.mp4",
		"../../etc/passwd":     "passwd",
		"dir\\evil.mp4":        "evil.mp4",
		"line\r\nbreak.mp4":    "linebreak.mp4",
		"":                     "upload",
		"..":                   "upload",
		"/":                    "upload",
	}
	for in, want := range cases {
		if got := SanitizeObjectName(in); got != want {
			t.Errorf("SanitizeObjectName(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestNewLocatorShape checks the random-prefix_name layout.
func TestNewLocatorShape(t *testing.T) {
	locator := NewLocator("movie.mp4")
	idx := strings.Index(locator, "_")
	if idx != 32 {
		t.Fatalf("expect 32 hex chars before underscore, got %q", locator)
	}
	for _, r := range locator[:idx] {
		if !strings.ContainsRune("0123456789abcdef", r) {
			t.Fatalf("locator prefix is not hex: %q", locator)
		}
	}
	if locator[idx+1:] != "movie.mp4" {
		t.Fatalf("locator should end with original name, got %q", locator)
	}
}
