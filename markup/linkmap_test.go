package markup

import (
	"testing"

	"github.com/rjkroege/richlabel/rich"
)

func TestLinkMapEmpty(t *testing.T) {
	lm := NewLinkMap()
	for _, pos := range []int{0, 1, 10, -1} {
		if url := lm.URLAt(pos); url != "" {
			t.Errorf("URLAt(%d) on empty LinkMap = %q, want empty string", pos, url)
		}
	}
}

func TestLinkMapLookup(t *testing.T) {
	lm := NewLinkMap()
	lm.Add(rich.Range{Start: 5, End: 10}, "https://example.com")
	lm.Add(rich.Range{Start: 6, End: 8}, "https://inner.example.com")

	tests := []struct {
		name    string
		pos     int
		wantURL string
	}{
		{"before link", 4, ""},
		{"at link start", 5, "https://example.com"},
		{"nested link", 7, "https://inner.example.com"},
		{"after nested link", 8, "https://example.com"},
		{"at link end (exclusive)", 10, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lm.URLAt(tt.pos); got != tt.wantURL {
				t.Errorf("URLAt(%d) = %q, want %q", tt.pos, got, tt.wantURL)
			}
		})
	}
}
