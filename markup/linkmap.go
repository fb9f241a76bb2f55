package markup

import "github.com/rjkroege/richlabel/rich"

// LinkMap maps cluster positions in a parsed text to link targets.
type LinkMap struct {
	entries []LinkEntry
}

// LinkEntry tracks a link's range in the text and its URL.
type LinkEntry struct {
	Range rich.Range
	URL   string
}

// NewLinkMap creates an empty LinkMap.
func NewLinkMap() *LinkMap {
	return &LinkMap{}
}

// Add registers a link over r.
func (lm *LinkMap) Add(r rich.Range, url string) {
	lm.entries = append(lm.entries, LinkEntry{Range: r, URL: url})
}

// Len returns the number of links.
func (lm *LinkMap) Len() int { return len(lm.entries) }

// Entries returns the links in the order they were added.
func (lm *LinkMap) Entries() []LinkEntry {
	return append([]LinkEntry(nil), lm.entries...)
}

// URLAt returns the URL of the innermost link covering pos, or the
// empty string. Later links are nested inside earlier ones, so the
// last match wins.
func (lm *LinkMap) URLAt(pos int) string {
	url := ""
	for _, e := range lm.entries {
		if e.Range.Contains(pos) {
			url = e.URL
		}
	}
	return url
}
