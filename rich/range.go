package rich

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// Positions in a Text count extended grapheme clusters, not bytes or
// runes. The layout and renderers walk the same clusters so that a
// Range computed by a parser addresses the same glyphs on screen.

// Len returns the number of grapheme clusters in s.
func Len(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Clusters splits s into its grapheme clusters.
func Clusters(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// ClusterOffsets returns the byte offset at which each cluster of s
// starts, followed by len(s).
func ClusterOffsets(s string) []int {
	offs := make([]int, 0, len(s)+1)
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		from, _ := g.Positions()
		offs = append(offs, from)
	}
	return append(offs, len(s))
}

// Range is a half-open span [Start, End) of cluster positions.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int      { return r.End - r.Start }
func (r Range) IsEmpty() bool { return r.End <= r.Start }

// Contains reports whether pos is inside r.
func (r Range) Contains(pos int) bool {
	return pos >= r.Start && pos < r.End
}

// ContainsRange reports whether o lies entirely inside r.
func (r Range) ContainsRange(o Range) bool {
	return !o.IsEmpty() && o.Start >= r.Start && o.End <= r.End
}

// Overlaps reports whether r and o share at least one position.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

// Intersect returns the overlap of r and o. The result is empty when
// they do not overlap.
func (r Range) Intersect(o Range) Range {
	x := Range{Start: max(r.Start, o.Start), End: min(r.End, o.End)}
	if x.IsEmpty() {
		return Range{}
	}
	return x
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// check validates r against a string of length n clusters.
func (r Range) check(n int) error {
	if r.IsEmpty() {
		return &RangeError{Range: r, Length: n, Err: ErrEmptyRange}
	}
	if r.Start < 0 || r.End > n {
		return &RangeError{Range: r, Length: n, Err: ErrOutOfBounds}
	}
	return nil
}
