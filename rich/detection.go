package rich

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmptyRange  = errors.New("empty range")
	ErrOutOfBounds = errors.New("range out of bounds")
)

// RangeError reports a detection whose range cannot address its text.
type RangeError struct {
	Range  Range
	Length int
	Err    error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("detection %v in text of length %d: %v", e.Range, e.Length, e.Err)
}

func (e *RangeError) Unwrap() error { return e.Err }

// Tag is a parsed markup element.
type Tag struct {
	Name  string
	Attrs map[string]string
}

// Classification says what a detection is: a markup tag, or some
// other kind named by a custom identifier (a hashtag, a mention, ...).
type Classification struct {
	Tag    *Tag
	Custom string
}

// TagClass classifies a detection as the element name with attrs.
func TagClass(name string, attrs map[string]string) Classification {
	return Classification{Tag: &Tag{Name: name, Attrs: attrs}}
}

// CustomClass classifies a detection by an external identifier.
func CustomClass(id string) Classification {
	return Classification{Custom: id}
}

// IsTag reports whether c names a markup element.
func (c Classification) IsTag() bool { return c.Tag != nil }

func (c Classification) String() string {
	if c.Tag != nil {
		return "<" + c.Tag.Name + ">"
	}
	return c.Custom
}

// Detection is a classified range of a text with its Style. ID is the
// insertion index in the owning Registry.
type Detection struct {
	ID    int
	Range Range
	Class Classification
	Style Style
}

func (d Detection) String() string {
	return fmt.Sprintf("detection %d %v %v %q", d.ID, d.Range, d.Class, d.Style.Name)
}

// Registry is the ordered list of detections over one string.
// Insertion order is the order detections were encountered in the
// source, and it is the order in which their attributes are applied:
// where ranges overlap a later detection wins per key. Overlapping
// ranges are accepted.
type Registry struct {
	length int
	dets   []Detection
}

// NewRegistry returns an empty registry for a string of length clusters.
func NewRegistry(length int) *Registry {
	return &Registry{length: length}
}

// Length is the cluster count of the string the registry covers.
func (g *Registry) Length() int { return g.length }

// Add appends a detection. It fails with a *RangeError when r is empty
// or does not lie inside the string.
func (g *Registry) Add(r Range, class Classification, style Style) (Detection, error) {
	if err := r.check(g.length); err != nil {
		return Detection{}, err
	}
	d := Detection{ID: len(g.dets), Range: r, Class: class, Style: style}
	g.dets = append(g.dets, d)
	return d, nil
}

func (g *Registry) Len() int { return len(g.dets) }

func (g *Registry) clone() *Registry {
	return &Registry{length: g.length, dets: g.All()}
}

// All returns the detections in insertion order.
func (g *Registry) All() []Detection {
	return append([]Detection(nil), g.dets...)
}

// At returns the detection with the given id.
func (g *Registry) At(id int) (Detection, bool) {
	if id < 0 || id >= len(g.dets) {
		return Detection{}, false
	}
	return g.dets[id], true
}

// WithState returns, in insertion order, the detections whose Style
// defines a non-empty set for state.
func (g *Registry) WithState(state State) []Detection {
	return g.filter(func(d Detection) bool { return d.Style.Has(state) })
}

// Interactive returns the detections that can be pressed: those with a
// highlighted set. The others are decoration only.
func (g *Registry) Interactive() []Detection {
	return g.WithState(Highlighted)
}

// Overlapping returns the detections sharing a position with r.
func (g *Registry) Overlapping(r Range) []Detection {
	return g.filter(func(d Detection) bool { return d.Range.Overlaps(r) })
}

// Containing returns the detections whose range covers all of r.
func (g *Registry) Containing(r Range) []Detection {
	return g.filter(func(d Detection) bool { return d.Range.ContainsRange(r) })
}

// AtPos returns the detections covering pos, in insertion order.
func (g *Registry) AtPos(pos int) []Detection {
	return g.filter(func(d Detection) bool { return d.Range.Contains(pos) })
}

// Classified returns the detections whose tag name or custom identifier
// is name.
func (g *Registry) Classified(name string) []Detection {
	return g.filter(func(d Detection) bool {
		if d.Class.Tag != nil {
			return d.Class.Tag.Name == name
		}
		return d.Class.Custom == name
	})
}

func (g *Registry) filter(keep func(Detection) bool) []Detection {
	var out []Detection
	for _, d := range g.dets {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// boundaries returns the sorted, de-duplicated start and end positions
// of every detection plus 0 and the string length.
func (g *Registry) boundaries() []int {
	seen := map[int]bool{0: true, g.length: true}
	cuts := []int{0, g.length}
	for _, d := range g.dets {
		for _, p := range [2]int{d.Range.Start, d.Range.End} {
			if !seen[p] {
				seen[p] = true
				cuts = append(cuts, p)
			}
		}
	}
	sort.Ints(cuts)
	return cuts
}
