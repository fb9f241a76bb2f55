package rich

import (
	"strings"
	"sync"
)

// Entry is one detection as produced by a parser: the range it covers,
// what it is, and how it looks.
type Entry struct {
	Range Range
	Class Classification
	Style Style
}

// Text is a base string with its detections. It is immutable once
// built and may be shared between goroutines. The normal resolution is
// computed by NewText; the disabled and per-detection highlighted
// resolutions are computed on first use and then kept.
type Text struct {
	base     string
	clusters []string
	reg      *Registry
	normal   Content

	mu          sync.Mutex
	disabled    Content
	hasDisabled bool
	highlighted map[int]Content
}

// NewText builds a Text over base. Entries keep their order; a later
// entry's attributes win where ranges overlap. It fails if any entry
// range is empty or outside base.
func NewText(base string, entries ...Entry) (*Text, error) {
	clusters := Clusters(base)
	reg := NewRegistry(len(clusters))
	for _, e := range entries {
		if _, err := reg.Add(e.Range, e.Class, e.Style); err != nil {
			return nil, err
		}
	}
	t := &Text{
		base:     base,
		clusters: clusters,
		reg:      reg,
	}
	t.normal = t.Resolve(Normal, nil)
	return t, nil
}

// Plain creates a Text without detections.
func Plain(base string) *Text {
	t, _ := NewText(base)
	return t
}

// String returns the base string.
func (t *Text) String() string { return t.base }

// Len returns the cluster count of the base string.
func (t *Text) Len() int { return len(t.clusters) }

// Slice returns the base text covered by r.
func (t *Text) Slice(r Range) string {
	r = r.Intersect(Range{0, len(t.clusters)})
	return strings.Join(t.clusters[r.Start:r.End], "")
}

// Registry returns a copy of the detections of t. Adding to the copy
// does not change t.
func (t *Text) Registry() *Registry { return t.reg.clone() }

// Detections returns the detections of t in insertion order.
func (t *Text) Detections() []Detection { return t.reg.All() }

// Detection returns the detection of t with the given id.
func (t *Text) Detection(id int) (Detection, bool) { return t.reg.At(id) }

// Interactive returns the detections of t that have a highlighted set.
func (t *Text) Interactive() []Detection { return t.reg.Interactive() }

// Owns reports whether d is one of the detections of t.
func (t *Text) Owns(d Detection) bool {
	own, ok := t.reg.At(d.ID)
	return ok && own.Range == d.Range && own.Style.Equal(d.Style)
}

// Normal returns the resolution with every detection in its normal state.
func (t *Text) Normal() Content { return t.normal }

// Disabled returns the resolution with every detection disabled.
func (t *Text) Disabled() Content {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.hasDisabled {
		t.disabled = t.Resolve(Disabled, nil)
		t.hasDisabled = true
	}
	return t.disabled
}

// Highlighted returns the normal resolution with d highlighted over its
// own range. A detection that does not belong to t yields Normal.
func (t *Text) Highlighted(d Detection) Content {
	if !t.Owns(d) {
		return t.normal
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok := t.highlighted[d.ID]; ok {
		return c
	}
	if t.highlighted == nil {
		t.highlighted = make(map[int]Content)
	}
	c := t.Resolve(Highlighted, &d)
	t.highlighted[d.ID] = c
	return c
}

// Resolve computes the attributes of every position of t for state.
// It folds each detection's effective attributes over its range in
// insertion order, so a later detection wins per key on overlap. For
// Disabled every detection contributes its disabled attributes. For
// Highlighted only active is highlighted, as a final overlay restricted
// to its range; with a nil active Highlighted resolves like Normal.
//
// Renderer-supplied base attributes are not included; see Content.Under.
func (t *Text) Resolve(state State, active *Detection) Content {
	fold := Normal
	if state == Disabled {
		fold = Disabled
	}
	dets := t.reg.dets
	effective := make([]Attrs, len(dets))
	for i, d := range dets {
		effective[i] = d.Style.Effective(fold)
	}
	var overlay Attrs
	if state == Highlighted && active != nil {
		overlay = active.Style.Effective(Highlighted)
	}

	var c Content
	cuts := t.reg.boundaries()
	for i := 0; i+1 < len(cuts); i++ {
		seg := Range{cuts[i], cuts[i+1]}
		if seg.IsEmpty() {
			continue
		}
		var attrs Attrs
		for j, d := range dets {
			if d.Range.ContainsRange(seg) {
				attrs = attrs.Merge(effective[j])
			}
		}
		if overlay != nil && active.Range.ContainsRange(seg) {
			attrs = attrs.Merge(overlay)
		}
		c = appendSpan(c, Span{Range: seg, Text: t.Slice(seg), Attrs: attrs})
	}
	return c
}
