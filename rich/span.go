package rich

import "strings"

// Span is a run of text with uniform resolved attributes.
// This is the output model - what resolving a Text produces and what
// the layout and renderers consume.
type Span struct {
	Range Range
	Text  string
	Attrs Attrs
}

// Content is a sequence of adjacent spans covering a whole string.
type Content []Span

// Len returns total cluster count.
func (c Content) Len() int {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1].Range.End
}

// String returns the plain text of c.
func (c Content) String() string {
	var sb strings.Builder
	for _, s := range c {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// AttrsAt returns the attributes in effect at cluster pos, or nil when
// pos is outside c.
func (c Content) AttrsAt(pos int) Attrs {
	for _, s := range c {
		if s.Range.Contains(pos) {
			return s.Attrs
		}
	}
	return nil
}

// Under returns a copy of c with base placed beneath every span. Keys
// resolved from detections win over base.
func (c Content) Under(base Attrs) Content {
	if len(base) == 0 {
		return c
	}
	out := make(Content, len(c))
	for i, s := range c {
		s.Attrs = base.Merge(s.Attrs)
		out[i] = s
	}
	return out
}

// Equal reports whether c and o have the same spans.
func (c Content) Equal(o Content) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i].Range != o[i].Range || c[i].Text != o[i].Text || !c[i].Attrs.Equal(o[i].Attrs) {
			return false
		}
	}
	return true
}

// appendSpan adds s to c, merging it into the last span when their
// attributes match.
func appendSpan(c Content, s Span) Content {
	if n := len(c); n > 0 && c[n-1].Range.End == s.Range.Start && c[n-1].Attrs.Equal(s.Attrs) {
		c[n-1].Range.End = s.Range.End
		c[n-1].Text += s.Text
		return c
	}
	return append(c, s)
}
