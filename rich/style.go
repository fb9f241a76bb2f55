package rich

import (
	"fmt"
	"image/color"
)

// State selects which of a Style's attribute sets applies.
type State uint8

const (
	Normal State = iota
	Disabled
	Highlighted

	numStates
)

// States lists every State in declaration order.
var States = [...]State{Normal, Disabled, Highlighted}

func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case Disabled:
		return "disabled"
	case Highlighted:
		return "highlighted"
	}
	return fmt.Sprintf("state(%d)", s)
}

// Style is a named bundle of attribute sets, one per State. The
// Disabled and Highlighted sets are deltas on top of Normal.
//
// Style is a value: every method returns a new Style and leaves the
// receiver untouched.
type Style struct {
	Name string
	sets [numStates]Attrs
}

// NewStyle returns an empty style called name.
func NewStyle(name string) Style {
	return Style{Name: name}
}

// StyleOf returns a style called name whose only set is attrs for state.
func StyleOf(name string, state State, attrs Attrs) Style {
	s := Style{Name: name}
	s.sets[state] = attrs.clone(len(attrs))
	return s
}

// Named returns a copy of s called name.
func (s Style) Named(name string) Style {
	s.Name = name
	return s
}

// Set returns the raw attribute set stored for state, which for
// Disabled and Highlighted is only the delta. The result must not be
// modified.
func (s Style) Set(state State) Attrs {
	return s.sets[state]
}

// Has reports whether s defines a non-empty set for state.
func (s Style) Has(state State) bool {
	return len(s.sets[state]) > 0
}

// Effective returns the attributes that apply in state: the Normal set
// overlaid key by key with the set for state.
func (s Style) Effective(state State) Attrs {
	if state == Normal {
		return s.sets[Normal].clone(len(s.sets[Normal]))
	}
	return s.sets[Normal].Merge(s.sets[state])
}

// Merge overlays o onto s state by state and key by key. Keys set in o
// win. The name of s is kept.
func (s Style) Merge(o Style) Style {
	r := Style{Name: s.Name}
	for _, st := range States {
		switch {
		case len(o.sets[st]) == 0:
			r.sets[st] = s.sets[st]
		case len(s.sets[st]) == 0:
			r.sets[st] = o.sets[st]
		default:
			r.sets[st] = s.sets[st].Merge(o.sets[st])
		}
	}
	return r
}

// Merge folds styles left to right. The result is named after the first.
func Merge(styles ...Style) Style {
	if len(styles) == 0 {
		return Style{}
	}
	r := styles[0]
	for _, o := range styles[1:] {
		r = r.Merge(o)
	}
	return r
}

// Equal reports whether s and o have the same name and sets.
func (s Style) Equal(o Style) bool {
	if s.Name != o.Name {
		return false
	}
	for _, st := range States {
		if !s.sets[st].Equal(o.sets[st]) {
			return false
		}
	}
	return true
}

// With returns a copy of s with k set to v in the set for state.
func (s Style) With(state State, k Key, v Value) Style {
	s.sets[state] = s.sets[state].With(k, v)
	return s
}

func (s Style) Font(state State, f FontDesc) Style {
	return s.With(state, Font, FontValue(f))
}

func (s Style) Foreground(state State, c color.Color) Style {
	return s.With(state, Foreground, ColorValue(c))
}

func (s Style) Background(state State, c color.Color) Style {
	return s.With(state, Background, ColorValue(c))
}

func (s Style) Underline(state State, l LineStyle) Style {
	return s.With(state, Underline, LineValue(l))
}

func (s Style) UnderlineColor(state State, c color.Color) Style {
	return s.With(state, UnderlineColor, ColorValue(c))
}

func (s Style) Strikethrough(state State, l LineStyle) Style {
	return s.With(state, Strikethrough, LineValue(l))
}

func (s Style) StrikethroughColor(state State, c color.Color) Style {
	return s.With(state, StrikethroughColor, ColorValue(c))
}

func (s Style) Shadow(state State, sh Shadow) Style {
	return s.With(state, ShadowKey, ShadowValue(sh))
}

func (s Style) Link(state State, url string) Style {
	return s.With(state, Link, LinkValue(url))
}

func (s Style) Kern(state State, k float64) Style {
	return s.With(state, Kern, NumberValue(k))
}

func (s Style) BaselineOffset(state State, off float64) Style {
	return s.With(state, BaselineOffset, NumberValue(off))
}

// Custom stores an opaque payload under a custom key.
func (s Style) Custom(state State, name string, payload []byte) Style {
	return s.With(state, CustomKey(name), BlobValue(payload))
}

func (s Style) String() string {
	return fmt.Sprintf("%s{normal: %v, disabled: %v, highlighted: %v}",
		s.Name, s.sets[Normal], s.sets[Disabled], s.sets[Highlighted])
}

// LinkBlue is the standard blue color for hyperlinks.
var LinkBlue = color.RGBA{R: 0, G: 0, B: 238, A: 255}

// PressedGray is the background shown behind a pressed link.
var PressedGray = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// LinkStyle is a blue, underlined link that greys out while pressed.
var LinkStyle = NewStyle("a").
	Foreground(Normal, LinkBlue).
	Underline(Normal, LineSingle).
	Background(Highlighted, PressedGray)
