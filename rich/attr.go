package rich

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"
)

// KeyKind enumerates the attribute keys the renderer understands.
type KeyKind uint8

const (
	KeyFont KeyKind = iota
	KeyForeground
	KeyBackground
	KeyUnderline
	KeyUnderlineColor
	KeyStrikethrough
	KeyStrikethroughColor
	KeyShadow
	KeyLink
	KeyKern
	KeyBaselineOffset
	KeyCustom
)

var keyNames = [...]string{
	KeyFont:               "font",
	KeyForeground:         "foreground",
	KeyBackground:         "background",
	KeyUnderline:          "underline",
	KeyUnderlineColor:     "underline-color",
	KeyStrikethrough:      "strikethrough",
	KeyStrikethroughColor: "strikethrough-color",
	KeyShadow:             "shadow",
	KeyLink:               "link",
	KeyKern:               "kern",
	KeyBaselineOffset:     "baseline-offset",
	KeyCustom:             "custom",
}

// Key identifies an attribute. Keys are comparable and may be used as
// map keys. Custom keys are distinguished by name.
type Key struct {
	Kind KeyKind
	Name string // set only for KeyCustom
}

// Predefined keys.
var (
	Font               = Key{Kind: KeyFont}
	Foreground         = Key{Kind: KeyForeground}
	Background         = Key{Kind: KeyBackground}
	Underline          = Key{Kind: KeyUnderline}
	UnderlineColor     = Key{Kind: KeyUnderlineColor}
	Strikethrough      = Key{Kind: KeyStrikethrough}
	StrikethroughColor = Key{Kind: KeyStrikethroughColor}
	ShadowKey          = Key{Kind: KeyShadow}
	Link               = Key{Kind: KeyLink}
	Kern               = Key{Kind: KeyKern}
	BaselineOffset     = Key{Kind: KeyBaselineOffset}
)

// CustomKey returns the key for a platform-specific extension attribute.
func CustomKey(name string) Key {
	return Key{Kind: KeyCustom, Name: name}
}

func (k Key) String() string {
	if k.Kind == KeyCustom {
		return "custom(" + k.Name + ")"
	}
	if int(k.Kind) < len(keyNames) {
		return keyNames[k.Kind]
	}
	return fmt.Sprintf("key(%d)", k.Kind)
}

func (k Key) less(o Key) bool {
	if k.Kind != o.Kind {
		return k.Kind < o.Kind
	}
	return k.Name < o.Name
}

// ValueKind is the tag of a Value.
type ValueKind uint8

const (
	KindNone ValueKind = iota
	KindColor
	KindFont
	KindNumber
	KindLine
	KindLink
	KindShadow
	KindBlob
)

// LineStyle is the pattern of an underline or strikethrough.
type LineStyle uint8

const (
	LineNone LineStyle = iota
	LineSingle
	LineDouble
	LineThick
)

func (l LineStyle) String() string {
	switch l {
	case LineNone:
		return "none"
	case LineSingle:
		return "single"
	case LineDouble:
		return "double"
	case LineThick:
		return "thick"
	}
	return fmt.Sprintf("line(%d)", l)
}

// FontDesc describes a font without binding it to a loaded face.
type FontDesc struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

// Shadow describes a text shadow.
type Shadow struct {
	Color  color.RGBA
	Offset image.Point
	Blur   float64
}

// Value is a closed tagged union of attribute payloads. The zero Value
// has KindNone. Values compare with ==.
type Value struct {
	kind   ValueKind
	color  color.RGBA
	font   FontDesc
	num    float64
	line   LineStyle
	str    string
	shadow Shadow
}

// ColorValue wraps c as 8-bit RGBA. A nil c gives the zero Value.
func ColorValue(c color.Color) Value {
	if c == nil {
		return Value{}
	}
	return Value{kind: KindColor, color: color.RGBAModel.Convert(c).(color.RGBA)}
}

func FontValue(f FontDesc) Value     { return Value{kind: KindFont, font: f} }
func NumberValue(n float64) Value    { return Value{kind: KindNumber, num: n} }
func LineValue(l LineStyle) Value    { return Value{kind: KindLine, line: l} }
func LinkValue(url string) Value     { return Value{kind: KindLink, str: url} }
func ShadowValue(s Shadow) Value     { return Value{kind: KindShadow, shadow: s} }
func BlobValue(payload []byte) Value { return Value{kind: KindBlob, str: string(payload)} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) Color() (color.RGBA, bool) { return v.color, v.kind == KindColor }
func (v Value) Font() (FontDesc, bool)    { return v.font, v.kind == KindFont }
func (v Value) Number() (float64, bool)   { return v.num, v.kind == KindNumber }
func (v Value) Line() (LineStyle, bool)   { return v.line, v.kind == KindLine }
func (v Value) Link() (string, bool)      { return v.str, v.kind == KindLink }
func (v Value) Shadow() (Shadow, bool)    { return v.shadow, v.kind == KindShadow }

// Blob returns a copy of the custom payload.
func (v Value) Blob() ([]byte, bool) {
	if v.kind != KindBlob {
		return nil, false
	}
	return []byte(v.str), true
}

func (v Value) String() string {
	switch v.kind {
	case KindColor:
		return fmt.Sprintf("#%02x%02x%02x%02x", v.color.R, v.color.G, v.color.B, v.color.A)
	case KindFont:
		return fmt.Sprintf("font(%s %g bold=%v italic=%v)", v.font.Family, v.font.Size, v.font.Bold, v.font.Italic)
	case KindNumber:
		return fmt.Sprintf("%g", v.num)
	case KindLine:
		return v.line.String()
	case KindLink:
		return fmt.Sprintf("link(%s)", v.str)
	case KindShadow:
		return fmt.Sprintf("shadow(%v %v %g)", ColorValue(v.shadow.Color), v.shadow.Offset, v.shadow.Blur)
	case KindBlob:
		return fmt.Sprintf("blob(%d)", len(v.str))
	}
	return "none"
}

// Attrs maps attribute keys to values. Attrs handed to a Style are
// never modified: every operation that changes a set returns a copy.
// A nil Attrs is the empty set.
type Attrs map[Key]Value

// Get returns the value stored for k.
func (a Attrs) Get(k Key) (Value, bool) {
	v, ok := a[k]
	return v, ok
}

func (a Attrs) Len() int { return len(a) }

// With returns a copy of a with k set to v. The zero Value removes k.
func (a Attrs) With(k Key, v Value) Attrs {
	if v.kind == KindNone {
		return a.Without(k)
	}
	c := a.clone(len(a) + 1)
	c[k] = v
	return c
}

// Without returns a copy of a with k removed.
func (a Attrs) Without(k Key) Attrs {
	c := a.clone(len(a))
	delete(c, k)
	return c
}

// Merge returns a new set holding a overlaid by b. Keys in b win.
func (a Attrs) Merge(b Attrs) Attrs {
	c := a.clone(len(a) + len(b))
	for k, v := range b {
		c[k] = v
	}
	return c
}

// Equal reports whether a and b hold the same keys and values. A nil
// set equals an empty one.
func (a Attrs) Equal(b Attrs) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}

// Keys returns the keys of a in a stable order.
func (a Attrs) Keys() []Key {
	keys := make([]Key, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys
}

func (a Attrs) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range a.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", k, a[k])
	}
	sb.WriteByte('}')
	return sb.String()
}

func (a Attrs) clone(size int) Attrs {
	c := make(Attrs, size)
	for k, v := range a {
		c[k] = v
	}
	return c
}
