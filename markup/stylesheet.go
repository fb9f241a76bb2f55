package markup

import (
	"fmt"
	"image/color"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rjkroege/richlabel/rich"
)

// StyleSheet maps tag names to styles.
type StyleSheet map[string]rich.Style

// Style returns the style for the tag name, named after the tag. Tags
// not in the sheet get an empty style.
func (ss StyleSheet) Style(name string) rich.Style {
	if s, ok := ss[name]; ok {
		return s.Named(name)
	}
	return rich.NewStyle(name)
}

// DefaultStyleSheet styles the common inline HTML elements.
func DefaultStyleSheet() StyleSheet {
	return StyleSheet{
		"a":      rich.LinkStyle,
		"b":      rich.NewStyle("b").Font(rich.Normal, rich.FontDesc{Bold: true}),
		"strong": rich.NewStyle("strong").Font(rich.Normal, rich.FontDesc{Bold: true}),
		"i":      rich.NewStyle("i").Font(rich.Normal, rich.FontDesc{Italic: true}),
		"em":     rich.NewStyle("em").Font(rich.Normal, rich.FontDesc{Italic: true}),
		"u":      rich.NewStyle("u").Underline(rich.Normal, rich.LineSingle),
		"s":      rich.NewStyle("s").Strikethrough(rich.Normal, rich.LineSingle),
		"del":    rich.NewStyle("del").Strikethrough(rich.Normal, rich.LineSingle),
	}
}

// attrTable is one state of one tag in a TOML style sheet.
type attrTable struct {
	Foreground         string   `toml:"foreground"`
	Background         string   `toml:"background"`
	Underline          string   `toml:"underline"`
	UnderlineColor     string   `toml:"underline_color"`
	Strikethrough      string   `toml:"strikethrough"`
	StrikethroughColor string   `toml:"strikethrough_color"`
	Link               string   `toml:"link"`
	Kern               *float64 `toml:"kern"`
	BaselineOffset     *float64 `toml:"baseline_offset"`
	FontFamily         string   `toml:"font_family"`
	FontSize           float64  `toml:"font_size"`
	Bold               bool     `toml:"bold"`
	Italic             bool     `toml:"italic"`
}

type styleTable struct {
	Normal      *attrTable `toml:"normal"`
	Disabled    *attrTable `toml:"disabled"`
	Highlighted *attrTable `toml:"highlighted"`
}

// ParseStyleSheet reads a TOML style sheet. Each tag is a table with
// optional normal, disabled and highlighted sub-tables:
//
//	[a.normal]
//	foreground = "#0000ee"
//	underline = "single"
//
//	[a.highlighted]
//	background = "#c8c8c8"
//
// Unknown keys are an error.
func ParseStyleSheet(r io.Reader) (StyleSheet, error) {
	var tables map[string]styleTable
	md, err := toml.NewDecoder(r).Decode(&tables)
	if err != nil {
		return nil, fmt.Errorf("style sheet: %w", err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("style sheet: unknown keys %s", strings.Join(keys, ", "))
	}

	ss := make(StyleSheet, len(tables))
	for name, st := range tables {
		s := rich.NewStyle(name)
		for _, p := range []struct {
			state rich.State
			t     *attrTable
		}{
			{rich.Normal, st.Normal},
			{rich.Disabled, st.Disabled},
			{rich.Highlighted, st.Highlighted},
		} {
			if p.t == nil {
				continue
			}
			s, err = p.t.apply(s, p.state)
			if err != nil {
				return nil, fmt.Errorf("style sheet: %s.%v: %w", name, p.state, err)
			}
		}
		ss[name] = s
	}
	return ss, nil
}

func (t *attrTable) apply(s rich.Style, state rich.State) (rich.Style, error) {
	colors := []struct {
		val string
		key rich.Key
	}{
		{t.Foreground, rich.Foreground},
		{t.Background, rich.Background},
		{t.UnderlineColor, rich.UnderlineColor},
		{t.StrikethroughColor, rich.StrikethroughColor},
	}
	for _, c := range colors {
		if c.val == "" {
			continue
		}
		col, err := parseColor(c.val)
		if err != nil {
			return s, err
		}
		s = s.With(state, c.key, rich.ColorValue(col))
	}

	lines := []struct {
		val string
		key rich.Key
	}{
		{t.Underline, rich.Underline},
		{t.Strikethrough, rich.Strikethrough},
	}
	for _, l := range lines {
		if l.val == "" {
			continue
		}
		ls, err := parseLine(l.val)
		if err != nil {
			return s, err
		}
		s = s.With(state, l.key, rich.LineValue(ls))
	}

	if t.Link != "" {
		s = s.Link(state, t.Link)
	}
	if t.Kern != nil {
		s = s.Kern(state, *t.Kern)
	}
	if t.BaselineOffset != nil {
		s = s.BaselineOffset(state, *t.BaselineOffset)
	}
	if t.FontFamily != "" || t.FontSize != 0 || t.Bold || t.Italic {
		s = s.Font(state, rich.FontDesc{Family: t.FontFamily, Size: t.FontSize, Bold: t.Bold, Italic: t.Italic})
	}
	return s, nil
}

// parseColor accepts #rgb and #rrggbb hex colors.
func parseColor(v string) (color.RGBA, error) {
	if len(v) == 4 && v[0] == '#' {
		v = string([]byte{'#', v[1], v[1], v[2], v[2], v[3], v[3]})
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", v, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

var lineStyles = map[string]rich.LineStyle{
	"none":   rich.LineNone,
	"single": rich.LineSingle,
	"double": rich.LineDouble,
	"thick":  rich.LineThick,
}

func parseLine(v string) (rich.LineStyle, error) {
	if ls, ok := lineStyles[v]; ok {
		return ls, nil
	}
	return rich.LineNone, fmt.Errorf("unknown line style %q", v)
}
