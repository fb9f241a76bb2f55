// Package ansi renders resolved rich content for a terminal.
package ansi

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/rjkroege/richlabel/rich"
)

// Render writes c with SGR sequences for the given profile. Links
// become OSC 8 hyperlinks unless the profile is Ascii. Attributes a
// terminal cannot show, such as kerning and shadows, are dropped.
func Render(c rich.Content, p termenv.Profile) string {
	var sb strings.Builder
	for _, s := range c {
		sb.WriteString(span(s, p))
	}
	return sb.String()
}

// Detect returns the color profile of the terminal on stdout.
func Detect() termenv.Profile {
	return termenv.EnvColorProfile()
}

func span(s rich.Span, p termenv.Profile) string {
	if p == termenv.Ascii {
		return s.Text
	}
	// Style each line separately so SGR state does not cross newlines.
	lines := strings.SplitAfter(s.Text, "\n")
	for i, l := range lines {
		body := strings.TrimSuffix(l, "\n")
		if body == "" {
			continue
		}
		lines[i] = style(body, s.Attrs, p) + l[len(body):]
	}
	return strings.Join(lines, "")
}

func style(text string, a rich.Attrs, p termenv.Profile) string {
	st := p.String(text)
	if c, ok := colorAttr(a, rich.Foreground); ok {
		st = st.Foreground(p.Color(hex(c)))
	}
	if c, ok := colorAttr(a, rich.Background); ok {
		st = st.Background(p.Color(hex(c)))
	}
	if v, ok := a.Get(rich.Font); ok {
		if f, ok := v.Font(); ok {
			if f.Bold {
				st = st.Bold()
			}
			if f.Italic {
				st = st.Italic()
			}
		}
	}
	if lineAttr(a, rich.Underline) {
		st = st.Underline()
	}
	if lineAttr(a, rich.Strikethrough) {
		st = st.CrossOut()
	}
	out := st.String()
	if v, ok := a.Get(rich.Link); ok {
		if url, ok := v.Link(); ok && url != "" {
			out = termenv.Hyperlink(url, out)
		}
	}
	return out
}

func colorAttr(a rich.Attrs, k rich.Key) (color.RGBA, bool) {
	v, ok := a.Get(k)
	if !ok {
		return color.RGBA{}, false
	}
	return v.Color()
}

func lineAttr(a rich.Attrs, k rich.Key) bool {
	v, ok := a.Get(k)
	if !ok {
		return false
	}
	ls, ok := v.Line()
	return ok && ls != rich.LineNone
}

func hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	return cf.Hex()
}
