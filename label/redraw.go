package label

import (
	"image"
	"image/color"

	"github.com/rjkroege/richlabel/draw"
	"github.com/rjkroege/richlabel/rich"
)

// Redraw paints the label into dst at the rectangle of the last
// Layout. Backgrounds go down first, then shadows, text and lines.
// Fonts other than the layout font are not drawn differently.
func (l *Label) Redraw(dst draw.Image) {
	if !l.laid {
		return
	}
	lines := l.layout.Lay(l.Content(), l.rect.Sub(l.rect.Min))
	origin := l.rect.Min

	base, hasBase := l.inherited.Get(rich.Background)
	if c, ok := base.Color(); hasBase && ok {
		dst.Draw(l.rect, l.colorImage(dst, c), nil, image.Point{})
	}
	for _, ln := range lines {
		for _, f := range ln.Frags {
			v, ok := f.Attrs.Get(rich.Background)
			if !ok || (hasBase && v == base) || f.Rect.Dx() == 0 {
				continue
			}
			if c, ok := v.Color(); ok {
				dst.Draw(f.Rect.Add(origin), l.colorImage(dst, c), nil, image.Point{})
			}
		}
	}
	for _, ln := range lines {
		for _, f := range ln.Frags {
			if f.Text == "" {
				continue
			}
			l.drawFragment(dst, f, origin)
		}
	}
}

func (l *Label) drawFragment(dst draw.Image, f Fragment, origin image.Point) {
	pt := f.Rect.Min.Add(origin)
	if v, ok := f.Attrs.Get(rich.BaselineOffset); ok {
		n, _ := v.Number()
		pt.Y -= int(n)
	}
	fg := color.RGBA{A: 0xff}
	if v, ok := f.Attrs.Get(rich.Foreground); ok {
		if c, ok := v.Color(); ok {
			fg = c
		}
	}

	if v, ok := f.Attrs.Get(rich.ShadowKey); ok {
		if sh, ok := v.Shadow(); ok {
			l.drawText(dst, f, pt.Add(sh.Offset), sh.Color)
		}
	}
	l.drawText(dst, f, pt, fg)

	h := f.Rect.Dy()
	if v, ok := f.Attrs.Get(rich.Underline); ok {
		if ls, ok := v.Line(); ok && ls != rich.LineNone {
			l.drawLine(dst, f, pt.Y+h-1, ls, lineColor(f.Attrs, rich.UnderlineColor, fg), origin)
		}
	}
	if v, ok := f.Attrs.Get(rich.Strikethrough); ok {
		if ls, ok := v.Line(); ok && ls != rich.LineNone {
			l.drawLine(dst, f, pt.Y+h/2, ls, lineColor(f.Attrs, rich.StrikethroughColor, fg), origin)
		}
	}
}

// drawText draws the fragment's text one cluster at a time so kerning
// set by the layout is kept.
func (l *Label) drawText(dst draw.Image, f Fragment, pt image.Point, c color.RGBA) {
	src := l.colorImage(dst, c)
	if _, kerned := f.Attrs.Get(rich.Kern); !kerned {
		dst.Bytes(pt, src, image.Point{}, l.font, []byte(f.Text))
		return
	}
	for i, cl := range rich.Clusters(f.Text) {
		p := image.Pt(pt.X+f.xs[i]-f.xs[0], pt.Y)
		dst.Bytes(p, src, image.Point{}, l.font, []byte(cl))
	}
}

// drawLine rules a line under or through f. Double lines add a second
// rule two pixels above; thick lines are two pixels tall.
func (l *Label) drawLine(dst draw.Image, f Fragment, y int, ls rich.LineStyle, c color.RGBA, origin image.Point) {
	src := l.colorImage(dst, c)
	x0, x1 := f.Rect.Min.X+origin.X, f.Rect.Max.X+origin.X
	r := image.Rect(x0, y, x1, y+1)
	switch ls {
	case rich.LineThick:
		r.Min.Y--
	case rich.LineDouble:
		dst.Draw(r.Sub(image.Pt(0, 2)), src, nil, image.Point{})
	}
	dst.Draw(r, src, nil, image.Point{})
}

func lineColor(a rich.Attrs, k rich.Key, def color.RGBA) color.RGBA {
	if v, ok := a.Get(k); ok {
		if c, ok := v.Color(); ok {
			return c
		}
	}
	return def
}

// colorImage returns a replicated 1x1 image of c, allocating it on the
// display of dst the first time.
func (l *Label) colorImage(dst draw.Image, c color.RGBA) draw.Image {
	dc := draw.ColorOf(c)
	if img, ok := l.colors[dc]; ok {
		return img
	}
	img, err := dst.Display().AllocImage(image.Rect(0, 0, 1, 1), dst.Pix(), true, dc)
	if err != nil {
		l.log.Printf("label: allocimage %v: %v", c, err)
		return nil
	}
	l.colors[dc] = img
	return img
}
