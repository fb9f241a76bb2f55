package label

import (
	"image"
	"strings"

	"github.com/rjkroege/richlabel/draw"
	"github.com/rjkroege/richlabel/internal/ui"
	"github.com/rjkroege/richlabel/rich"
)

// Layouter places resolved content in a box whose origin is (0,0).
// A zero width does not wrap and a zero height does not clip.
type Layouter interface {
	Lay(c rich.Content, r image.Rectangle) Lines
}

// Fragment is the part of one span that landed on one line.
type Fragment struct {
	Range rich.Range
	Text  string // without a trailing newline
	Attrs rich.Attrs
	Rect  image.Rectangle

	// xs[i] is the left edge of cluster Range.Start+i; the last entry
	// is the right edge of the fragment.
	xs []int
}

// Line is one laid out line.
type Line struct {
	Y, Height int
	Frags     []Fragment
}

// Lines is the result of a layout pass.
type Lines []Line

// Rects returns one rectangle per line covering the clusters of r.
// Lines where r only covers zero-width clusters contribute nothing.
func (ls Lines) Rects(r rich.Range) []image.Rectangle {
	var rects []image.Rectangle
	for _, l := range ls {
		var lr image.Rectangle
		for _, f := range l.Frags {
			in := f.Range.Intersect(r)
			if in.IsEmpty() {
				continue
			}
			fr := image.Rect(f.xs[in.Start-f.Range.Start], l.Y, f.xs[in.End-f.Range.Start], l.Y+l.Height)
			if fr.Dx() == 0 {
				continue
			}
			lr = lr.Union(fr)
		}
		if !lr.Empty() {
			rects = append(rects, lr)
		}
	}
	return rects
}

// Size returns the extent of the laid out text.
func (ls Lines) Size() image.Point {
	var sz image.Point
	for _, l := range ls {
		for _, f := range l.Frags {
			if f.Rect.Max.X > sz.X {
				sz.X = f.Rect.Max.X
			}
		}
		if y := l.Y + l.Height; y > sz.Y {
			sz.Y = y
		}
	}
	return sz
}

// Alignment places each line within the box width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// LineBreak says what happens to text past the last line that is shown.
type LineBreak int

const (
	// TruncateTail ends the last shown line with an ellipsis.
	TruncateTail LineBreak = iota
	// Clip drops the rest of the text.
	Clip
)

const ellipsis = "\u2026"

// GridLayout sets text in a single font, breaking lines at newlines and
// wrapping at the box width between grapheme clusters. Without a box
// width, lines are aligned against the widest line.
type GridLayout struct {
	Font      draw.Font
	MaxLines  int // 0 for no limit
	Align     Alignment
	LineBreak LineBreak
}

var _ = Layouter((*GridLayout)(nil))

type layoutState struct {
	font    draw.Font
	metrics *ui.LineMetrics
	width   int
	height  int

	lines Lines
	cur   *Line
	x     int
	done  bool
}

func (g *GridLayout) Lay(c rich.Content, r image.Rectangle) Lines {
	if g.Font == nil || c.Len() == 0 {
		return nil
	}
	st := &layoutState{
		font:    g.Font,
		metrics: ui.NewLineMetrics(g.Font.Height(), g.MaxLines),
		width:   r.Dx(),
		height:  r.Dy(),
	}
	st.newline()
	for _, s := range c {
		if st.done {
			break
		}
		st.span(s)
	}
	if g.LineBreak == TruncateTail && st.end() < c.Len() {
		st.truncate()
	}
	st.align(g.Align)
	return st.lines
}

func (st *layoutState) newline() {
	i := len(st.lines)
	if st.metrics.MaxLines() > 0 && i >= st.metrics.MaxLines() {
		st.done = true
		return
	}
	if st.height > 0 && !st.metrics.Fits(i, st.height) {
		st.done = true
		return
	}
	st.lines = append(st.lines, Line{Y: st.metrics.Height(i), Height: st.metrics.LineHeight()})
	st.cur = &st.lines[i]
	st.x = 0
}

func (st *layoutState) span(s rich.Span) {
	var kern int
	if v, ok := s.Attrs.Get(rich.Kern); ok {
		n, _ := v.Number()
		kern = int(n)
	}

	var f *Fragment
	pos := s.Range.Start
	for _, cl := range rich.Clusters(s.Text) {
		if cl == "\n" || cl == "\r\n" {
			if f == nil {
				f = st.fragment(s, pos)
			}
			f.xs = append(f.xs, st.x)
			f.Range.End = pos + 1
			st.close()
			st.newline()
			if st.done {
				return
			}
			f = nil
			pos++
			continue
		}

		w := st.font.StringWidth(cl) + kern
		if st.width > 0 && st.x > 0 && st.x+w > st.width {
			st.close()
			st.newline()
			if st.done {
				return
			}
			f = nil
		}
		if f == nil {
			f = st.fragment(s, pos)
		}
		f.Text += cl
		f.xs = append(f.xs, st.x+w)
		f.Range.End = pos + 1
		st.x += w
		pos++
	}
	st.close()
}

// fragment starts a fragment at cluster pos on the current line.
func (st *layoutState) fragment(s rich.Span, pos int) *Fragment {
	st.cur.Frags = append(st.cur.Frags, Fragment{
		Range: rich.Range{Start: pos, End: pos},
		Attrs: s.Attrs,
		xs:    []int{st.x},
	})
	return &st.cur.Frags[len(st.cur.Frags)-1]
}

// close fixes the rectangles of the current line's fragments.
func (st *layoutState) close() {
	for i := range st.cur.Frags {
		f := &st.cur.Frags[i]
		f.Rect = image.Rect(f.xs[0], st.cur.Y, f.xs[len(f.xs)-1], st.cur.Y+st.cur.Height)
	}
}

// end returns the cluster position after the last one laid out.
func (st *layoutState) end() int {
	for i := len(st.lines) - 1; i >= 0; i-- {
		if fs := st.lines[i].Frags; len(fs) > 0 {
			return fs[len(fs)-1].Range.End
		}
	}
	return 0
}

// truncate ends the last line with an ellipsis, dropping clusters from
// its tail until the ellipsis fits in the box width. The ellipsis
// fragment covers no clusters and takes the attributes of the last
// fragment on the line.
func (st *layoutState) truncate() {
	if len(st.lines) == 0 {
		return
	}
	ln := &st.lines[len(st.lines)-1]
	var attrs rich.Attrs
	pos := st.end()
	if n := len(ln.Frags); n > 0 {
		attrs = ln.Frags[n-1].Attrs
		pos = ln.Frags[0].Range.Start
	}
	ew := st.font.StringWidth(ellipsis)
	for len(ln.Frags) > 0 {
		f := &ln.Frags[len(ln.Frags)-1]
		if f.Range.IsEmpty() {
			ln.Frags = ln.Frags[:len(ln.Frags)-1]
			continue
		}
		if st.width <= 0 || f.xs[len(f.xs)-1]+ew <= st.width {
			break
		}
		f.dropLast()
	}
	x := 0
	if n := len(ln.Frags); n > 0 {
		f := &ln.Frags[n-1]
		x = f.xs[len(f.xs)-1]
		pos = f.Range.End
	}
	ln.Frags = append(ln.Frags, Fragment{
		Range: rich.Range{Start: pos, End: pos},
		Text:  ellipsis,
		Attrs: attrs,
		xs:    []int{x, x + ew},
	})
	st.cur = ln
	st.close()
}

// dropLast removes the last cluster of f, which may be a newline
// that has no text.
func (f *Fragment) dropLast() {
	if cls := rich.Clusters(f.Text); len(cls) == f.Range.Len() {
		f.Text = strings.Join(cls[:len(cls)-1], "")
	}
	f.xs = f.xs[:len(f.xs)-1]
	f.Range.End--
}

// align shifts each line right by the room left on it.
func (st *layoutState) align(a Alignment) {
	if a == AlignLeft {
		return
	}
	width := st.width
	if width <= 0 {
		width = st.lines.Size().X
	}
	for i := range st.lines {
		ln := &st.lines[i]
		if len(ln.Frags) == 0 {
			continue
		}
		dx := width - ln.Frags[len(ln.Frags)-1].Rect.Max.X
		if a == AlignCenter {
			dx /= 2
		}
		if dx <= 0 {
			continue
		}
		for j := range ln.Frags {
			f := &ln.Frags[j]
			f.Rect = f.Rect.Add(image.Pt(dx, 0))
			for k := range f.xs {
				f.xs[k] += dx
			}
		}
	}
}
