package label

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/richlabel/drawtest"
	"github.com/rjkroege/richlabel/rich"
)

func TestGridLayoutRects(t *testing.T) {
	g := &GridLayout{Font: drawtest.NewFont(10, 14)}

	tests := []struct {
		name  string
		text  string
		width int
		r     rich.Range
		want  []image.Rectangle
	}{
		{
			name: "single line",
			text: "hello world",
			r:    rich.Range{Start: 6, End: 11},
			want: []image.Rectangle{image.Rect(60, 0, 110, 14)},
		},
		{
			name: "across newline",
			text: "ab\ncd",
			r:    rich.Range{Start: 1, End: 4},
			want: []image.Rectangle{image.Rect(10, 0, 20, 14), image.Rect(0, 14, 10, 28)},
		},
		{
			name: "newline only",
			text: "ab\ncd",
			r:    rich.Range{Start: 2, End: 3},
		},
		{
			name:  "wrapped",
			text:  "abcdefgh",
			width: 30,
			r:     rich.Range{Start: 2, End: 7},
			want: []image.Rectangle{
				image.Rect(20, 0, 30, 14),
				image.Rect(0, 14, 30, 28),
				image.Rect(0, 28, 10, 42),
			},
		},
		{
			name: "combining mark is one cluster",
			text: "e\u0301x",
			r:    rich.Range{Start: 1, End: 2},
			want: []image.Rectangle{image.Rect(20, 0, 30, 14)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := g.Lay(rich.Plain(tt.text).Normal(), image.Rect(0, 0, tt.width, 0))
			if diff := cmp.Diff(tt.want, lines.Rects(tt.r)); diff != "" {
				t.Errorf("Rects(%v) mismatch (-want +got):\n%s", tt.r, diff)
			}
		})
	}
}

func TestGridLayoutSpans(t *testing.T) {
	txt, err := rich.NewText("one two", rich.Entry{
		Range: rich.Range{Start: 4, End: 7},
		Style: rich.NewStyle("k").Kern(rich.Normal, 2),
	})
	if err != nil {
		t.Fatal(err)
	}
	g := &GridLayout{Font: drawtest.NewFont(10, 14)}
	lines := g.Lay(txt.Normal(), image.Rectangle{})

	if len(lines) != 1 {
		t.Fatalf("got %d lines; want 1", len(lines))
	}
	var got []string
	var rects []image.Rectangle
	for _, f := range lines[0].Frags {
		got = append(got, f.Text)
		rects = append(rects, f.Rect)
	}
	if diff := cmp.Diff([]string{"one ", "two"}, got); diff != "" {
		t.Errorf("fragments (-want +got):\n%s", diff)
	}
	want := []image.Rectangle{image.Rect(0, 0, 40, 14), image.Rect(40, 0, 76, 14)}
	if diff := cmp.Diff(want, rects); diff != "" {
		t.Errorf("fragment rects (-want +got):\n%s", diff)
	}
}

func TestGridLayoutClipsToHeight(t *testing.T) {
	g := &GridLayout{Font: drawtest.NewFont(10, 14)}
	lines := g.Lay(rich.Plain("a\nb\nc").Normal(), image.Rect(0, 0, 100, 30))
	if len(lines) != 2 {
		t.Errorf("got %d lines in 30px; want 2", len(lines))
	}
	if got := lines.Rects(rich.Range{Start: 4, End: 5}); got != nil {
		t.Errorf("Rects for clipped line = %v; want none", got)
	}
}

// lineTexts joins the fragment texts of each line.
func lineTexts(lines Lines) []string {
	var out []string
	for _, ln := range lines {
		var s string
		for _, f := range ln.Frags {
			s += f.Text
		}
		out = append(out, s)
	}
	return out
}

func TestGridLayoutTruncation(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		r        image.Rectangle
		maxLines int
		brk      LineBreak
		want     []string
		size     image.Point
		rects    []image.Rectangle // for the whole text
	}{
		{
			name:     "max lines",
			text:     "a\nb\nc",
			maxLines: 2,
			want:     []string{"a", "b…"},
			size:     image.Pt(20, 28),
			rects:    []image.Rectangle{image.Rect(0, 0, 10, 14), image.Rect(0, 14, 10, 28)},
		},
		{
			name:     "ellipsis replaces the last cluster",
			text:     "abcdefgh",
			r:        image.Rect(0, 0, 40, 0),
			maxLines: 1,
			want:     []string{"abc…"},
			size:     image.Pt(40, 14),
			rects:    []image.Rectangle{image.Rect(0, 0, 30, 14)},
		},
		{
			name:     "clip",
			text:     "abcdefgh",
			r:        image.Rect(0, 0, 40, 0),
			maxLines: 1,
			brk:      Clip,
			want:     []string{"abcd"},
			size:     image.Pt(40, 14),
			rects:    []image.Rectangle{image.Rect(0, 0, 40, 14)},
		},
		{
			name:  "height",
			text:  "a\nb\nc",
			r:     image.Rect(0, 0, 100, 30),
			want:  []string{"a", "b…"},
			size:  image.Pt(20, 28),
			rects: []image.Rectangle{image.Rect(0, 0, 10, 14), image.Rect(0, 14, 10, 28)},
		},
		{
			name:     "everything fits",
			text:     "ab\ncd",
			maxLines: 2,
			want:     []string{"ab", "cd"},
			size:     image.Pt(20, 28),
			rects:    []image.Rectangle{image.Rect(0, 0, 20, 14), image.Rect(0, 14, 20, 28)},
		},
		{
			name:     "trailing newline is not cut text",
			text:     "ab\n",
			maxLines: 1,
			want:     []string{"ab"},
			size:     image.Pt(20, 14),
			rects:    []image.Rectangle{image.Rect(0, 0, 20, 14)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &GridLayout{Font: drawtest.NewFont(10, 14), MaxLines: tt.maxLines, LineBreak: tt.brk}
			txt := rich.Plain(tt.text)
			lines := g.Lay(txt.Normal(), tt.r)
			if diff := cmp.Diff(tt.want, lineTexts(lines)); diff != "" {
				t.Errorf("lines (-want +got):\n%s", diff)
			}
			if got := lines.Size(); got != tt.size {
				t.Errorf("Size() = %v; want %v", got, tt.size)
			}
			all := rich.Range{Start: 0, End: txt.Len()}
			if diff := cmp.Diff(tt.rects, lines.Rects(all)); diff != "" {
				t.Errorf("Rects (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGridLayoutAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align Alignment
		width int
		want  []image.Rectangle
	}{
		{"left", AlignLeft, 100, []image.Rectangle{image.Rect(0, 0, 20, 14), image.Rect(0, 14, 40, 28)}},
		{"center", AlignCenter, 100, []image.Rectangle{image.Rect(40, 0, 60, 14), image.Rect(30, 14, 70, 28)}},
		{"right", AlignRight, 100, []image.Rectangle{image.Rect(80, 0, 100, 14), image.Rect(60, 14, 100, 28)}},
		{"center without width", AlignCenter, 0, []image.Rectangle{image.Rect(10, 0, 30, 14), image.Rect(0, 14, 40, 28)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &GridLayout{Font: drawtest.NewFont(10, 14), Align: tt.align}
			lines := g.Lay(rich.Plain("ab\nabcd").Normal(), image.Rect(0, 0, tt.width, 0))
			if diff := cmp.Diff(tt.want, lines.Rects(rich.Range{Start: 0, End: 7})); diff != "" {
				t.Errorf("Rects (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLabelAlignmentMovesRegions(t *testing.T) {
	var ev events
	l := New(append(ev.options(), WithAlignment(AlignRight))...)
	l.SetText(linkText(t))
	l.Layout(image.Rect(0, 0, 200, 20))

	d := l.Text().Detections()[0]
	if diff := cmp.Diff([]image.Rectangle{image.Rect(110, 0, 150, 14)}, l.RectsFor(d)); diff != "" {
		t.Errorf("RectsFor (-want +got):\n%s", diff)
	}
	l.HandlePointer(down(5, 5))
	l.HandlePointer(up(5, 5))
	l.HandlePointer(down(115, 5))
	l.HandlePointer(up(115, 5))
	want := []string{"highlight 0 true", "click 0", "highlight 0 false"}
	if diff := cmp.Diff(want, ev.take()); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}
