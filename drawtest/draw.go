// Package drawtest contains a recording implementation of the draw
// interfaces for testing renderers without a window system.
package drawtest

import (
	"fmt"
	"image"
	"image/color"
	"sync"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rjkroege/richlabel/draw"
)

var _ = draw.Display((*mockDisplay)(nil))

// GettableDrawOps display implementations can provide a list of the
// executed draw ops.
type GettableDrawOps interface {
	DrawOps() []string
	Clear()
}

// mockDisplay implements draw.Display.
type mockDisplay struct {
	mu          sync.Mutex
	drawops     []string
	screenimage draw.Image
}

// NewDisplay returns a mock draw.Display whose screen is r.
func NewDisplay(r image.Rectangle) draw.Display {
	md := &mockDisplay{}
	md.screenimage = &mockImage{d: md, n: "screen", c: draw.Notacolor, r: r}
	return md
}

func (d *mockDisplay) ScreenImage() draw.Image { return d.screenimage }

func (d *mockDisplay) InitMouse() *draw.Mousectl       { return &draw.Mousectl{} }
func (d *mockDisplay) InitKeyboard() *draw.Keyboardctl { return &draw.Keyboardctl{} }

func (d *mockDisplay) OpenFont(name string) (draw.Font, error) { return NewFont(fwidth, fheight), nil }

func (d *mockDisplay) AllocImage(r image.Rectangle, pix draw.Pix, repl bool, val draw.Color) (draw.Image, error) {
	d.record(fmt.Sprintf("allocimage %v %s", r, ColourName(val)))
	return &mockImage{d: d, n: ColourName(val), c: val, r: r, repl: repl}, nil
}

func (d *mockDisplay) Attach(ref int) error { return nil }
func (d *mockDisplay) Flush() error         { d.record("flush"); return nil }

func (d *mockDisplay) DrawOps() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.drawops...)
}

func (d *mockDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drawops = nil
}

func (d *mockDisplay) record(op string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drawops = append(d.drawops, op)
}

var _ = draw.Image((*mockImage)(nil))

// mockImage implements draw.Image.
type mockImage struct {
	r    image.Rectangle
	d    *mockDisplay
	n    string
	c    draw.Color
	repl bool
}

func (i *mockImage) Display() draw.Display { return i.d }
func (i *mockImage) Pix() draw.Pix         { return 0 }
func (i *mockImage) R() image.Rectangle    { return i.r }
func (i *mockImage) Free() error           { return nil }

func (i *mockImage) Draw(r image.Rectangle, src, mask draw.Image, p1 image.Point) {
	i.d.record(fmt.Sprintf("%s <- fill %v %s", i.n, r, name(src)))
}

func (i *mockImage) Bytes(pt image.Point, src draw.Image, sp image.Point, f draw.Font, b []byte) image.Point {
	i.d.record(fmt.Sprintf("%s <- string %q at %v %s", i.n, string(b), pt, name(src)))
	return pt.Add(image.Pt(f.BytesWidth(b), 0))
}

func name(i draw.Image) string {
	if mi, ok := i.(*mockImage); ok {
		return mi.n
	}
	return "nil"
}

// ColourName names c by its hex value, or by the 9fans constant for the
// special values.
func ColourName(c draw.Color) string {
	switch c {
	case draw.Notacolor:
		return "Notacolor"
	case draw.Transparent:
		return "Transparent"
	}
	rgba := color.RGBA{R: uint8(c >> 24), G: uint8(c >> 16), B: uint8(c >> 8), A: uint8(c)}
	cf, _ := colorful.MakeColor(rgba)
	if rgba.A != 0xff {
		return fmt.Sprintf("%s/%02x", cf.Hex(), rgba.A)
	}
	return cf.Hex()
}

const (
	fwidth  = 10
	fheight = 14
)

var _ = draw.Font((*mockFont)(nil))

// mockFont implements draw.Font and mocks as a fixed width font.
type mockFont struct {
	width, height int
}

// NewFont returns a draw.Font that mocks a fixed-width font. Widths
// count runes, so a multi-rune grapheme is wider than one cell.
func NewFont(width, height int) draw.Font {
	return &mockFont{width: width, height: height}
}

func (f *mockFont) Name() string             { return fmt.Sprintf("mock%dx%d", f.width, f.height) }
func (f *mockFont) Height() int              { return f.height }
func (f *mockFont) BytesWidth(b []byte) int  { return f.width * utf8.RuneCount(b) }
func (f *mockFont) StringWidth(s string) int { return f.width * utf8.RuneCountInString(s) }
