// Package label is an interactive view over a rich.Text. It owns the
// view's render state (the text, whether it is enabled, and which
// detection is highlighted), lays the text out to find where each
// pressable detection sits, and turns pointer input into highlight
// and click callbacks.
//
// A Label is confined to the goroutine running the event loop.
package label

import (
	"image"
	"io"
	"log"

	"github.com/rjkroege/richlabel/draw"
	"github.com/rjkroege/richlabel/interact"
	"github.com/rjkroege/richlabel/internal/ui"
	"github.com/rjkroege/richlabel/rich"
)

type Label struct {
	text    *rich.Text
	enabled bool
	active  *rich.Detection

	machine *interact.Machine
	mouse   *ui.MouseState
	pressed rich.Detection

	layout   Layouter
	font     draw.Font
	maxLines int
	align    Alignment
	brk      LineBreak
	rect     image.Rectangle
	lines    Lines
	laid     bool

	inherited rich.Attrs
	content   rich.Content
	key       contentKey

	colors map[draw.Color]draw.Image

	log         *log.Logger
	onClick     func(*Label, rich.Detection)
	onHighlight func(*Label, rich.Detection, bool)
}

// contentKey selects one of the text's resolutions.
type contentKey struct {
	valid   bool
	enabled bool
	active  int // -1 for none
}

// New creates an enabled Label with empty text.
func New(opts ...Option) *Label {
	l := &Label{
		text:    rich.Plain(""),
		enabled: true,
		machine: interact.NewMachine(),
		mouse:   ui.NewMouseState(),
		colors:  make(map[draw.Color]draw.Image),
	}
	for _, o := range opts {
		o(l)
	}
	if l.log == nil {
		l.log = log.New(io.Discard, "", 0)
	}
	if l.font == nil {
		l.font = draw.Fixed7x13()
	}
	if l.layout == nil {
		l.layout = &GridLayout{Font: l.font, MaxLines: l.maxLines, Align: l.align, LineBreak: l.brk}
	}
	l.machine.OnHighlight = l.highlightChanged
	l.machine.OnClick = l.clicked
	return l
}

// Text returns the current text.
func (l *Label) Text() *rich.Text { return l.text }

// SetText cancels any press, as a release outside would, and then
// installs t. Until the next Layout nothing can be pressed. A nil t is
// empty text.
func (l *Label) SetText(t *rich.Text) {
	l.machine.Reset()
	l.mouse.Reset()
	if t == nil {
		t = rich.Plain("")
	}
	l.text = t
	l.active = nil
	l.lines = nil
	l.laid = false
	l.machine.SetRegions(nil)
	l.key = contentKey{}
	l.log.Printf("label: text %q with %d detections", t.String(), len(t.Detections()))
}

// Enabled reports whether the label accepts presses.
func (l *Label) Enabled() bool { return l.enabled }

// SetEnabled turns the label on or off. Turning it off cancels any
// press without a click and shows the disabled resolution.
func (l *Label) SetEnabled(enabled bool) {
	if enabled == l.enabled {
		return
	}
	l.machine.SetEnabled(enabled)
	l.enabled = enabled
	if !enabled {
		l.active = nil
		l.mouse.Reset()
	}
	l.log.Printf("label: enabled %v", enabled)
}

// Active returns the detection currently highlighted.
func (l *Label) Active() (rich.Detection, bool) {
	if l.active == nil {
		return rich.Detection{}, false
	}
	return *l.active, true
}

// Rect returns the rectangle passed to the last Layout.
func (l *Label) Rect() image.Rectangle { return l.rect }

// Content returns the inherited attributes overlaid by the resolution
// for the current enabled flag and active detection.
func (l *Label) Content() rich.Content {
	key := contentKey{valid: true, enabled: l.enabled, active: -1}
	if l.active != nil {
		key.active = l.active.ID
	}
	if key == l.key {
		return l.content
	}
	var c rich.Content
	switch {
	case !l.enabled:
		c = l.text.Disabled()
	case l.active != nil:
		c = l.text.Highlighted(*l.active)
	default:
		c = l.text.Normal()
	}
	l.content = c.Under(l.inherited)
	l.key = key
	return l.content
}

// Layout lays the text out in r and installs a hit region for every
// detection that has a highlighted style. Detections without one stay
// inert.
func (l *Label) Layout(r image.Rectangle) {
	l.rect = r
	l.lines = l.layout.Lay(l.Content(), r.Sub(r.Min))
	l.laid = true

	var regions []interact.Region
	for _, d := range l.text.Interactive() {
		rects := l.lines.Rects(d.Range)
		if len(rects) == 0 {
			continue
		}
		regions = append(regions, interact.Region{ID: d.ID, Rects: rects})
	}
	l.machine.SetRegions(regions)
	l.log.Printf("label: layout %v, %d lines, %d regions", r, len(l.lines), len(regions))
}

// RectsFor returns the rectangles, relative to the label, covering d
// in the last layout. It is empty for a detection of another text.
func (l *Label) RectsFor(d rich.Detection) []image.Rectangle {
	if !l.laid || !l.text.Owns(d) {
		return nil
	}
	return l.lines.Rects(d.Range)
}

// Size returns the extent the text needs when wrapped at width. A zero
// width does not wrap.
func (l *Label) Size(width int) image.Point {
	return l.layout.Lay(l.Content(), image.Rect(0, 0, width, 0)).Size()
}

// HandlePointer feeds ev, in label coordinates, to the press machine.
func (l *Label) HandlePointer(ev interact.Event) {
	act := l.machine.Handle(ev)
	l.log.Printf("label: %v at %v: %v", ev.Kind, ev.Pt, act)
}

// HandleMouse feeds a mouse sample in screen coordinates.
func (l *Label) HandleMouse(m draw.Mouse) {
	if ev, ok := l.mouse.Event(m, l.rect.Min); ok {
		l.HandlePointer(ev)
	}
}

func (l *Label) highlightChanged(id int, on bool) {
	if on {
		d, ok := l.text.Detection(id)
		if !ok {
			return
		}
		l.pressed = d
		l.active = &d
	} else {
		l.active = nil
	}
	l.log.Printf("label: highlight %v %v", l.pressed, on)
	if l.onHighlight != nil {
		l.onHighlight(l, l.pressed, on)
	}
}

func (l *Label) clicked(id int) {
	l.log.Printf("label: click %v", l.pressed)
	if l.onClick != nil {
		l.onClick(l, l.pressed)
	}
}
