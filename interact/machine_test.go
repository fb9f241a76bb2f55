package interact

import (
	"fmt"
	"image"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recorder collects callbacks as strings in delivery order.
type recorder struct {
	log []string
}

func (r *recorder) attach(m *Machine) *Machine {
	m.OnHighlight = func(id int, on bool) { r.log = append(r.log, fmt.Sprintf("highlight %d %v", id, on)) }
	m.OnClick = func(id int) { r.log = append(r.log, fmt.Sprintf("click %d", id)) }
	return m
}

func (r *recorder) count(s string) int {
	n := 0
	for _, l := range r.log {
		if l == s {
			n++
		}
	}
	return n
}

// A detection wrapped over two lines, and one more on the third line.
var (
	wrapped = Region{ID: 0, Rects: []image.Rectangle{
		image.Rect(60, 0, 100, 10),
		image.Rect(0, 10, 30, 20),
	}}
	single = Region{ID: 1, Rects: []image.Rectangle{image.Rect(0, 20, 40, 30)}}

	inFirst  = image.Pt(70, 5)
	inSecond = image.Pt(10, 15)
	inSingle = image.Pt(5, 25)
	nowhere  = image.Pt(45, 5)
)

func newTestMachine() (*Machine, *recorder) {
	r := &recorder{}
	m := r.attach(NewMachine())
	m.SetRegions([]Region{wrapped, single})
	return m, r
}

func ev(k Kind, pt image.Point) Event { return Event{Kind: k, Pt: pt} }

func TestTransitionTableIsTotal(t *testing.T) {
	for _, p := range []Phase{Idle, Pressed} {
		for _, k := range []Kind{Down, Move, Up, Cancel} {
			for _, w := range []where{outside, inside, foreign} {
				if _, ok := transitions[trigger{p, k, w}]; !ok {
					t.Errorf("no transition for %v %v %v", p, k, w)
				}
			}
		}
	}
}

func TestPressAndReleaseInside(t *testing.T) {
	m, r := newTestMachine()

	if act := m.Handle(ev(Down, inFirst)); act != actPress {
		t.Errorf("down: action %v; want press", act)
	}
	if id, ok := m.Active(); !ok || id != 0 {
		t.Errorf("Active() = %d, %v; want 0, true", id, ok)
	}
	m.Handle(ev(Move, inFirst))
	if act := m.Handle(ev(Up, inFirst)); act != actCommit {
		t.Errorf("up: action %v; want commit", act)
	}

	want := []string{"highlight 0 true", "click 0", "highlight 0 false"}
	if diff := cmp.Diff(want, r.log); diff != "" {
		t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
	}
	if m.Phase() != Idle {
		t.Errorf("phase %v; want idle", m.Phase())
	}
	if _, ok := m.Active(); ok {
		t.Error("still active after release")
	}
}

func TestDragAcrossLineBreakKeepsPress(t *testing.T) {
	m, r := newTestMachine()

	m.Handle(ev(Down, inFirst))
	m.Handle(ev(Move, inSecond))
	m.Handle(ev(Up, inSecond))

	want := []string{"highlight 0 true", "click 0", "highlight 0 false"}
	if diff := cmp.Diff(want, r.log); diff != "" {
		t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
	}
}

func TestWanderOutAndBack(t *testing.T) {
	m, r := newTestMachine()

	m.Handle(ev(Down, inFirst))
	m.Handle(ev(Move, nowhere))
	if _, ok := m.Active(); ok {
		t.Error("active while outside")
	}
	if _, ok := m.Pressed(); !ok {
		t.Error("press session lost while outside")
	}
	m.Handle(ev(Move, nowhere))
	m.Handle(ev(Move, inSecond))
	m.Handle(ev(Up, nowhere))

	want := []string{
		"highlight 0 true",
		"highlight 0 false",
		"highlight 0 true",
		"highlight 0 false",
	}
	if diff := cmp.Diff(want, r.log); diff != "" {
		t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
	}
}

func TestReleaseOutsideAfterLeaving(t *testing.T) {
	m, r := newTestMachine()

	m.Handle(ev(Down, inFirst))
	m.Handle(ev(Move, nowhere))
	if act := m.Handle(ev(Up, nowhere)); act != actCancel {
		t.Errorf("up outside: action %v; want cancel", act)
	}
	want := []string{"highlight 0 true", "highlight 0 false"}
	if diff := cmp.Diff(want, r.log); diff != "" {
		t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
	}
}

func TestReleaseOverOtherRegionCancels(t *testing.T) {
	m, r := newTestMachine()

	m.Handle(ev(Down, inFirst))
	m.Handle(ev(Up, inSingle))

	if r.count("click 0") != 0 || r.count("click 1") != 0 {
		t.Errorf("release over another detection clicked: %v", r.log)
	}
}

func TestReleaseInsideWithoutMoveBackCommits(t *testing.T) {
	m, r := newTestMachine()

	m.Handle(ev(Down, inFirst))
	m.Handle(ev(Move, nowhere))
	m.Handle(ev(Up, inSecond))

	want := []string{"highlight 0 true", "highlight 0 false", "click 0"}
	if diff := cmp.Diff(want, r.log); diff != "" {
		t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
	}
}

func TestIdleEventsAreNoOps(t *testing.T) {
	m, r := newTestMachine()

	for _, e := range []Event{ev(Up, inFirst), ev(Move, inFirst), ev(Cancel, inFirst), ev(Down, nowhere), ev(Up, nowhere)} {
		if act := m.Handle(e); act != actNone {
			t.Errorf("%v while idle: action %v; want none", e.Kind, act)
		}
	}
	if len(r.log) != 0 {
		t.Errorf("callbacks fired while idle: %v", r.log)
	}
}

func TestSecondPointerIgnored(t *testing.T) {
	m, r := newTestMachine()

	m.Handle(Event{Kind: Down, Pt: inFirst, Pointer: 1})
	m.Handle(Event{Kind: Down, Pt: inSingle, Pointer: 2})
	m.Handle(Event{Kind: Move, Pt: nowhere, Pointer: 2})
	m.Handle(Event{Kind: Up, Pt: inSingle, Pointer: 2})
	if id, ok := m.Active(); !ok || id != 0 {
		t.Fatalf("second pointer disturbed the press: %d, %v", id, ok)
	}
	m.Handle(Event{Kind: Up, Pt: inFirst, Pointer: 1})

	want := []string{"highlight 0 true", "click 0", "highlight 0 false"}
	if diff := cmp.Diff(want, r.log); diff != "" {
		t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
	}
}

func TestCancelEvent(t *testing.T) {
	m, r := newTestMachine()

	m.Handle(ev(Down, inSingle))
	if act := m.Handle(ev(Cancel, inSingle)); act != actCancel {
		t.Errorf("cancel: action %v", act)
	}
	want := []string{"highlight 1 true", "highlight 1 false"}
	if diff := cmp.Diff(want, r.log); diff != "" {
		t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
	}
}

func TestDisableWhilePressed(t *testing.T) {
	m, r := newTestMachine()

	m.Handle(ev(Down, inFirst))
	m.SetEnabled(false)
	if m.Phase() != Idle {
		t.Fatalf("phase %v after disable; want idle", m.Phase())
	}
	m.Handle(ev(Up, inFirst))
	m.Handle(ev(Down, inFirst))
	if m.Phase() != Idle {
		t.Error("a disabled machine accepted a press")
	}

	m.SetEnabled(true)
	m.Handle(ev(Down, inFirst))
	if m.Phase() != Pressed {
		t.Error("re-enabled machine ignored a press")
	}

	want := []string{"highlight 0 true", "highlight 0 false", "highlight 0 true"}
	if diff := cmp.Diff(want, r.log); diff != "" {
		t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
	}
}

func TestNoRegionsNeverPresses(t *testing.T) {
	r := &recorder{}
	m := r.attach(NewMachine())

	m.Handle(ev(Down, inFirst))
	m.Handle(ev(Up, inFirst))
	if m.Phase() != Idle || len(r.log) != 0 {
		t.Errorf("pressed without regions: %v %v", m.Phase(), r.log)
	}
}

func TestSetRegionsDropsPressedRegion(t *testing.T) {
	m, r := newTestMachine()

	m.Handle(ev(Down, inSingle))
	m.SetRegions([]Region{single})
	if m.Phase() != Pressed {
		t.Fatal("press lost although its region survived")
	}
	m.SetRegions([]Region{wrapped})
	if m.Phase() != Idle {
		t.Fatal("press kept after its region vanished")
	}
	want := []string{"highlight 1 true", "highlight 1 false"}
	if diff := cmp.Diff(want, r.log); diff != "" {
		t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
	}
}

func TestHitTestTopmost(t *testing.T) {
	under := Region{ID: 4, Rects: []image.Rectangle{image.Rect(0, 0, 50, 50)}}
	over := Region{ID: 7, Rects: []image.Rectangle{image.Rect(10, 10, 20, 20)}}
	m := NewMachine()
	m.SetRegions([]Region{under, over})

	if id, ok := m.HitTest(image.Pt(15, 15)); !ok || id != 7 {
		t.Errorf("HitTest over both = %d, %v; want 7", id, ok)
	}
	if id, ok := m.HitTest(image.Pt(30, 30)); !ok || id != 4 {
		t.Errorf("HitTest under only = %d, %v; want 4", id, ok)
	}
	if _, ok := m.HitTest(image.Pt(60, 60)); ok {
		t.Error("HitTest found a region outside all rectangles")
	}
}

func TestCallbackMayReset(t *testing.T) {
	m, r := newTestMachine()
	m.OnClick = func(id int) {
		r.log = append(r.log, fmt.Sprintf("click %d", id))
		m.Reset()
		m.SetRegions(nil)
	}

	m.Handle(ev(Down, inFirst))
	m.Handle(ev(Up, inFirst))

	want := []string{"highlight 0 true", "click 0", "highlight 0 false"}
	if diff := cmp.Diff(want, r.log); diff != "" {
		t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
	}
}

// Random sessions over the wrapped region: a click happens exactly when
// the session ends with an up inside, and highlights always balance.
func TestRandomSessions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	points := []image.Point{inFirst, inSecond, nowhere, image.Pt(99, 9), image.Pt(0, 10), image.Pt(30, 15)}

	for i := 0; i < 500; i++ {
		m, r := newTestMachine()
		m.Handle(ev(Down, inFirst))
		for n := rng.Intn(8); n > 0; n-- {
			m.Handle(ev(Move, points[rng.Intn(len(points))]))
		}
		end := points[rng.Intn(len(points))]
		kind := Up
		if rng.Intn(4) == 0 {
			kind = Cancel
		}
		m.Handle(ev(kind, end))

		wantClicks := 0
		if kind == Up && wrapped.Contains(end) {
			wantClicks = 1
		}
		if got := r.count("click 0"); got != wantClicks {
			t.Fatalf("session %d (%v at %v): %d clicks; want %d: %v", i, kind, end, got, wantClicks, r.log)
		}
		if on, off := r.count("highlight 0 true"), r.count("highlight 0 false"); on != off {
			t.Fatalf("session %d: %d highlights on, %d off: %v", i, on, off, r.log)
		}
		if m.Phase() != Idle {
			t.Fatalf("session %d ended in %v", i, m.Phase())
		}
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{Down.String(), "down"},
		{Cancel.String(), "cancel"},
		{Kind(9).String(), "kind(9)"},
		{Pressed.String(), "pressed"},
		{Idle.String(), "idle"},
		{actCommit.String(), "commit"},
		{Action(40).String(), "action(40)"},
		{foreign.String(), "foreign"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q; want %q", tt.got, tt.want)
		}
	}
}
