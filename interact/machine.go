// Package interact tracks presses on detections drawn as one or more
// hit rectangles and decides when a press becomes a click.
//
// A Machine is confined to the goroutine that delivers pointer events.
// Callbacks run synchronously from Handle, SetRegions, SetEnabled and
// Reset, after the Machine has already moved to its new state, so a
// callback may call back into the Machine.
package interact

import (
	"fmt"
	"image"
)

// Kind is the type of a pointer event.
type Kind uint8

const (
	Down Kind = iota
	Move
	Up
	Cancel
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Event is a pointer event in view-local coordinates. Pointer
// distinguishes simultaneous contacts; a mouse is always pointer 0.
type Event struct {
	Kind    Kind
	Pt      image.Point
	Pointer int
}

// Region is the hit surface of one detection: the union of the
// rectangles covering its glyphs, which may wrap across lines.
type Region struct {
	ID    int
	Rects []image.Rectangle
}

// Contains reports whether pt lies in any rectangle of r.
func (r Region) Contains(pt image.Point) bool {
	for _, rc := range r.Rects {
		if pt.In(rc) {
			return true
		}
	}
	return false
}

// Phase is the state of a Machine.
type Phase uint8

const (
	Idle Phase = iota
	Pressed
)

func (p Phase) String() string {
	if p == Pressed {
		return "pressed"
	}
	return "idle"
}

// Machine is the press state machine for one view.
type Machine struct {
	// OnHighlight is called when the pressed detection becomes or stops
	// being highlighted. Calls with on=true and on=false alternate.
	OnHighlight func(id int, on bool)

	// OnClick is called once for a press released over its own region.
	OnClick func(id int)

	regions  []Region
	disabled bool

	phase   Phase
	id      int
	pointer int
	inside  bool
}

// NewMachine returns an enabled Machine with no hit regions.
func NewMachine() *Machine {
	return &Machine{}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Pressed returns the id of the detection holding the press session.
func (m *Machine) Pressed() (int, bool) {
	return m.id, m.phase == Pressed
}

// Active returns the id of the detection that is pressed and currently
// under the pointer, which is the one shown highlighted.
func (m *Machine) Active() (int, bool) {
	return m.id, m.phase == Pressed && m.inside
}

// Enabled reports whether the Machine accepts new presses.
func (m *Machine) Enabled() bool { return !m.disabled }

// Regions returns the installed hit regions.
func (m *Machine) Regions() []Region { return m.regions }

// SetRegions installs the hit regions computed by the last layout pass.
// Regions are searched last to first, so a later region sits on top of
// an earlier one. An empty list means no detection can be pressed. A
// press whose detection has no region any more is cancelled.
func (m *Machine) SetRegions(rs []Region) {
	m.regions = append([]Region(nil), rs...)
	if m.phase == Pressed {
		if _, ok := m.region(m.id); !ok {
			m.Reset()
		}
	}
}

// SetEnabled turns presses on or off. Disabling cancels a press in
// progress without a click.
func (m *Machine) SetEnabled(enabled bool) {
	if !enabled {
		m.Reset()
	}
	m.disabled = !enabled
}

// Reset cancels a press in progress as if it were released outside.
func (m *Machine) Reset() {
	if m.phase == Pressed {
		m.fire(trigger{Pressed, Cancel, outside}, Event{Kind: Cancel, Pointer: m.pointer})
	}
}

// HitTest returns the topmost region containing pt.
func (m *Machine) HitTest(pt image.Point) (int, bool) {
	for i := len(m.regions) - 1; i >= 0; i-- {
		if m.regions[i].Contains(pt) {
			return m.regions[i].ID, true
		}
	}
	return 0, false
}

// Handle feeds one pointer event through the transition table and
// returns the action taken.
func (m *Machine) Handle(ev Event) Action {
	return m.fire(trigger{m.phase, ev.Kind, m.locate(ev)}, ev)
}

func (m *Machine) fire(tr trigger, ev Event) Action {
	st, ok := transitions[tr]
	if !ok {
		panic(fmt.Sprintf("interact: no transition for %v %v %v", tr.phase, tr.kind, tr.where))
	}
	m.phase = st.next
	m.apply(st.act, ev)
	return st.act
}

func (m *Machine) locate(ev Event) where {
	switch {
	case m.phase == Pressed && ev.Pointer != m.pointer:
		return foreign
	case m.phase == Pressed:
		if r, ok := m.region(m.id); ok && r.Contains(ev.Pt) {
			return inside
		}
	case !m.disabled:
		if _, ok := m.HitTest(ev.Pt); ok {
			return inside
		}
	}
	return outside
}

func (m *Machine) region(id int) (Region, bool) {
	for _, r := range m.regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

func (m *Machine) apply(act Action, ev Event) {
	switch act {
	case actPress:
		id, _ := m.HitTest(ev.Pt)
		m.id, m.pointer, m.inside = id, ev.Pointer, true
		m.highlight(id, true)
	case actEnter:
		if !m.inside {
			m.inside = true
			m.highlight(m.id, true)
		}
	case actLeave:
		if m.inside {
			m.inside = false
			m.highlight(m.id, false)
		}
	case actCommit:
		id, was := m.id, m.inside
		m.inside = false
		if m.OnClick != nil {
			m.OnClick(id)
		}
		if was {
			m.highlight(id, false)
		}
	case actCancel:
		id, was := m.id, m.inside
		m.inside = false
		if was {
			m.highlight(id, false)
		}
	}
}

func (m *Machine) highlight(id int, on bool) {
	if m.OnHighlight != nil {
		m.OnHighlight(id, on)
	}
}
