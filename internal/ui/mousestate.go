// Package ui provides user interface utilities for richlabel.
package ui

import (
	"image"

	"github.com/rjkroege/richlabel/draw"
	"github.com/rjkroege/richlabel/interact"
)

const button1 = 1

// MouseState turns the sampled button state delivered by a Mousectl
// into the discrete pointer events the interaction machine consumes.
// Only button 1 presses. Chording another button while button 1 is
// down cancels the press, and everything is swallowed until all
// buttons are up again.
type MouseState struct {
	buttons int
	pressed bool
	chord   bool
}

// NewMouseState creates a MouseState with no buttons down.
func NewMouseState() *MouseState {
	return &MouseState{}
}

// Reset drops any press in progress. A button still held stays
// swallowed until it is released.
func (ms *MouseState) Reset() {
	*ms = MouseState{buttons: ms.buttons}
}

// Event converts the sample m into an event with coordinates relative
// to origin. The second result is false when the sample carries
// nothing for the machine, such as hover or swallowed chords.
func (ms *MouseState) Event(m draw.Mouse, origin image.Point) (interact.Event, bool) {
	prev := ms.buttons
	ms.buttons = m.Buttons
	ev := interact.Event{Pt: m.Point.Sub(origin)}

	if ms.chord {
		if m.Buttons == 0 {
			ms.chord = false
		}
		return ev, false
	}

	b1 := m.Buttons&button1 != 0
	others := m.Buttons&^button1 != 0

	if !ms.pressed {
		switch {
		case b1 && others:
			ms.chord = true
		case b1 && prev&button1 == 0:
			ms.pressed = true
			ev.Kind = interact.Down
			return ev, true
		}
		return ev, false
	}

	switch {
	case others:
		ms.pressed = false
		ms.chord = true
		ev.Kind = interact.Cancel
	case !b1:
		ms.pressed = false
		ev.Kind = interact.Up
	default:
		ev.Kind = interact.Move
	}
	return ev, true
}
