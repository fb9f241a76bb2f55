package interact

import "fmt"

// Action is what a transition does besides changing phase.
type Action uint8

const (
	actNone   Action = iota
	actPress         // start a session on the hit region
	actEnter         // pointer back over the pressed region
	actLeave         // pointer left the pressed region
	actCommit        // click
	actCancel        // end the session without a click
)

var actionNames = [...]string{
	actNone:   "none",
	actPress:  "press",
	actEnter:  "enter",
	actLeave:  "leave",
	actCommit: "commit",
	actCancel: "cancel",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", a)
}

// where locates an event: relative to any region when idle, relative to
// the pressed region when pressed. foreign is an event from a pointer
// other than the one holding the press.
type where uint8

const (
	outside where = iota
	inside
	foreign
)

func (w where) String() string {
	switch w {
	case outside:
		return "outside"
	case inside:
		return "inside"
	case foreign:
		return "foreign"
	}
	return fmt.Sprintf("where(%d)", w)
}

type trigger struct {
	phase Phase
	kind  Kind
	where where
}

type step struct {
	next Phase
	act  Action
}

// transitions is the complete behaviour of a Machine. Every
// (phase, kind, where) combination has an entry.
var transitions = map[trigger]step{
	{Idle, Down, outside}:   {Idle, actNone},
	{Idle, Down, inside}:    {Pressed, actPress},
	{Idle, Down, foreign}:   {Idle, actNone},
	{Idle, Move, outside}:   {Idle, actNone},
	{Idle, Move, inside}:    {Idle, actNone},
	{Idle, Move, foreign}:   {Idle, actNone},
	{Idle, Up, outside}:     {Idle, actNone},
	{Idle, Up, inside}:      {Idle, actNone},
	{Idle, Up, foreign}:     {Idle, actNone},
	{Idle, Cancel, outside}: {Idle, actNone},
	{Idle, Cancel, inside}:  {Idle, actNone},
	{Idle, Cancel, foreign}: {Idle, actNone},

	// A second contact never starts a competing session.
	{Pressed, Down, outside}:   {Pressed, actNone},
	{Pressed, Down, inside}:    {Pressed, actNone},
	{Pressed, Down, foreign}:   {Pressed, actNone},
	{Pressed, Move, outside}:   {Pressed, actLeave},
	{Pressed, Move, inside}:    {Pressed, actEnter},
	{Pressed, Move, foreign}:   {Pressed, actNone},
	{Pressed, Up, outside}:     {Idle, actCancel},
	{Pressed, Up, inside}:      {Idle, actCommit},
	{Pressed, Up, foreign}:     {Pressed, actNone},
	{Pressed, Cancel, outside}: {Idle, actCancel},
	{Pressed, Cancel, inside}:  {Idle, actCancel},
	{Pressed, Cancel, foreign}: {Pressed, actNone},
}
