package entity

import "fmt"

// StateKind identifies the active character state
type StateKind int

const (
	StateIdle StateKind = iota
	StateRunning
	StateSliding
	StateJumping
	StateFalling
	StateKnockedOut
)

// String returns the string representation of the state
func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateSliding:
		return "Sliding"
	case StateJumping:
		return "Jumping"
	case StateFalling:
		return "Falling"
	case StateKnockedOut:
		return "KnockedOut"
	default:
		return "Unknown"
	}
}

// Animation describes the sprite animation of a state
type Animation struct {
	Name   string // Frame name prefix in the character sheet
	Frames int    // Simulated frames in one loop
}

// Animations maps every state to its animation
var Animations = map[StateKind]Animation{
	StateIdle:       {Name: "Idle", Frames: 29},
	StateRunning:    {Name: "Run", Frames: 23},
	StateSliding:    {Name: "Slide", Frames: 14},
	StateJumping:    {Name: "Jump", Frames: 35},
	StateFalling:    {Name: "Dead", Frames: 29},
	StateKnockedOut: {Name: "Dead", Frames: 29},
}

// FramesPerSprite is how many simulated frames each displayed sprite is held for
const FramesPerSprite = 3

// EventKind identifies an input to the character state machine
type EventKind int

const (
	EventRun EventKind = iota
	EventSlide
	EventJump
	EventUpdate
	EventLand
	EventKnockOut
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventRun:
		return "Run"
	case EventSlide:
		return "Slide"
	case EventJump:
		return "Jump"
	case EventUpdate:
		return "Update"
	case EventLand:
		return "Land"
	case EventKnockOut:
		return "KnockOut"
	default:
		return "Unknown"
	}
}

// Event is sent to the state machine. Y is only meaningful for EventLand.
type Event struct {
	Kind EventKind
	Y    int
}

var (
	Run      = Event{Kind: EventRun}
	Slide    = Event{Kind: EventSlide}
	Jump     = Event{Kind: EventJump}
	Update   = Event{Kind: EventUpdate}
	KnockOut = Event{Kind: EventKnockOut}
)

// Land creates a landing event for a surface whose top is at y
func Land(y int) Event {
	return Event{Kind: EventLand, Y: y}
}

// BoyState is the character state machine: exactly one state kind plus its context
type BoyState struct {
	Kind    StateKind
	Context Context
}

// NewBoyState returns the initial Idle state
func NewBoyState(p Physics) BoyState {
	return BoyState{Kind: StateIdle, Context: newContext(p)}
}

// Animation returns the animation of the current state
func (s BoyState) Animation() Animation {
	return Animations[s.Kind]
}

// FrameName returns the sprite name to display, e.g. "Run (3).png"
func (s BoyState) FrameName() string {
	return fmt.Sprintf("%s (%d).png", s.Animation().Name, s.Context.Frame/FramesPerSprite+1)
}

// Transition applies an event and returns the next state.
// Pairs that are not part of the transition table return the state unchanged.
func (s BoyState) Transition(e Event, p Physics) BoyState {
	switch s.Kind {
	case StateIdle:
		switch e.Kind {
		case EventRun:
			return s.to(StateRunning, s.Context.resetFrame().runRight(p))
		case EventUpdate:
			return s.advance(p)
		}

	case StateRunning:
		switch e.Kind {
		case EventSlide:
			return s.to(StateSliding, s.Context.resetFrame())
		case EventJump:
			return s.to(StateJumping, s.Context.setVerticalVelocity(p.JumpSpeed).resetFrame())
		case EventUpdate:
			return s.advance(p)
		case EventLand:
			return s.to(StateRunning, s.Context.setOn(e.Y, p))
		case EventKnockOut:
			return s.knockOut()
		}

	case StateSliding:
		switch e.Kind {
		case EventUpdate:
			next := s.advance(p)
			if next.Context.Frame >= next.Animation().Frames {
				return next.to(StateRunning, next.Context.resetFrame())
			}
			return next
		case EventLand:
			return s.to(StateSliding, s.Context.setOn(e.Y, p))
		case EventKnockOut:
			return s.knockOut()
		}

	case StateJumping:
		switch e.Kind {
		case EventUpdate:
			next := s.advance(p)
			if next.Context.Position.Y >= p.Floor {
				return next.Transition(Land(p.Height), p)
			}
			return next
		case EventLand:
			return s.to(StateRunning, s.Context.resetFrame().setOn(e.Y, p))
		case EventKnockOut:
			return s.knockOut()
		}

	case StateFalling:
		if e.Kind == EventUpdate {
			next := s.advance(p)
			if next.Context.Frame >= next.Animation().Frames {
				return next.to(StateKnockedOut, next.Context)
			}
			return next
		}

	case StateKnockedOut:
	}

	return s
}

func (s BoyState) to(kind StateKind, ctx Context) BoyState {
	return BoyState{Kind: kind, Context: ctx}
}

func (s BoyState) advance(p Physics) BoyState {
	return s.to(s.Kind, s.Context.Update(s.Animation().Frames, p))
}

func (s BoyState) knockOut() BoyState {
	return s.to(StateFalling, s.Context.resetFrame().stop())
}
