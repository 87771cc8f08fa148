package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestState(kind StateKind) BoyState {
	return BoyState{
		Kind: kind,
		Context: Context{
			Frame:    5,
			Position: Point{X: 40, Y: 300},
			Velocity: Point{X: 4, Y: 2},
		},
	}
}

func allEvents() []Event {
	return []Event{Run, Slide, Jump, Update, Land(420), KnockOut}
}

func TestStateKind_String(t *testing.T) {
	tests := []struct {
		kind     StateKind
		expected string
	}{
		{StateIdle, "Idle"},
		{StateRunning, "Running"},
		{StateSliding, "Sliding"},
		{StateJumping, "Jumping"},
		{StateFalling, "Falling"},
		{StateKnockedOut, "KnockedOut"},
		{StateKind(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "Run", EventRun.String())
	assert.Equal(t, "Land", Land(3).Kind.String())
	assert.Equal(t, "KnockOut", EventKnockOut.String())
	assert.Equal(t, "Unknown", EventKind(-1).String())
}

func TestNewBoyState(t *testing.T) {
	p := DefaultPhysics()
	s := NewBoyState(p)

	assert.Equal(t, StateIdle, s.Kind)
	assert.Equal(t, 0, s.Context.Frame)
	assert.Equal(t, Point{X: -20, Y: 449}, s.Context.Position)
	assert.Equal(t, Point{}, s.Context.Velocity)
	assert.Equal(t, "Idle (1).png", s.FrameName())
}

func TestBoyState_TransitionTargets(t *testing.T) {
	p := DefaultPhysics()

	tests := []struct {
		from     StateKind
		event    Event
		expected StateKind
	}{
		{StateIdle, Run, StateRunning},
		{StateIdle, Update, StateIdle},
		{StateRunning, Slide, StateSliding},
		{StateRunning, Jump, StateJumping},
		{StateRunning, Update, StateRunning},
		{StateRunning, Land(420), StateRunning},
		{StateRunning, KnockOut, StateFalling},
		{StateSliding, Update, StateSliding},
		{StateSliding, Land(420), StateSliding},
		{StateSliding, KnockOut, StateFalling},
		{StateJumping, Update, StateJumping},
		{StateJumping, Land(420), StateRunning},
		{StateJumping, KnockOut, StateFalling},
		{StateFalling, Update, StateFalling},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.event.Kind.String(), func(t *testing.T) {
			next := createTestState(tt.from).Transition(tt.event, p)
			assert.Equal(t, tt.expected, next.Kind)
		})
	}
}

func TestBoyState_UnlistedPairsAreIgnored(t *testing.T) {
	p := DefaultPhysics()

	ignored := map[StateKind][]Event{
		StateIdle:       {Slide, Jump, Land(420), KnockOut},
		StateRunning:    {Run},
		StateSliding:    {Run, Slide, Jump},
		StateJumping:    {Run, Slide, Jump},
		StateFalling:    {Run, Slide, Jump, Land(420), KnockOut},
		StateKnockedOut: allEvents(),
	}

	for kind, events := range ignored {
		for _, e := range events {
			t.Run(kind.String()+"/"+e.Kind.String(), func(t *testing.T) {
				s := createTestState(kind)
				assert.Equal(t, s, s.Transition(e, p))
			})
		}
	}
}

func TestBoyState_KnockedOutIsAbsorbing(t *testing.T) {
	p := DefaultPhysics()
	s := createTestState(StateKnockedOut)

	for i := 0; i < 100; i++ {
		for _, e := range allEvents() {
			s = s.Transition(e, p)
			require.Equal(t, StateKnockedOut, s.Kind)
		}
	}
	assert.Equal(t, createTestState(StateKnockedOut), s)
}

func TestBoyState_RunFromIdle(t *testing.T) {
	p := DefaultPhysics()

	s := NewBoyState(p).Transition(Update, p).Transition(Update, p)
	require.Equal(t, 2, s.Context.Frame)

	s = s.Transition(Run, p)

	assert.Equal(t, StateRunning, s.Kind)
	assert.Equal(t, 0, s.Context.Frame)
	assert.Equal(t, p.RunningSpeed, s.Context.Velocity.X)
	assert.Equal(t, "Run (1).png", s.FrameName())
}

func TestBoyState_JumpLandsOnFloorAfterFiftyUpdates(t *testing.T) {
	p := DefaultPhysics()

	s := NewBoyState(p).Transition(Run, p).Transition(Jump, p)
	require.Equal(t, StateJumping, s.Kind)
	require.Equal(t, p.JumpSpeed, s.Context.Velocity.Y)

	updates := 0
	for s.Kind == StateJumping {
		s = s.Transition(Update, p)
		updates++
		require.Less(t, updates, 1000)
	}

	assert.Equal(t, 50, updates)
	assert.Equal(t, StateRunning, s.Kind)
	assert.Equal(t, p.Floor, s.Context.Position.Y)
	assert.Equal(t, 0, s.Context.Frame)
	assert.Equal(t, p.RunningSpeed, s.Context.Velocity.X, "horizontal speed survives the jump")
}

func TestBoyState_SlideReturnsToRunning(t *testing.T) {
	p := DefaultPhysics()

	s := NewBoyState(p).Transition(Run, p).Transition(Slide, p)
	require.Equal(t, StateSliding, s.Kind)

	for i := 1; i < 14; i++ {
		s = s.Transition(Update, p)
		require.Equal(t, StateSliding, s.Kind, "update %d", i)
	}

	s = s.Transition(Update, p)
	assert.Equal(t, StateRunning, s.Kind)
	assert.Equal(t, 0, s.Context.Frame)
	assert.Equal(t, p.RunningSpeed, s.Context.Velocity.X)
}

func TestBoyState_FallingBecomesKnockedOut(t *testing.T) {
	p := DefaultPhysics()

	s := NewBoyState(p).Transition(Run, p).Transition(KnockOut, p)
	require.Equal(t, StateFalling, s.Kind)
	assert.Equal(t, 0, s.Context.Velocity.X, "knock out stops the boy")
	assert.Equal(t, "Dead (1).png", s.FrameName())

	for i := 1; i < 29; i++ {
		s = s.Transition(Update, p)
		require.Equal(t, StateFalling, s.Kind, "update %d", i)
	}

	s = s.Transition(Update, p)
	assert.Equal(t, StateKnockedOut, s.Kind)
	assert.Equal(t, "Dead (10).png", s.FrameName())
}

func TestBoyState_LandPlacesFeetOnSurface(t *testing.T) {
	p := DefaultPhysics()

	tests := []struct {
		name  string
		from  StateKind
		y     int
		wantY int
	}{
		{"running on ground", StateRunning, 570, 449},
		{"running on low platform", StateRunning, 420, 299},
		{"sliding on high platform", StateSliding, 375, 254},
		{"jumping onto platform", StateJumping, 420, 299},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestState(tt.from).Transition(Land(tt.y), p)
			assert.Equal(t, tt.wantY, s.Context.Position.Y)
		})
	}
}

func TestBoyState_JumpingLandResetsFrame(t *testing.T) {
	p := DefaultPhysics()

	s := createTestState(StateJumping).Transition(Land(420), p)

	assert.Equal(t, 0, s.Context.Frame)
}

func TestBoyState_FrameName(t *testing.T) {
	tests := []struct {
		kind     StateKind
		frame    int
		expected string
	}{
		{StateIdle, 0, "Idle (1).png"},
		{StateIdle, 2, "Idle (1).png"},
		{StateIdle, 3, "Idle (2).png"},
		{StateIdle, 29, "Idle (10).png"},
		{StateRunning, 23, "Run (8).png"},
		{StateSliding, 14, "Slide (5).png"},
		{StateJumping, 35, "Jump (12).png"},
		{StateFalling, 0, "Dead (1).png"},
		{StateKnockedOut, 29, "Dead (10).png"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			s := BoyState{Kind: tt.kind, Context: Context{Frame: tt.frame}}
			assert.Equal(t, tt.expected, s.FrameName())
		})
	}
}
