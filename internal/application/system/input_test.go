package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKeys is a KeyState backed by a set of held key names
type fakeKeys map[string]bool

func (k fakeKeys) IsPressed(name string) bool {
	return k[name]
}

func TestNewInputSystem(t *testing.T) {
	keys := fakeKeys{}

	sys := NewInputSystem(keys)

	require.NotNil(t, sys)
	assert.Equal(t, keys, sys.keys)
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name     string
		held     fakeKeys
		expected InputState
	}{
		{"nothing held", fakeKeys{}, InputState{}},
		{"up", fakeKeys{KeyArrowUp: true}, InputState{Up: true}},
		{"down", fakeKeys{KeyArrowDown: true}, InputState{Down: true}},
		{"left and right", fakeKeys{KeyArrowLeft: true, KeyArrowRight: true}, InputState{Left: true, Right: true}},
		{"space", fakeKeys{KeySpace: true}, InputState{Space: true}},
		{"enter", fakeKeys{KeyEnter: true}, InputState{Enter: true}},
		{"unknown keys ignored", fakeKeys{"KeyW": true}, InputState{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReadInput(tt.held))
			assert.Equal(t, tt.expected, NewInputSystem(tt.held).GetInput())
		})
	}
}

func TestEbitenKeys_UnknownName(t *testing.T) {
	assert.False(t, EbitenKeys{}.IsPressed("NotAKey"))
}

func TestEbitenKeys_CoversEveryLogicalKey(t *testing.T) {
	for _, name := range []string{KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight, KeySpace, KeyEnter} {
		_, ok := ebitenKeys[name]
		assert.True(t, ok, name)
	}
}
