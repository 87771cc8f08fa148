package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Logical key names
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeySpace      = "Space"
	KeyEnter      = "Enter"
)

// KeyState answers whether a logical key is currently held
type KeyState interface {
	IsPressed(name string) bool
}

// InputState holds the current input state
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Space bool
	Enter bool
}

// InputSystem samples held keys once per frame
type InputSystem struct {
	keys KeyState
}

// NewInputSystem creates a new input system
func NewInputSystem(keys KeyState) *InputSystem {
	return &InputSystem{keys: keys}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return ReadInput(s.keys)
}

// ReadInput samples every logical key
func ReadInput(keys KeyState) InputState {
	return InputState{
		Up:    keys.IsPressed(KeyArrowUp),
		Down:  keys.IsPressed(KeyArrowDown),
		Left:  keys.IsPressed(KeyArrowLeft),
		Right: keys.IsPressed(KeyArrowRight),
		Space: keys.IsPressed(KeySpace),
		Enter: keys.IsPressed(KeyEnter),
	}
}

var ebitenKeys = map[string]ebiten.Key{
	KeyArrowUp:    ebiten.KeyArrowUp,
	KeyArrowDown:  ebiten.KeyArrowDown,
	KeyArrowLeft:  ebiten.KeyArrowLeft,
	KeyArrowRight: ebiten.KeyArrowRight,
	KeySpace:      ebiten.KeySpace,
	KeyEnter:      ebiten.KeyEnter,
}

// EbitenKeys reads the keyboard through ebiten
type EbitenKeys struct{}

// IsPressed reports whether the named key is held. Unknown names are never pressed.
func (EbitenKeys) IsPressed(name string) bool {
	key, ok := ebitenKeys[name]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(key)
}
