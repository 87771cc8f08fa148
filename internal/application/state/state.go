package state

// GameState represents the current state of the game
type GameState int

const (
	StateReady GameState = iota
	StateWalking
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateWalking:
		return "Walking"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
