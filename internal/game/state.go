// Package game provides the guessing loop and its state.
package game

// State represents the current game state.
type State int

const (
	// StateAwaitingGuess is the initial state; the loop keeps prompting for guesses.
	StateAwaitingGuess State = iota
	// StateWon is terminal and is reached once a guess matches the secret.
	StateWon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAwaitingGuess:
		return "awaiting_guess"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}
