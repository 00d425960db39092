package game

// Outcome is the result of comparing a guess to the secret.
type Outcome int

const (
	// OutcomeTooSmall means the guess is below the secret.
	OutcomeTooSmall Outcome = iota
	// OutcomeTooBig means the guess is above the secret.
	OutcomeTooBig
	// OutcomeEqual means the guess matches the secret.
	OutcomeEqual
)

// Compare orders guess against secret.
func Compare(guess, secret uint32) Outcome {
	switch {
	case guess < secret:
		return OutcomeTooSmall
	case guess > secret:
		return OutcomeTooBig
	default:
		return OutcomeEqual
	}
}

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeTooSmall:
		return "too_small"
	case OutcomeTooBig:
		return "too_big"
	case OutcomeEqual:
		return "equal"
	default:
		return "unknown"
	}
}

// Message returns the line printed to the player for this outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeTooSmall:
		return "Too small!"
	case OutcomeTooBig:
		return "Too big!"
	case OutcomeEqual:
		return "You win!"
	default:
		return ""
	}
}
