package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

const (
	// MinSecret and MaxSecret bound the secret number, inclusive.
	MinSecret = 1
	MaxSecret = 100
)

var (
	// ErrInvalidGuess is returned by ParseGuess for input that is not a non-negative integer.
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrInputClosed is returned when input ends before a guess line is supplied.
	ErrInputClosed = errors.New("input closed")
	// ErrInvalidEncoding is returned when an input line is not valid UTF-8.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)

// NewSecret draws a secret number uniformly from [MinSecret, MaxSecret].
func NewSecret(rng *rand.Rand) uint32 {
	return uint32(MinSecret + rng.Intn(MaxSecret-MinSecret+1))
}

// ParseGuess trims surrounding whitespace from raw and parses the rest as a
// base-10 unsigned 32-bit integer. A single leading '+' is allowed.
func ParseGuess(raw string) (uint32, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidGuess, s, err)
	}
	return uint32(n), nil
}
