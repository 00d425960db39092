package game

// Config holds game configuration options.
type Config struct {
	// Seed for the secret number draw. Used for reproducible games in tests.
	// A seed of 0 means a time-based seed.
	Seed int64
}
