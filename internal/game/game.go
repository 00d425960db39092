package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/guessgame/internal/telemetry"
)

const prompt = "Please input your guess."

// Game holds the entire game state.
type Game struct {
	in     *bufio.Reader
	out    io.Writer
	secret uint32
	state  State
	tracer trace.Tracer
}

// New creates a game reading guesses from in and writing to out.
// The secret number is drawn here and never changes afterwards.
func New(cfg Config, in io.Reader, out io.Writer) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &Game{
		in:     bufio.NewReader(in),
		out:    out,
		secret: NewSecret(rng),
		state:  StateAwaitingGuess,
		tracer: telemetry.Tracer("game"),
	}
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Run executes the guessing loop until the secret is guessed.
// It returns an error only when input can no longer be read or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	ctx, runSpan := g.tracer.Start(ctx, "game.run")
	defer runSpan.End()

	_, initSpan := g.tracer.Start(ctx, "game.init")
	fmt.Fprintln(g.out, "Guess the number!")
	fmt.Fprintf(g.out, "The secret number is: %d\n", g.secret)
	initSpan.SetAttributes(attribute.Int64("game.secret", int64(g.secret)))
	initSpan.End()

	attempts := 0
	for g.state == StateAwaitingGuess {
		if err := ctx.Err(); err != nil {
			return g.fail(runSpan, err)
		}

		raw, err := g.promptAndRead()
		if err != nil {
			return g.fail(runSpan, err)
		}

		attempts++
		g.attempt(ctx, raw)
	}

	runSpan.SetAttributes(
		attribute.Int("game.attempts", attempts),
		attribute.String("game.state", g.state.String()),
	)
	return nil
}

// fail marks the run span as failed and passes err through.
func (g *Game) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(attribute.String("game.state", g.state.String()))
	return err
}

// promptAndRead writes the prompt and blocks for one line of input.
// A final line without a trailing newline is still returned; only a read
// that yields nothing at end of input reports ErrInputClosed. Lines that are
// not valid UTF-8 are a read failure, not a bad guess.
func (g *Game) promptAndRead() (string, error) {
	fmt.Fprintln(g.out, prompt)

	line, err := g.in.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line == "":
		return "", ErrInputClosed
	case err != nil && !errors.Is(err, io.EOF):
		return "", fmt.Errorf("failed to read line: %w", err)
	case !utf8.ValidString(line):
		return "", fmt.Errorf("failed to read line: %w", ErrInvalidEncoding)
	}
	return line, nil
}

// attempt handles one line of input. Unparseable lines are dropped without output.
func (g *Game) attempt(ctx context.Context, raw string) {
	_, span := g.tracer.Start(ctx, "game.guess")
	defer span.End()

	guess, err := ParseGuess(raw)
	if err != nil {
		span.SetAttributes(attribute.Bool("guess.valid", false))
		return
	}

	outcome := Compare(guess, g.secret)
	span.SetAttributes(
		attribute.Bool("guess.valid", true),
		attribute.Int64("guess.value", int64(guess)),
		attribute.String("guess.outcome", outcome.String()),
	)

	g.report(guess, outcome)
}

// report prints the guess and its outcome, moving to StateWon on a match.
func (g *Game) report(guess uint32, outcome Outcome) {
	fmt.Fprintf(g.out, "You guessed: %d\n", guess)
	fmt.Fprintln(g.out, outcome.Message())

	if outcome == OutcomeEqual {
		g.state = StateWon
	}
}
