// Package main is the entry point for the guessing game.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/guessgame/internal/game"
	"github.com/samdwyer/guessgame/internal/telemetry"
)

const version = "0.1.0"

func main() {
	if err := run(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// run plays one game over in and out. A nil error means the game was won.
func run(ctx context.Context, in io.Reader, out io.Writer) error {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx, telemetry.Config{
			ServiceName:    "guessgame",
			ServiceVersion: version,
			Attributes: []attribute.KeyValue{
				attribute.Int("game.secret_min", game.MinSecret),
				attribute.Int("game.secret_max", game.MaxSecret),
			},
		})
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	g := game.New(game.Config{}, in, out)
	return g.Run(ctx)
}

// setupOTelEnv maps our Honeycomb variables onto the standard OTEL_* ones.
// It reports whether an API key was found and tracing should be enabled.
func setupOTelEnv() bool {
	apiKey := os.Getenv("GUESSGAME_HONEYCOMB_API_KEY")
	if apiKey == "" {
		return false
	}

	dataset := os.Getenv("GUESSGAME_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "guessgame"
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
