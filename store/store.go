// Package store provides the shared prompt store for the adventure bot
package store

import "context"

// PromptStore holds the assembled system prompt for the deployment.
//
// The engine writes the prompt once when character creation finishes.
// LLM providers re-read the current value immediately before every
// generation call, so an out-of-band update takes effect on the very
// next turn.
type PromptStore interface {
	// Read returns the current prompt text. An empty string with a nil
	// error means no prompt has been written yet.
	Read(ctx context.Context) (string, error)

	// Write replaces the stored prompt text.
	Write(ctx context.Context, prompt string) error

	// Close releases any underlying connection.
	Close() error
}
