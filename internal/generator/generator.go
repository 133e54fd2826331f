// Package generator submits prompts to a generative text service.
package generator

import "context"

// Generator produces text from a prompt. One attempt per call; retry policy
// is the caller's concern and the pipeline deliberately has none.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Error wraps a failure from the generative service.
type Error struct {
	Cause error
}

func (e *Error) Error() string {
	return "failed to generate content: " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}
