package llm

import (
	"context"
	"fmt"
)

// NoOp answers without calling any provider.
// This is useful for local development and tests when no API key is available.
type NoOp struct{}

// NewNoOp creates a new NoOp completer.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Complete returns a fixed acknowledgement of the prompt.
func (n *NoOp) Complete(_ context.Context, prompt, contextText string) (string, error) {
	if contextText == "" {
		return fmt.Sprintf("[noop] %s", prompt), nil
	}
	return fmt.Sprintf("[noop] %s (with %d bytes of context)", prompt, len(contextText)), nil
}
