package llm

import "context"

// Request is a single text-generation call against one model.
type Request struct {
	Model  string
	Prompt string
	// UnboundedThinking lifts the provider's reasoning budget where the
	// provider supports it. The fallback loop sets it only for the primary
	// model; providers without the notion ignore it.
	UnboundedThinking bool
}

// Generator abstracts a text-generation provider. Implementations return the
// raw model output; callers decide whether whitespace-only output is usable.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
