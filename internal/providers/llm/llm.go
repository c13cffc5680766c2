package llm

import "context"

// Provider is the single outbound generative-model capability the pipeline
// needs: one prompt in, the full text reply out.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}
