package port

import "context"

// CompletionClient abstracts the language-model text-completion endpoint.
// Implementations return the raw model text; no retries happen at this layer.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
