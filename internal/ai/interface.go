package ai

import (
	"context"
)

// Completer is the single external language-model capability the engine
// depends on: prompt in, text out. Everything else (classification,
// extraction, titling) is built on top of it, so any provider that can
// complete text can back the whole system.
type Completer interface {
	// Complete sends prompt to the model and returns the raw text reply.
	// temperature and maxTokens bound the generation; callers that parse
	// the reply keep temperature low.
	Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error)
}
