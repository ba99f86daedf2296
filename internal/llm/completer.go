// Package llm holds the model clients the answer chain can call. Every client
// performs exactly one request per Complete call; none of them retry.
package llm

import (
	"context"

	"github.com/katakuxiko/answerchain/internal/model"
)

// Completion is the raw result of one model call. Content keeps every text
// segment the provider returned, in order; deciding whether any of it is a
// usable answer is left to the caller.
type Completion struct {
	Provider         string
	Model            string
	Content          []string
	FinishReason     string
	PromptTokens     int
	CompletionTokens int
}

// Completer sends prompt text to a model and returns its completion.
type Completer interface {
	Name() string
	Complete(ctx context.Context, prompt string) (*Completion, error)
}

// ModelLister is implemented by completers that can enumerate the models
// available behind their endpoint.
type ModelLister interface {
	ListModels(ctx context.Context) ([]model.ModelInfo, error)
}

// Options are the sampling parameters shared by all providers.
type Options struct {
	Model       string
	Temperature float32
	MaxTokens   int
}
