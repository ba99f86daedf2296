package llm

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katakuxiko/answerchain/internal/chainerr"
	"github.com/katakuxiko/answerchain/internal/config"
)

// ErrUnknownProvider is returned by NewCompleter for an unsupported
// LLM_PROVIDER value.
var ErrUnknownProvider = errors.New("unknown llm provider")

// NewCompleter builds the completer selected by cfg.Provider. Every failure
// is a construction ChainError.
func NewCompleter(ctx context.Context, cfg *config.Config) (Completer, error) {
	opts := Options{
		Model:       cfg.ChatModelFor(cfg.Provider),
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}

	switch cfg.Provider {
	case ProviderLMStudio:
		return NewLMStudio(cfg.LMBaseURL, cfg.LMAPIKey, opts), nil
	case ProviderOpenAI:
		c, err := NewOpenAI(cfg.OpenAIKey, cfg.OpenAIBaseURL, opts)
		if err != nil {
			return nil, err
		}
		return c, nil
	case ProviderAnthropic:
		c, err := NewAnthropic(cfg.AnthropicKey, cfg.AnthropicBaseURL, opts)
		if err != nil {
			return nil, err
		}
		return c, nil
	case ProviderGemini:
		c, err := NewGemini(ctx, cfg.GeminiKey, cfg.GeminiBaseURL, opts)
		if err != nil {
			return nil, err
		}
		return c, nil
	case ProviderDryRun:
		return &DryRun{}, nil
	default:
		return nil, chainerr.New(chainerr.ErrorTypeConstruction,
			fmt.Sprintf("provider %q", cfg.Provider), ErrUnknownProvider)
	}
}
