package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/katakuxiko/answerchain/internal/llm"
	"github.com/katakuxiko/answerchain/internal/model"
	"github.com/katakuxiko/answerchain/internal/prompt"
	"github.com/katakuxiko/answerchain/internal/util"
)

const previewRunes = 120

// AnswerChain answers a question using only the context passed with it:
// render the prompt, call the model once, parse the text out of the reply.
// It keeps no per-call state and may be shared between goroutines.
type AnswerChain struct {
	renderer  prompt.Renderer
	completer llm.Completer
	parser    Parser
	log       zerolog.Logger
}

type ChainOption func(*AnswerChain)

func WithRenderer(r prompt.Renderer) ChainOption {
	return func(c *AnswerChain) { c.renderer = r }
}

func WithParser(p Parser) ChainOption {
	return func(c *AnswerChain) { c.parser = p }
}

func WithLogger(l zerolog.Logger) ChainOption {
	return func(c *AnswerChain) { c.log = l }
}

// NewAnswerChain binds completer to the answer pipeline. The completer is not
// owned by the chain; closing or reconfiguring it is up to the caller.
func NewAnswerChain(completer llm.Completer, opts ...ChainOption) (*AnswerChain, error) {
	if completer == nil {
		return nil, NewChainError(ErrorTypeConstruction, "completer is required", nil)
	}

	c := &AnswerChain{
		renderer:  prompt.NewAnswerTemplate(),
		completer: completer,
		parser:    TextParser{},
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.renderer == nil {
		return nil, NewChainError(ErrorTypeConstruction, "renderer is required", nil)
	}
	if c.parser == nil {
		return nil, NewChainError(ErrorTypeConstruction, "parser is required", nil)
	}
	return c, nil
}

func (c *AnswerChain) Provider() string { return c.completer.Name() }

// Completer exposes the bound completer, e.g. to list its models.
func (c *AnswerChain) Completer() llm.Completer { return c.completer }

// GenerateAnswer runs one question through the chain. A model failure is
// returned as an InvocationError and is not retried.
func (c *AnswerChain) GenerateAnswer(ctx context.Context, req model.AnswerRequest) (string, error) {
	answer, _, err := c.generate(ctx, req)
	return answer, err
}

// Generate is GenerateAnswer that also returns the raw completion.
func (c *AnswerChain) Generate(ctx context.Context, req model.AnswerRequest) (string, *llm.Completion, error) {
	return c.generate(ctx, req)
}

func (c *AnswerChain) generate(ctx context.Context, req model.AnswerRequest) (string, *llm.Completion, error) {
	log := c.log.With().Str("provider", c.completer.Name()).Logger()

	text, err := c.renderer.Render(req)
	if err != nil {
		return "", nil, NewChainError(ErrorTypeConstruction, "render prompt", err)
	}

	t0 := time.Now()
	completion, err := c.completer.Complete(ctx, text)
	if err != nil {
		chainErr := NewChainError(ErrorTypeInvocation, "model call failed", err)
		log.Error().Object("error", chainErr).Dur("latency", time.Since(t0)).Msg("answer_invocation_failed")
		return "", nil, chainErr
	}

	answer, err := c.parser.Parse(completion)
	if err != nil {
		if !IsParse(err) {
			err = NewChainError(ErrorTypeParse, "parse completion", err)
		}
		ev := log.Error().Err(err)
		if completion != nil {
			ev = ev.Str("model", completion.Model)
		}
		ev.Msg("answer_parse_failed")
		return "", completion, err
	}

	log.Debug().
		Str("model", completion.Model).
		Int("prompt_len", len(text)).
		Int("prompt_tokens", completion.PromptTokens).
		Int("completion_tokens", completion.CompletionTokens).
		Dur("latency", time.Since(t0)).
		Str("answer", util.TruncateRunes(answer, previewRunes)).
		Msg("answer_generated")

	return answer, completion, nil
}
