package llm

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/sashabaranov/go-openai"

	"github.com/katakuxiko/answerchain/internal/model"
)

const ProviderLMStudio = "lmstudio"

// LMStudio talks to LM Studio or any other OpenAI compatible server.
type LMStudio struct {
	client *openai.Client
	opts   Options
}

// NewLMStudio creates a client for baseURL. Local servers usually ignore the
// key, so an empty one is replaced with a placeholder.
func NewLMStudio(baseURL, apiKey string, opts Options) *LMStudio {
	if apiKey == "" {
		apiKey = "not-needed"
	}
	oaiCfg := openai.DefaultConfig(apiKey)
	oaiCfg.BaseURL = baseURL

	return &LMStudio{
		client: openai.NewClientWithConfig(oaiCfg),
		opts:   opts,
	}
}

func (l *LMStudio) Name() string { return ProviderLMStudio }

func (l *LMStudio) Complete(ctx context.Context, prompt string) (*Completion, error) {
	resp, err := l.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: l.opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: l.opts.Temperature,
		MaxTokens:   l.opts.MaxTokens,
	})
	if err != nil {
		return nil, errors.Wrap(err, "lmstudio chat completion")
	}

	out := &Completion{
		Provider:         ProviderLMStudio,
		Model:            resp.Model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}
	if out.Model == "" {
		out.Model = l.opts.Model
	}
	for _, ch := range resp.Choices {
		out.Content = append(out.Content, ch.Message.Content)
	}
	if len(resp.Choices) > 0 {
		out.FinishReason = string(resp.Choices[0].FinishReason)
	}
	return out, nil
}

// ListModels returns the models loaded in LM Studio.
func (l *LMStudio) ListModels(ctx context.Context) ([]model.ModelInfo, error) {
	resp, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "lmstudio list models")
	}
	models := make([]model.ModelInfo, 0, len(resp.Models))
	for _, m := range resp.Models {
		models = append(models, model.ModelInfo{ID: m.ID, OwnedBy: m.OwnedBy})
	}
	return models, nil
}
