package llm

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/katakuxiko/answerchain/internal/chainerr"
)

const ProviderOpenAI = "openai"

type OpenAI struct {
	client openai.Client
	opts   Options
}

// NewOpenAI creates a client for the OpenAI API. baseURL may be empty.
func NewOpenAI(apiKey, baseURL string, opts Options) (*OpenAI, error) {
	if apiKey == "" {
		return nil, chainerr.New(chainerr.ErrorTypeConstruction, "openai: API key is required", nil)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}

	return &OpenAI{
		client: openai.NewClient(reqOpts...),
		opts:   opts,
	}, nil
}

func (c *OpenAI) Name() string { return ProviderOpenAI }

func (c *OpenAI) Complete(ctx context.Context, prompt string) (*Completion, error) {
	params := openai.ChatCompletionNewParams{
		Model: c.opts.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(float64(c.opts.Temperature)),
	}
	if c.opts.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(c.opts.MaxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "openai chat completion")
	}

	out := &Completion{
		Provider:         ProviderOpenAI,
		Model:            resp.Model,
		PromptTokens:     int(resp.Usage.PromptTokens),
		CompletionTokens: int(resp.Usage.CompletionTokens),
	}
	for _, ch := range resp.Choices {
		out.Content = append(out.Content, ch.Message.Content)
	}
	if len(resp.Choices) > 0 {
		out.FinishReason = string(resp.Choices[0].FinishReason)
	}
	return out, nil
}
