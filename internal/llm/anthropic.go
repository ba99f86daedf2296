package llm

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/cockroachdb/errors"

	"github.com/katakuxiko/answerchain/internal/chainerr"
)

const ProviderAnthropic = "anthropic"

// Anthropic sends prompts to Claude through the Messages API.
type Anthropic struct {
	client anthropic.Client
	opts   Options
}

// NewAnthropic creates a Claude client. baseURL may be empty.
func NewAnthropic(apiKey, baseURL string, opts Options) (*Anthropic, error) {
	if apiKey == "" {
		return nil, chainerr.New(chainerr.ErrorTypeConstruction, "anthropic: API key is required", nil)
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 1024
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}

	return &Anthropic{
		client: anthropic.NewClient(reqOpts...),
		opts:   opts,
	}, nil
}

func (c *Anthropic) Name() string { return ProviderAnthropic }

func (c *Anthropic) Complete(ctx context.Context, prompt string) (*Completion, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.opts.Model),
		MaxTokens: int64(c.opts.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Temperature: anthropic.Float(float64(c.opts.Temperature)),
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "anthropic messages")
	}

	out := &Completion{
		Provider:         ProviderAnthropic,
		Model:            string(resp.Model),
		FinishReason:     string(resp.StopReason),
		PromptTokens:     int(resp.Usage.InputTokens),
		CompletionTokens: int(resp.Usage.OutputTokens),
	}
	for _, block := range resp.Content {
		if block.Type == "text" {
			out.Content = append(out.Content, block.Text)
		}
	}
	return out, nil
}
