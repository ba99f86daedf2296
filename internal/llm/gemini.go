package llm

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"

	"github.com/katakuxiko/answerchain/internal/chainerr"
)

const ProviderGemini = "gemini"

type Gemini struct {
	client *genai.Client
	opts   Options
}

// NewGemini creates a Gemini API client. baseURL may be empty.
func NewGemini(ctx context.Context, apiKey, baseURL string, opts Options) (*Gemini, error) {
	if apiKey == "" {
		return nil, chainerr.New(chainerr.ErrorTypeConstruction, "gemini: API key is required", nil)
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, chainerr.New(chainerr.ErrorTypeConstruction, "init genai client", err)
	}

	return &Gemini{client: client, opts: opts}, nil
}

func (c *Gemini) Name() string { return ProviderGemini }

func (c *Gemini) Complete(ctx context.Context, prompt string) (*Completion, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.opts.Temperature),
	}
	if c.opts.MaxTokens > 0 {
		config.MaxOutputTokens = int32(c.opts.MaxTokens)
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	resp, err := c.client.Models.GenerateContent(ctx, c.opts.Model, contents, config)
	if err != nil {
		return nil, errors.Wrap(err, "gemini generate content")
	}

	out := &Completion{Provider: ProviderGemini, Model: c.opts.Model}
	if resp == nil {
		return out, nil
	}
	if resp.ModelVersion != "" {
		out.Model = resp.ModelVersion
	}
	if resp.UsageMetadata != nil {
		out.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		out.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	// first candidate carrying text wins
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range cand.Content.Parts {
			if part != nil && part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		if sb.Len() > 0 {
			out.Content = append(out.Content, sb.String())
			out.FinishReason = string(cand.FinishReason)
			break
		}
	}
	return out, nil
}
