package llm

import (
	"context"
	"strings"
)

const ProviderDryRun = "dryrun"

// DryRun answers without calling any provider. It is meant for local runs of
// the server or the example command when no model is reachable.
type DryRun struct {
	Answer string
}

func (d *DryRun) Name() string { return ProviderDryRun }

func (d *DryRun) Complete(ctx context.Context, prompt string) (*Completion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	answer := d.Answer
	if answer == "" {
		answer = "simulated answer"
	}
	return &Completion{
		Provider:         ProviderDryRun,
		Model:            ProviderDryRun,
		Content:          []string{answer},
		FinishReason:     "stop",
		PromptTokens:     len(strings.Fields(prompt)),
		CompletionTokens: len(strings.Fields(answer)),
	}, nil
}
