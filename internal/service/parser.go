package service

import (
	"github.com/katakuxiko/answerchain/internal/llm"
)

// Parser reduces a raw completion to the answer text.
type Parser interface {
	Parse(c *llm.Completion) (string, error)
}

// TextParser returns the first text segment of a completion unchanged.
type TextParser struct{}

func (TextParser) Parse(c *llm.Completion) (string, error) {
	if c == nil {
		return "", NewChainError(ErrorTypeParse, "nil completion", nil)
	}
	if len(c.Content) == 0 {
		return "", NewChainError(ErrorTypeParse, "completion has no content", nil)
	}
	if c.Content[0] == "" {
		return "", NewChainError(ErrorTypeParse, "completion text is empty", nil)
	}
	return c.Content[0], nil
}
