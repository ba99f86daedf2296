package service

import "github.com/katakuxiko/answerchain/internal/chainerr"

type (
	ErrorType  = chainerr.ErrorType
	ChainError = chainerr.ChainError
)

const (
	ErrorTypeUnknown      = chainerr.ErrorTypeUnknown
	ErrorTypeConstruction = chainerr.ErrorTypeConstruction
	ErrorTypeInvocation   = chainerr.ErrorTypeInvocation
	ErrorTypeParse        = chainerr.ErrorTypeParse
)

func NewChainError(errType ErrorType, message string, err error) *ChainError {
	return chainerr.New(errType, message, err)
}

func IsConstruction(err error) bool { return chainerr.IsConstruction(err) }
func IsInvocation(err error) bool   { return chainerr.IsInvocation(err) }
func IsParse(err error) bool        { return chainerr.IsParse(err) }
