// Package chainerr classifies the failures of answer generation. It sits
// below both the chain and the model clients so that either can report a
// typed error.
package chainerr

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ErrorType classifies failures of the answer chain.
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeConstruction: the chain or its completer could not be built.
	ErrorTypeConstruction
	// ErrorTypeInvocation: the model call failed (transport, auth, quota, provider).
	ErrorTypeInvocation
	// ErrorTypeParse: the model answered without any extractable text.
	ErrorTypeParse
)

// ChainError is the typed error returned by the chain and the client factory.
type ChainError struct {
	Type    ErrorType
	Message string
	Err     error
}

func New(errType ErrorType, message string, err error) *ChainError {
	return &ChainError{Type: errType, Message: message, Err: err}
}

func (e *ChainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.TypeString(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.TypeString(), e.Message)
}

func (e *ChainError) Unwrap() error { return e.Err }

func (e *ChainError) TypeString() string {
	switch e.Type {
	case ErrorTypeConstruction:
		return "ConstructionError"
	case ErrorTypeInvocation:
		return "InvocationError"
	case ErrorTypeParse:
		return "ParseError"
	default:
		return "UnknownError"
	}
}

// MarshalZerologObject lets the error be attached with Event.Object.
func (e *ChainError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("error_type", e.TypeString()).Str("message", e.Message)
	if e.Err != nil {
		ev.Str("cause", e.Err.Error())
	}
}

// TypeOf returns the type of the first ChainError in err's chain.
func TypeOf(err error) ErrorType {
	var ce *ChainError
	if errors.As(err, &ce) {
		return ce.Type
	}
	return ErrorTypeUnknown
}

func IsConstruction(err error) bool { return TypeOf(err) == ErrorTypeConstruction }
func IsInvocation(err error) bool   { return TypeOf(err) == ErrorTypeInvocation }
func IsParse(err error) bool        { return TypeOf(err) == ErrorTypeParse }
