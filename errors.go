package pullstream

import (
	"errors"
	"fmt"
)

// Kind is a classification of error type.
type Kind string

const (
	InvalidInput Kind = "invalid_input"
	Exhausted    Kind = "exhausted"
)

// StreamError represents errors from the stream layer.
type StreamError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *StreamError) Error() string {
	switch e.Kind {
	case InvalidInput:
		return fmt.Sprintf("invalid input: %s", e.Message)
	case Exhausted:
		return fmt.Sprintf("stream exhausted: %s", e.Message)
	default:
		return e.Message
	}
}

// Unwrap allows errors.Is / errors.As to work with wrapped errors.
func (e *StreamError) Unwrap() error {
	return e.Err
}

// Helper constructors
func NewInvalidInputError(msg string) *StreamError {
	return &StreamError{Kind: InvalidInput, Message: msg}
}

func NewExhaustedError(msg string) *StreamError {
	return &StreamError{Kind: Exhausted, Message: msg}
}

// IsExhausted reports whether v is a *StreamError of kind Exhausted. It
// accepts any value so that it can be applied directly to the result of
// recover when supervising a consumer that may out-live its producer.
func IsExhausted(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	var se *StreamError
	return errors.As(err, &se) && se.Kind == Exhausted
}
