package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSecretWord = errors.New("secret word is required")
	ErrMissingCredential = errors.New("API key not configured")
	ErrUpstreamLLM       = errors.New("upstream LLM failure")
)

// UpstreamError reports a non-200 reply from the LLM API.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d", e.StatusCode)
}

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstreamLLM }

// UnexpectedError wraps any other fault (transport, decoding). Its message
// is surfaced to the caller as-is.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string { return e.Err.Error() }

func (e *UnexpectedError) Unwrap() error { return e.Err }
