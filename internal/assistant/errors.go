package assistant

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential is returned when no API key is available.
	ErrMissingCredential = errors.New("assistant: missing API key")
	// ErrInvalidResponse is returned when no HTTP response was received or the
	// completion envelope could not be read.
	ErrInvalidResponse = errors.New("assistant: invalid response")
	// ErrEmptyResponse is returned when the completion carries no content.
	ErrEmptyResponse = errors.New("assistant: empty response")
	// ErrDecodingFailed is returned when the completion content is not the expected topics JSON.
	ErrDecodingFailed = errors.New("assistant: decoding failed")
	// ErrInvalidInput is returned when the people descriptors fail validation.
	ErrInvalidInput = errors.New("assistant: invalid input")
)

// APIError is returned when the provider answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("assistant: HTTP %d: %s", e.StatusCode, e.Body)
}
