package chat

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHistory is returned for conversations that cannot be sent.
	ErrInvalidHistory = errors.New("invalid chat history")
	// ErrNotConfigured is returned when no provider is wired.
	ErrNotConfigured = errors.New("chat provider not configured")
	// ErrMissingAPIKey is returned when the selected provider has no key.
	ErrMissingAPIKey = errors.New("API key is required")
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("chat provider unavailable: %v", e.Err)
	}
	return "chat provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the provider answered without usable text.
type ErrInvalidResponse struct {
	Err error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid chat response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
