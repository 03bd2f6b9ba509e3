package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/sashabaranov/go-openai"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// newProviderError tags err with ErrProviderTimeout or ErrProviderRateLimited
// when the vendor error says so. The original error stays in the chain.
func newProviderError(provider string, err error) *ProviderError {
	if kind := classify(err); kind != nil {
		err = fmt.Errorf("%w: %w", kind, err)
	}
	return &ProviderError{Provider: provider, Err: err}
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrProviderTimeout
	}

	var status int
	var openaiAPIErr *openai.APIError
	var openaiReqErr *openai.RequestError
	var anthropicErr *anthropic.Error
	switch {
	case errors.As(err, &openaiAPIErr):
		status = openaiAPIErr.HTTPStatusCode
	case errors.As(err, &openaiReqErr):
		status = openaiReqErr.HTTPStatusCode
	case errors.As(err, &anthropicErr):
		status = anthropicErr.StatusCode
	}

	switch status {
	case http.StatusTooManyRequests:
		return ErrProviderRateLimited
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return ErrProviderTimeout
	}
	return nil
}
