package llm

import (
	"context"
	"errors"
)

// Client abstracts chat-completion providers for advice generation.
type Client interface {
	GenerateAdvice(ctx context.Context, input AdviceInput) (string, error)
}

// AdviceInput captures the inputs needed for advice generation.
type AdviceInput struct {
	Question string
	Category string
}

// ErrNotConfigured is returned when no provider credentials are set.
var ErrNotConfigured = errors.New("llm provider not configured")

// NotConfiguredClient is the stand-in client used when no API key is present.
type NotConfiguredClient struct{}

// GenerateAdvice returns ErrNotConfigured.
func (NotConfiguredClient) GenerateAdvice(ctx context.Context, input AdviceInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}
