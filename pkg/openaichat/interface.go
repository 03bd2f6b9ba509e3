package openaichat

import "context"

// IClient is a chat completion client for OpenAI-compatible APIs
// (Fireworks, DeepSeek, OpenAI). Implementations are safe for concurrent use.
type IClient interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a new client with the given configuration.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
