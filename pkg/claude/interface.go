package claude

import "context"

// IClaude generates text with the Anthropic Messages API.
type IClaude interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a new Claude client.
func New(cfg Config) (IClaude, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClaudeImpl(cfg), nil
}
