package llmprovider

import (
	"context"
	"fmt"

	"layover-os/pkg/claude"
	"layover-os/pkg/openaichat"
)

// OpenAIChatAdapter adapts pkg/openaichat to the Provider interface.
// One adapter type serves every OpenAI-compatible vendor; name tells them apart.
type OpenAIChatAdapter struct {
	name   string
	client openaichat.IClient
}

func NewOpenAIChatAdapter(name string, client openaichat.IClient) *OpenAIChatAdapter {
	return &OpenAIChatAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIChatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openaichat.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openaichat.Message{Role: m.Role, Content: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, &openaichat.Request{
		System:      req.SystemInstruction,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, newProviderError(a.name, err)
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *OpenAIChatAdapter) Name() string {
	return a.name
}

func (a *OpenAIChatAdapter) Model() string {
	return a.client.Model()
}

// ClaudeAdapter adapts pkg/claude to the Provider interface
type ClaudeAdapter struct {
	client claude.IClaude
}

func NewClaudeAdapter(client claude.IClaude) *ClaudeAdapter {
	return &ClaudeAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *ClaudeAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]claude.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = claude.Message{Role: m.Role, Content: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, &claude.Request{
		System:      req.SystemInstruction,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, newProviderError(a.Name(), err)
	}
	if resp.Text == "" {
		return nil, &ProviderError{Provider: a.Name(), Err: fmt.Errorf("empty completion")}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *ClaudeAdapter) Name() string {
	return "anthropic"
}

func (a *ClaudeAdapter) Model() string {
	return a.client.Model()
}
