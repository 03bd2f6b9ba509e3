package claude

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type claudeImpl struct {
	client anthropic.Client
	model  string
}

func newClaudeImpl(cfg Config) *claudeImpl {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// Retries are owned by llmprovider.Manager.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &claudeImpl{
		client: anthropic.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (c *claudeImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}

	msg, err := c.client.Messages.New(ctx, c.transformRequest(req))
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("claude: API error %d: %w", apiErr.StatusCode, err)
		}
		return nil, fmt.Errorf("claude: API call failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return nil, fmt.Errorf("claude: response has no text content")
	}

	in := int(msg.Usage.InputTokens)
	out := int(msg.Usage.OutputTokens)
	return &Response{
		Text:  sb.String(),
		Usage: Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out},
	}, nil
}

func (c *claudeImpl) Model() string {
	return c.model
}

func (c *claudeImpl) transformRequest(req *Request) anthropic.MessageNewParams {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	messages := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == "assistant" {
			messages = append(messages, anthropic.NewAssistantMessage(block))
			continue
		}
		messages = append(messages, anthropic.NewUserMessage(block))
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(maxTokens),
		Messages:    messages,
		Temperature: anthropic.Float(req.Temperature),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	return params
}
