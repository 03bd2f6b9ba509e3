package openaichat

import "fmt"

// Config configures an OpenAI-compatible client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openaichat: API key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = FireworksBaseURL
	}
	return nil
}

// Message is a single chat message.
type Message struct {
	Role    string
	Content string
}

// Request is a chat completion request.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Response is the first choice of a chat completion.
type Response struct {
	Text  string
	Usage Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
