package claude

import "fmt"

// Config configures the Anthropic Messages client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("claude: API key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	return nil
}

// Message is a single conversation message. Role is "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

type Response struct {
	Text  string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
