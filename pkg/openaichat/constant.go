package openaichat

import "time"

// Base URLs for OpenAI-compatible chat completion endpoints.
const (
	FireworksBaseURL = "https://api.fireworks.ai/inference/v1"
	DeepSeekBaseURL  = "https://api.deepseek.com/v1"
	OpenAIBaseURL    = "https://api.openai.com/v1"
)

const (
	// DefaultModel is the Fireworks-hosted Llama 3 70B instruct model.
	DefaultModel = "accounts/fireworks/models/llama-v3-70b-instruct"

	// DefaultTimeout bounds a single completion call when the caller context has no deadline.
	DefaultTimeout = 30 * time.Second
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
