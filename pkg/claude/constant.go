package claude

import "time"

const (
	DefaultModel     = "claude-3-5-haiku-latest"
	DefaultMaxTokens = 1024
	DefaultTimeout   = 30 * time.Second
)
