package middleware

import (
	"layover-os/config"
	"layover-os/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the shared middleware set. A non-positive request budget disables rate limiting.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RequestsPerMin),
	}
}
