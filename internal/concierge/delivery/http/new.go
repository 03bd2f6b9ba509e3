package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"layover-os/internal/concierge"
	"layover-os/pkg/log"
)

// Handler is the public interface for the concierge HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	GetSession(c *gin.Context)
	SwitchLocation(c *gin.Context)
}

type handler struct {
	l               log.Logger
	uc              concierge.UseCase
	defaultLocation string
}

// New creates the concierge HTTP handler. defaultLocation seeds new sessions
// whose request carries no airport.
func New(l log.Logger, uc concierge.UseCase, defaultLocation string) Handler {
	return &handler{
		l:               l,
		uc:              uc,
		defaultLocation: strings.ToUpper(strings.TrimSpace(defaultLocation)),
	}
}
