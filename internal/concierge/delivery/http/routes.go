package http

import (
	"github.com/gin-gonic/gin"

	"layover-os/internal/middleware"
)

// RegisterRoutes mounts the concierge endpoints. Chat is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:id", h.GetSession)
		sessions.PUT("/:id/location", mw.RateLimit(), h.SwitchLocation)
	}
}
