package http

import (
	"github.com/gin-gonic/gin"

	"layover-os/internal/concierge"
)

// processChatReq binds the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

// processSwitchLocationReq binds the body and the session id path param.
func (h *handler) processSwitchLocationReq(c *gin.Context) (switchLocationReq, error) {
	var req switchLocationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, h.mapError(concierge.ErrEmptySessionID)
	}
	return req, nil
}
