package http

import (
	"github.com/gin-gonic/gin"

	"layover-os/pkg/response"
)

// Chat godoc
// @Summary     Send a turn to the concierge
// @Description Classifies the message, routes it to Scout, FlightTracker or Bursar and returns the reply with the updated session.
// @Tags        Concierge
// @Accept      json
// @Produce     json
// @Param       body body     chatReq true "Chat turn"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - concurrent update, retry"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Upstream retrieval or lookup failed"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/concierge/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput(h.defaultLocation))
	if err != nil {
		h.l.Errorf(ctx, "internal.concierge.delivery.http.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// GetSession godoc
// @Summary     Get a session
// @Description Returns the turn history and sticky state of a session.
// @Tags        Concierge
// @Produce     json
// @Param       id  path     string true "Session (thread) ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/concierge/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := h.uc.GetSession(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSessionResp(state))
}

// SwitchLocation godoc
// @Summary     Switch the session airport
// @Description Sets the session location explicitly without adding a turn. The code must be a registered airport.
// @Tags        Concierge
// @Accept      json
// @Produce     json
// @Param       id   path     string            true "Session (thread) ID"
// @Param       body body     switchLocationReq true "New airport"
// @Success     200  {object} sessionResp
// @Failure     400  {object} response.Resp "Bad Request - unknown airport"
// @Failure     409  {object} response.Resp "Conflict - concurrent update, retry"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/concierge/sessions/{id}/location [PUT]
func (h *handler) SwitchLocation(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSwitchLocationReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	state, err := h.uc.SwitchLocation(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.concierge.delivery.http.SwitchLocation: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSessionResp(state))
}
