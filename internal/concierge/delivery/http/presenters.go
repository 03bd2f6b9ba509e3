package http

import (
	"strings"

	"layover-os/internal/concierge"
	"layover-os/internal/model"
	"layover-os/pkg/response"
)

const defaultThreadID = "default_thread"

// --- Request DTOs ---

type chatReq struct {
	Message      string `json:"message"`
	ThreadID     string `json:"thread_id"`
	AirportCode  string `json:"airport_code"`
	UserLocation string `json:"user_location"`
}

func (r chatReq) toInput(defaultLocation string) concierge.ChatInput {
	thread := strings.TrimSpace(r.ThreadID)
	if thread == "" {
		thread = defaultThreadID
	}

	location := strings.TrimSpace(r.AirportCode)
	if location == "" {
		location = strings.TrimSpace(r.UserLocation)
	}
	if location == "" {
		location = defaultLocation
	}

	return concierge.ChatInput{
		SessionID:       thread,
		Text:            r.Message,
		InitialLocation: location,
	}
}

type switchLocationReq struct {
	SessionID   string `json:"-"`
	AirportCode string `json:"airport_code" binding:"required"`
}

func (r switchLocationReq) toInput() concierge.SwitchLocationInput {
	return concierge.SwitchLocationInput{SessionID: r.SessionID, Code: r.AirportCode}
}

// --- Response DTOs ---

type turnResp struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

func newHistory(turns []model.Turn) []turnResp {
	out := make([]turnResp, len(turns))
	for i, t := range turns {
		out[i] = turnResp{Role: string(t.Role), Text: t.Text}
	}
	return out
}

type chatResp struct {
	Response        string     `json:"response"`
	History         []turnResp `json:"history"`
	Intent          string     `json:"intent"`
	LocationContext string     `json:"location_context"`
	ReferenceMemory string     `json:"reference_memory"`
}

func (h *handler) newChatResp(out concierge.ChatOutput) chatResp {
	return chatResp{
		Response:        out.Reply,
		History:         newHistory(out.Session.Turns),
		Intent:          string(out.Intent),
		LocationContext: out.Session.LocationContext,
		ReferenceMemory: out.Session.ReferenceMemory,
	}
}

type sessionResp struct {
	SessionID       string            `json:"session_id"`
	History         []turnResp        `json:"history"`
	LocationContext string            `json:"location_context"`
	ReferenceMemory string            `json:"reference_memory"`
	Version         int64             `json:"version"`
	CreatedAt       response.DateTime `json:"created_at"`
	UpdatedAt       response.DateTime `json:"updated_at"`
}

func (h *handler) newSessionResp(s model.SessionState) sessionResp {
	return sessionResp{
		SessionID:       s.SessionID,
		History:         newHistory(s.Turns),
		LocationContext: s.LocationContext,
		ReferenceMemory: s.ReferenceMemory,
		Version:         s.Version,
		CreatedAt:       response.DateTime(s.CreatedAt),
		UpdatedAt:       response.DateTime(s.UpdatedAt),
	}
}
