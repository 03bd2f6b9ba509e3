package concierge

import (
	"layover-os/internal/model"
	"layover-os/internal/router"
)

// ChatInput is one user turn.
type ChatInput struct {
	SessionID string
	Text      string
	// InitialLocation seeds LocationContext when the session does not exist yet.
	InitialLocation string
}

// ChatOutput is the reply plus the snapshot it was persisted with.
type ChatOutput struct {
	Reply   string
	Intent  router.Intent
	Rule    string
	Session model.SessionState
}

type SwitchLocationInput struct {
	SessionID string
	Code      string
}
