package concierge

import (
	"context"

	"layover-os/internal/model"
	"layover-os/pkg/llmprovider"
)

// UseCase runs one conversational turn end to end and exposes the session it mutates.
type UseCase interface {
	// Chat classifies the turn, dispatches it to exactly one handler and persists the result.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// GetSession returns the stored snapshot. ErrSessionNotFound when absent.
	GetSession(ctx context.Context, sessionID string) (model.SessionState, error)

	// SwitchLocation changes the sticky location without appending a turn.
	SwitchLocation(ctx context.Context, input SwitchLocationInput) (model.SessionState, error)
}

// Generator produces natural-language replies. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
