package usecase

import (
	"context"

	"layover-os/internal/model"
)

// bursar answers every transaction turn with the fixed lounge-pass checkout step.
func (uc *implUseCase) bursar(ctx context.Context, text string, state model.SessionState) (string, model.Patch, error) {
	return bursarReply, model.Patch{}, nil
}
