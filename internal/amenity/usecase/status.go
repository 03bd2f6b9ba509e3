package usecase

import (
	"context"
	"strings"
	"time"

	"layover-os/internal/amenity"
	"layover-os/internal/amenity/repository"
	"layover-os/internal/model"
)

// UpdateStatus applies a live status change. A closed amenity always reports a zero wait.
func (uc *implUseCase) UpdateStatus(ctx context.Context, in amenity.StatusUpdate) error {
	if strings.TrimSpace(in.ID) == "" {
		return amenity.ErrMissingID
	}
	if in.WaitMinutes < 0 {
		return amenity.ErrInvalidWait
	}

	wait := in.WaitMinutes
	if !in.IsOpen {
		wait = 0
	}
	updated := in.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}

	if err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
		ID:          in.ID,
		IsOpen:      in.IsOpen,
		WaitMinutes: wait,
		UpdatedAt:   updated,
	}); err != nil {
		return err
	}

	uc.l.Debugf(ctx, "internal.amenity.usecase.UpdateStatus: %s open=%v wait=%d", in.ID, in.IsOpen, wait)
	return nil
}

func (uc *implUseCase) List(ctx context.Context, scope string, limit int) ([]model.Amenity, error) {
	return uc.repo.List(ctx, repository.ListOptions{
		Scope: strings.ToUpper(strings.TrimSpace(scope)),
		Limit: limit,
	})
}
