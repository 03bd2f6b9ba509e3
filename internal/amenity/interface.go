package amenity

import (
	"context"

	"layover-os/internal/model"
)

// UseCase manages the amenity digital twin: catalogue seeding and live status.
type UseCase interface {
	Seed(ctx context.Context, items []SeedAmenity) (SeedOutput, error)
	UpdateStatus(ctx context.Context, in StatusUpdate) error
	List(ctx context.Context, scope string, limit int) ([]model.Amenity, error)
}
