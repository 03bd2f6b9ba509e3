package repository

import (
	"context"

	"layover-os/internal/model"
)

// Repository persists session snapshots with optimistic concurrency.
type Repository interface {
	// Load returns the snapshot for id. found is false when none exists.
	Load(ctx context.Context, id string) (state model.SessionState, found bool, err error)

	// Save writes state if the stored version equals expectedVersion
	// (0 means the snapshot must not exist yet) and returns it with the
	// new version. A mismatch returns ErrVersionConflict.
	Save(ctx context.Context, state model.SessionState, expectedVersion int64) (model.SessionState, error)

	Delete(ctx context.Context, id string) error
}
