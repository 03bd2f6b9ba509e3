package repository

import (
	"context"

	"layover-os/internal/model"
)

// Repository is the composed interface for an amenity vector index.
type Repository interface {
	SearchRepository
	WriteRepository
}

// SearchRepository is the read side used by the concierge.
type SearchRepository interface {
	Search(ctx context.Context, opt SearchOptions) ([]model.Amenity, error)
	List(ctx context.Context, opt ListOptions) ([]model.Amenity, error)
}

// WriteRepository is the write side used by seeding and status updates.
type WriteRepository interface {
	EnsureSchema(ctx context.Context, vectorSize int) error
	Upsert(ctx context.Context, items []UpsertOptions) error
	UpdateStatus(ctx context.Context, opt UpdateStatusOptions) error
}
