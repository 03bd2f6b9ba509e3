package repository

import (
	"context"

	"layover-os/internal/model"
)

// Repository is the structured flight lookup store.
type Repository interface {
	// GetByNumber returns the flight with the exact number, or nil, nil when none exists.
	GetByNumber(ctx context.Context, number string) (*model.Flight, error)
	Upsert(ctx context.Context, flights []model.Flight) error
	AutoMigrate(ctx context.Context) error
}
