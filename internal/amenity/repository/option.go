package repository

import (
	"time"

	"layover-os/internal/model"
)

// SearchOptions filters a similarity search. Scope is mandatory.
// SubScope, when set, adds an exact match on the terminal.
type SearchOptions struct {
	Vector        []float32
	Scope         string
	SubScope      string
	Limit         int
	NumCandidates int
}

type ListOptions struct {
	Scope string
	Limit int
}

type UpsertOptions struct {
	Amenity model.Amenity
	Vector  []float32
}

type UpdateStatusOptions struct {
	ID          string
	IsOpen      bool
	WaitMinutes int
	UpdatedAt   time.Time
}
