package model

import "time"

// Amenity is a point of interest at an airport, as stored in the semantic index.
type Amenity struct {
	ID          string
	Name        string
	Description string
	Category    string
	Scope       string // airport code
	SubScope    string // terminal id
	Location    string // human readable label
	IsOpen      bool
	WaitMinutes int
	UpdatedAt   time.Time
	Score       float64
}
