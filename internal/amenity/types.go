package amenity

import "time"

// SeedAmenity is one catalogue entry as loaded from a seed file.
type SeedAmenity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	AirportCode string `json:"airport_code"`
	TerminalID  string `json:"terminal_id"`
	Location    string `json:"location_label"`
	IsOpen      *bool  `json:"is_open_now,omitempty"`
	WaitMinutes int    `json:"wait_time_minutes"`
}

type SeedOutput struct {
	Upserted int
}

// StatusUpdate is a live status change for one amenity.
type StatusUpdate struct {
	ID          string    `json:"id"`
	IsOpen      bool      `json:"is_open_now"`
	WaitMinutes int       `json:"wait_time_minutes"`
	UpdatedAt   time.Time `json:"last_updated_ts"`
}
