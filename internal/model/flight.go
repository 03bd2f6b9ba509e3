package model

import "time"

// Flight is a tracked flight record keyed by its flight number.
type Flight struct {
	Number        string
	Airline       string
	Origin        string
	Destination   string
	Status        string
	Gate          string
	Terminal      string
	DepartureTime *time.Time
	ArrivalTime   *time.Time
}
