// Package flight holds the structured flight lookup domain.
package flight

import (
	"time"

	"layover-os/internal/model"
)

// DemoFlights returns the flight set loaded by `layoverctl seed flights`.
// Times are anchored to the given day in UTC.
func DemoFlights(day time.Time) []model.Flight {
	at := func(hour, minute int) *time.Time {
		t := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
		return &t
	}

	return []model.Flight{
		{Number: "UA400", Airline: "United Airlines", Origin: "SFO", Destination: "Denver", Status: "On Time", Gate: "F12", Terminal: "3", DepartureTime: at(10, 30), ArrivalTime: at(14, 0)},
		{Number: "UA450", Airline: "United Airlines", Origin: "SFO", Destination: "Chicago", Status: "Delayed", Gate: "F3", Terminal: "3", DepartureTime: at(12, 15), ArrivalTime: at(18, 20)},
		{Number: "DL118", Airline: "Delta Air Lines", Origin: "JFK", Destination: "Los Angeles", Status: "Boarding", Gate: "B27", Terminal: "4", DepartureTime: at(9, 0), ArrivalTime: at(12, 25)},
		{Number: "AA2301", Airline: "American Airlines", Origin: "JFK", Destination: "Miami", Status: "On Time", Gate: "12", Terminal: "8", DepartureTime: at(15, 45), ArrivalTime: at(19, 5)},
		{Number: "WN1987", Airline: "Southwest Airlines", Origin: "DEN", Destination: "San Francisco", Status: "Cancelled", Gate: "C41", Terminal: "C", DepartureTime: at(17, 10), ArrivalTime: at(19, 0)},
	}
}
