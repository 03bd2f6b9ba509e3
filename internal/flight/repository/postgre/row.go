package postgre

import (
	"time"

	"layover-os/internal/model"
)

type flightRow struct {
	FlightNumber  string `gorm:"primaryKey;size:8"`
	Airline       string
	Origin        string `gorm:"size:8"`
	Destination   string
	Status        string
	Gate          string
	Terminal      string
	DepartureTime *time.Time
	ArrivalTime   *time.Time
	UpdatedAt     time.Time
}

func (flightRow) TableName() string { return "flights" }

func toRow(f model.Flight) flightRow {
	return flightRow{
		FlightNumber:  f.Number,
		Airline:       f.Airline,
		Origin:        f.Origin,
		Destination:   f.Destination,
		Status:        f.Status,
		Gate:          f.Gate,
		Terminal:      f.Terminal,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
	}
}

func (r flightRow) toModel() *model.Flight {
	return &model.Flight{
		Number:        r.FlightNumber,
		Airline:       r.Airline,
		Origin:        r.Origin,
		Destination:   r.Destination,
		Status:        r.Status,
		Gate:          r.Gate,
		Terminal:      r.Terminal,
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
	}
}
