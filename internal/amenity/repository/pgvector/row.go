package pgvector

import (
	"time"

	"github.com/pgvector/pgvector-go"

	"layover-os/internal/model"
)

const tableName = "amenities"

type amenityRow struct {
	ID              string `gorm:"primaryKey"`
	Name            string
	Description     string
	Category        string
	AirportCode     string
	TerminalID      string
	LocationLabel   string
	IsOpenNow       bool
	WaitTimeMinutes int
	LastUpdatedAt   time.Time
	Embedding       pgvector.Vector `gorm:"type:vector"`
}

func (amenityRow) TableName() string { return tableName }

type scoredRow struct {
	amenityRow
	Score float64
}

func toRow(a model.Amenity, vector []float32) amenityRow {
	updated := a.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}
	return amenityRow{
		ID:              a.ID,
		Name:            a.Name,
		Description:     a.Description,
		Category:        a.Category,
		AirportCode:     a.Scope,
		TerminalID:      a.SubScope,
		LocationLabel:   a.Location,
		IsOpenNow:       a.IsOpen,
		WaitTimeMinutes: a.WaitMinutes,
		LastUpdatedAt:   updated,
		Embedding:       pgvector.NewVector(vector),
	}
}

func (r amenityRow) toModel() model.Amenity {
	return model.Amenity{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Scope:       r.AirportCode,
		SubScope:    r.TerminalID,
		Location:    r.LocationLabel,
		IsOpen:      r.IsOpenNow,
		WaitMinutes: r.WaitTimeMinutes,
		UpdatedAt:   r.LastUpdatedAt,
	}
}
