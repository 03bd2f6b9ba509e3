package pgvector

import (
	"fmt"

	"gorm.io/gorm"

	"layover-os/internal/amenity/repository"
	pkgLog "layover-os/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  pkgLog.Logger
}

// New creates a Postgres/pgvector-backed amenity index.
func New(db *gorm.DB, l pkgLog.Logger) repository.Repository {
	if db == nil {
		panic("amenity/repository/pgvector: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("amenity/repository/pgvector.%s", method)
}
