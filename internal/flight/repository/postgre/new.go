package postgre

import (
	"fmt"

	"gorm.io/gorm"

	"layover-os/internal/flight/repository"
	pkgLog "layover-os/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  pkgLog.Logger
}

// New creates a gorm-backed flight repository.
func New(db *gorm.DB, l pkgLog.Logger) repository.Repository {
	if db == nil {
		panic("flight/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("flight/repository/postgre.%s", method)
}
