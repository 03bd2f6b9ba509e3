package postgre

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"layover-os/internal/flight/repository"
	"layover-os/internal/model"
)

func (r *implRepository) GetByNumber(ctx context.Context, number string) (*model.Flight, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	if number == "" {
		return nil, nil
	}

	var row flightRow
	err := r.db.WithContext(ctx).Where("flight_number = ?", number).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByNumber"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return row.toModel(), nil
}

func (r *implRepository) Upsert(ctx context.Context, flights []model.Flight) error {
	if len(flights) == 0 {
		return nil
	}

	rows := make([]flightRow, 0, len(flights))
	for _, f := range flights {
		f.Number = strings.ToUpper(strings.TrimSpace(f.Number))
		rows = append(rows, toRow(f))
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "flight_number"}},
			UpdateAll: true,
		}).
		Create(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Upsert"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpsert, err)
	}
	return nil
}

func (r *implRepository) AutoMigrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&flightRow{}); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AutoMigrate"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
	}
	return nil
}
