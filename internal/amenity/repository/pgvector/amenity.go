package pgvector

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"layover-os/internal/amenity/repository"
	"layover-os/internal/model"
)

// EnsureSchema installs the vector extension and creates the table with an HNSW cosine index.
func (r *implRepository) EnsureSchema(ctx context.Context, vectorSize int) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			category TEXT,
			airport_code TEXT NOT NULL,
			terminal_id TEXT,
			location_label TEXT,
			is_open_now BOOLEAN NOT NULL DEFAULT TRUE,
			wait_time_minutes INTEGER NOT NULL DEFAULT 0,
			last_updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			embedding vector(%d) NOT NULL
		)`, tableName, vectorSize),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_scope ON %s (airport_code, terminal_id)`, tableName, tableName),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_embedding ON %s USING hnsw (embedding vector_cosine_ops)`, tableName, tableName),
	}

	db := r.db.WithContext(ctx)
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("EnsureSchema"), err)
			return fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
		}
	}
	return nil
}

func (r *implRepository) Upsert(ctx context.Context, items []repository.UpsertOptions) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]amenityRow, len(items))
	for i, it := range items {
		rows[i] = toRow(it.Amenity, it.Vector)
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Upsert"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpsert, err)
	}
	return nil
}

// Search orders by cosine distance inside a transaction so hnsw.ef_search
// can be widened to NumCandidates for this query only.
func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]model.Amenity, error) {
	if opt.Scope == "" {
		return nil, repository.ErrMissingScope
	}
	limit := opt.Limit
	if limit <= 0 {
		limit = 10
	}

	query := pgvector.NewVector(opt.Vector)
	var rows []scoredRow

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if opt.NumCandidates > 0 {
			if err := tx.Exec(fmt.Sprintf("SET LOCAL hnsw.ef_search = %d", opt.NumCandidates)).Error; err != nil {
				return err
			}
		}

		q := tx.Table(tableName).
			Select("*, 1 - (embedding <=> ?) AS score", query).
			Where("airport_code = ?", opt.Scope)
		if opt.SubScope != "" {
			q = q.Where("terminal_id = ?", opt.SubScope)
		}

		return q.Order(gorm.Expr("embedding <=> ?", query)).
			Limit(limit).
			Scan(&rows).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Search"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToSearch, err)
	}

	out := make([]model.Amenity, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
		out[i].Score = row.Score
	}
	return out, nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Amenity, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = 100
	}

	q := r.db.WithContext(ctx).Omit("embedding").Limit(limit)
	if opt.Scope != "" {
		q = q.Where("airport_code = ?", opt.Scope)
	}

	var rows []amenityRow
	if err := q.Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	out := make([]model.Amenity, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, opt repository.UpdateStatusOptions) error {
	err := r.db.WithContext(ctx).
		Model(&amenityRow{}).
		Where("id = ?", opt.ID).
		Updates(map[string]interface{}{
			"is_open_now":       opt.IsOpen,
			"wait_time_minutes": opt.WaitMinutes,
			"last_updated_at":   opt.UpdatedAt,
		}).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateStatus"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	return nil
}
