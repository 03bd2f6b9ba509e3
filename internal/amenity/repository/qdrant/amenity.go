package qdrant

import (
	"context"
	"fmt"
	"time"

	"layover-os/internal/amenity"
	"layover-os/internal/amenity/repository"
	"layover-os/internal/model"
	pkgQdrant "layover-os/pkg/qdrant"
)

// EnsureSchema creates the collection with cosine distance when it does not exist.
func (r *implRepository) EnsureSchema(ctx context.Context, vectorSize int) error {
	exists, err := r.client.CollectionExists(ctx, r.collectionName)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("EnsureSchema"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
	}
	if exists {
		return nil
	}

	if err := r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name:    r.collectionName,
		Vectors: pkgQdrant.VectorConfig{Size: vectorSize, Distance: "Cosine"},
	}); err != nil {
		r.l.Errorf(ctx, "%s: create: %v", r.dsn("EnsureSchema"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
	}

	r.l.Infof(ctx, "%s: created collection %s (size=%d)", r.dsn("EnsureSchema"), r.collectionName, vectorSize)
	return nil
}

func (r *implRepository) Upsert(ctx context.Context, items []repository.UpsertOptions) error {
	points := make([]pkgQdrant.Point, 0, len(items))
	for _, it := range items {
		points = append(points, pkgQdrant.Point{
			ID:      it.Amenity.ID,
			Vector:  it.Vector,
			Payload: toPayload(it.Amenity),
		})
	}

	if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Upsert"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpsert, err)
	}
	return nil
}

// Search runs a filtered ANN query. HNSWEf is set from NumCandidates.
func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]model.Amenity, error) {
	if opt.Scope == "" {
		return nil, repository.ErrMissingScope
	}

	req := pkgQdrant.SearchRequest{
		Vector:      opt.Vector,
		Limit:       opt.Limit,
		WithPayload: true,
		Filter:      buildFilter(opt.Scope, opt.SubScope),
	}
	if opt.NumCandidates > 0 {
		req.Params = &pkgQdrant.SearchParams{HNSWEf: opt.NumCandidates}
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, req)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Search"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToSearch, err)
	}

	out := make([]model.Amenity, 0, len(resp.Result))
	for _, p := range resp.Result {
		a := fromPayload(p.ID, p.Payload)
		a.Score = p.Score
		out = append(out, a)
	}
	return out, nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Amenity, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = 100
	}

	req := pkgQdrant.ScrollRequest{Limit: limit, WithPayload: true}
	if opt.Scope != "" {
		req.Filter = buildFilter(opt.Scope, "")
	}

	resp, err := r.client.ScrollPoints(ctx, r.collectionName, req)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	out := make([]model.Amenity, 0, len(resp.Result.Points))
	for _, p := range resp.Result.Points {
		out = append(out, fromPayload(p.ID, p.Payload))
	}
	return out, nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, opt repository.UpdateStatusOptions) error {
	err := r.client.SetPayload(ctx, r.collectionName, pkgQdrant.SetPayloadRequest{
		Payload: map[string]interface{}{
			amenity.FieldIsOpen:      opt.IsOpen,
			amenity.FieldWaitMinutes: opt.WaitMinutes,
			amenity.FieldUpdatedAt:   opt.UpdatedAt.Unix(),
		},
		Points: []string{opt.ID},
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateStatus"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	return nil
}

func buildFilter(scope, subScope string) *pkgQdrant.Filter {
	f := &pkgQdrant.Filter{
		Must: []pkgQdrant.Condition{{Key: amenity.FieldScope, Match: pkgQdrant.Match{Value: scope}}},
	}
	if subScope != "" {
		f.Must = append(f.Must, pkgQdrant.Condition{Key: amenity.FieldSubScope, Match: pkgQdrant.Match{Value: subScope}})
	}
	return f
}

func toPayload(a model.Amenity) map[string]interface{} {
	updated := a.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}
	return map[string]interface{}{
		amenity.FieldName:        a.Name,
		amenity.FieldDescription: a.Description,
		amenity.FieldCategory:    a.Category,
		amenity.FieldScope:       a.Scope,
		amenity.FieldSubScope:    a.SubScope,
		amenity.FieldLocation:    a.Location,
		amenity.FieldIsOpen:      a.IsOpen,
		amenity.FieldWaitMinutes: a.WaitMinutes,
		amenity.FieldUpdatedAt:   updated.Unix(),
	}
}

// fromPayload decodes a point payload. Missing status fields default to open with no wait.
func fromPayload(id string, p map[string]interface{}) model.Amenity {
	a := model.Amenity{
		ID:          id,
		Name:        stringField(p, amenity.FieldName),
		Description: stringField(p, amenity.FieldDescription),
		Category:    stringField(p, amenity.FieldCategory),
		Scope:       stringField(p, amenity.FieldScope),
		SubScope:    stringField(p, amenity.FieldSubScope),
		Location:    stringField(p, amenity.FieldLocation),
		IsOpen:      true,
	}
	if v, ok := p[amenity.FieldIsOpen].(bool); ok {
		a.IsOpen = v
	}
	if v, ok := p[amenity.FieldWaitMinutes].(float64); ok {
		a.WaitMinutes = int(v)
	}
	if v, ok := p[amenity.FieldUpdatedAt].(float64); ok && v > 0 {
		a.UpdatedAt = time.Unix(int64(v), 0)
	}
	return a
}

func stringField(p map[string]interface{}, key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}
