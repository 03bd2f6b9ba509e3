package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"layover-os/internal/amenity"
	"layover-os/internal/amenity/repository"
	"layover-os/internal/model"
)

// Seed embeds and upserts catalogue entries. Ids are derived from airport and
// name, so seeding the same file twice is idempotent.
func (uc *implUseCase) Seed(ctx context.Context, items []amenity.SeedAmenity) (amenity.SeedOutput, error) {
	if len(items) == 0 {
		return amenity.SeedOutput{}, amenity.ErrEmptySeed
	}

	amenities := make([]model.Amenity, 0, len(items))
	for i, it := range items {
		a, err := toAmenity(it)
		if err != nil {
			return amenity.SeedOutput{}, fmt.Errorf("item %d: %w", i, err)
		}
		amenities = append(amenities, a)
	}

	total := 0
	for start := 0; start < len(amenities); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(amenities) {
			end = len(amenities)
		}
		batch := amenities[start:end]

		texts := make([]string, len(batch))
		for i, a := range batch {
			texts[i] = embeddingText(a)
		}

		vectors, err := uc.embedder.EmbedDocuments(ctx, texts)
		if err != nil {
			uc.l.Errorf(ctx, "internal.amenity.usecase.Seed: embed batch %d: %v", start/embedBatchSize, err)
			return amenity.SeedOutput{Upserted: total}, fmt.Errorf("%w: %v", amenity.ErrEmbedFailed, err)
		}
		if len(vectors) != len(batch) {
			return amenity.SeedOutput{Upserted: total}, fmt.Errorf("%w: got %d vectors for %d texts", amenity.ErrEmbedFailed, len(vectors), len(batch))
		}

		opts := make([]repository.UpsertOptions, len(batch))
		for i, a := range batch {
			opts[i] = repository.UpsertOptions{Amenity: a, Vector: vectors[i]}
		}
		if err := uc.repo.Upsert(ctx, opts); err != nil {
			return amenity.SeedOutput{Upserted: total}, err
		}
		total += len(batch)
	}

	uc.l.Infof(ctx, "internal.amenity.usecase.Seed: upserted %d amenities", total)
	return amenity.SeedOutput{Upserted: total}, nil
}

func toAmenity(it amenity.SeedAmenity) (model.Amenity, error) {
	name := strings.TrimSpace(it.Name)
	scope := strings.ToUpper(strings.TrimSpace(it.AirportCode))
	if name == "" || scope == "" {
		return model.Amenity{}, amenity.ErrInvalidSeed
	}
	if it.WaitMinutes < 0 {
		return model.Amenity{}, amenity.ErrInvalidWait
	}

	subScope := strings.ToUpper(strings.TrimSpace(it.TerminalID))
	location := strings.TrimSpace(it.Location)
	if location == "" && subScope != "" {
		location = "Terminal " + subScope
	}

	isOpen := true
	if it.IsOpen != nil {
		isOpen = *it.IsOpen
	}
	wait := it.WaitMinutes
	if !isOpen {
		wait = 0
	}

	return model.Amenity{
		ID:          repository.AmenityID(scope, name),
		Name:        name,
		Description: strings.TrimSpace(it.Description),
		Category:    strings.TrimSpace(it.Category),
		Scope:       scope,
		SubScope:    subScope,
		Location:    location,
		IsOpen:      isOpen,
		WaitMinutes: wait,
		UpdatedAt:   time.Now(),
	}, nil
}

// embeddingText is "<name> (<category>). Located in <location>. <description>".
func embeddingText(a model.Amenity) string {
	location := a.Location
	if location == "" {
		location = "General Area"
	}
	return fmt.Sprintf("%s (%s). Located in %s. %s", a.Name, a.Category, location, a.Description)
}
