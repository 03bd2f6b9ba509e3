package memory

import (
	"context"
	"time"

	"layover-os/internal/model"
	"layover-os/internal/session/repository"
)

func (r *implRepository) Load(ctx context.Context, id string) (model.SessionState, bool, error) {
	v, ok := r.cache.Get(id)
	if !ok {
		return model.SessionState{}, false, nil
	}
	return v.(model.SessionState).Clone(), true, nil
}

func (r *implRepository) Save(ctx context.Context, state model.SessionState, expectedVersion int64) (model.SessionState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var current int64
	if v, ok := r.cache.Get(state.SessionID); ok {
		current = v.(model.SessionState).Version
	}
	if current != expectedVersion {
		return model.SessionState{}, repository.ErrVersionConflict
	}

	now := time.Now()
	next := state.Clone()
	next.Version = expectedVersion + 1
	next.UpdatedAt = now
	if next.CreatedAt.IsZero() {
		next.CreatedAt = now
	}

	r.cache.Set(state.SessionID, next.Clone(), r.ttl)
	return next, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}
