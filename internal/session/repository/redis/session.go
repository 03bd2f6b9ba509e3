package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"layover-os/internal/model"
	"layover-os/internal/session/repository"
)

func (r *implRepository) Load(ctx context.Context, id string) (model.SessionState, bool, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return model.SessionState{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Load"), err)
		return model.SessionState{}, false, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}

	var state model.SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		r.l.Errorf(ctx, "%s: decode: %v", r.dsn("Load"), err)
		return model.SessionState{}, false, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	return state, true, nil
}

// Save performs a WATCH/MULTI compare-and-swap on the stored version.
func (r *implRepository) Save(ctx context.Context, state model.SessionState, expectedVersion int64) (model.SessionState, error) {
	key := r.key(state.SessionID)
	var saved model.SessionState

	txf := func(tx *goredis.Tx) error {
		var current int64
		raw, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, goredis.Nil):
		case err != nil:
			return err
		default:
			var stored model.SessionState
			if err := json.Unmarshal(raw, &stored); err != nil {
				return err
			}
			current = stored.Version
		}

		if current != expectedVersion {
			return repository.ErrVersionConflict
		}

		now := time.Now()
		next := state.Clone()
		next.Version = expectedVersion + 1
		next.UpdatedAt = now
		if next.CreatedAt.IsZero() {
			next.CreatedAt = now
		}

		data, err := json.Marshal(next)
		if err != nil {
			return err
		}

		if _, err := tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		}); err != nil {
			return err
		}

		saved = next
		return nil
	}

	err := r.client.Watch(ctx, txf, key)
	switch {
	case err == nil:
		return saved, nil
	case errors.Is(err, repository.ErrVersionConflict), errors.Is(err, goredis.TxFailedErr):
		return model.SessionState{}, repository.ErrVersionConflict
	default:
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return model.SessionState{}, fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	return nil
}
