package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"layover-os/internal/amenity"
	internalEvent "layover-os/internal/event"
	"layover-os/internal/model"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	mu      sync.Mutex
	updates []amenity.StatusUpdate
	done    chan struct{}
}

func (m *mockUseCase) Seed(ctx context.Context, items []amenity.SeedAmenity) (amenity.SeedOutput, error) {
	return amenity.SeedOutput{}, nil
}
func (m *mockUseCase) UpdateStatus(ctx context.Context, in amenity.StatusUpdate) error {
	m.mu.Lock()
	m.updates = append(m.updates, in)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}
func (m *mockUseCase) List(ctx context.Context, scope string, limit int) ([]model.Amenity, error) {
	return nil, nil
}

func TestConsumer(t *testing.T) {
	ps := internalEvent.NewPubSub()
	defer ps.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	uc := &mockUseCase{done: make(chan struct{}, 1)}
	if err := New(mockLogger{}, uc, ps).Consume(ctx); err != nil {
		t.Fatalf("consume: %v", err)
	}

	// Invalid payloads are acked and skipped.
	if err := ps.Publish(amenity.TopicStatusUpdated, newRawMessage("not json")); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := internalEvent.PublishJSON(ps, amenity.TopicStatusUpdated, amenity.StatusUpdate{ID: "a1", IsOpen: true, WaitMinutes: 9}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case <-uc.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for status update")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if len(uc.updates) != 1 || uc.updates[0].ID != "a1" || uc.updates[0].WaitMinutes != 9 {
		t.Errorf("unexpected updates: %+v", uc.updates)
	}
}
