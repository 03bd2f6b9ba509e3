package simulator

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"layover-os/internal/amenity"
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
	items []model.Amenity
	err   error
}

func (m *mockUseCase) Seed(ctx context.Context, items []amenity.SeedAmenity) (amenity.SeedOutput, error) {
	return amenity.SeedOutput{}, nil
}
func (m *mockUseCase) UpdateStatus(ctx context.Context, in amenity.StatusUpdate) error { return nil }
func (m *mockUseCase) List(ctx context.Context, scope string, limit int) ([]model.Amenity, error) {
	return m.items, m.err
}

type recordingPublisher struct {
	mu       sync.Mutex
	topics   []string
	messages []*message.Message
}

func (p *recordingPublisher) Publish(topic string, messages ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, m := range messages {
		p.topics = append(p.topics, topic)
		p.messages = append(p.messages, m)
	}
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func TestTick(t *testing.T) {
	pub := &recordingPublisher{}
	uc := &mockUseCase{items: []model.Amenity{{ID: "a1"}, {ID: "a2"}}}
	s := New(mockLogger{}, uc, pub, Config{})

	for i := 0; i < 50; i++ {
		upd, err := s.Tick(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if upd.ID != "a1" && upd.ID != "a2" {
			t.Fatalf("unexpected id %q", upd.ID)
		}
		if upd.IsOpen && (upd.WaitMinutes < minWait || upd.WaitMinutes > maxWait) {
			t.Fatalf("open wait out of range: %d", upd.WaitMinutes)
		}
		if !upd.IsOpen && upd.WaitMinutes != 0 {
			t.Fatalf("closed amenity must have zero wait, got %d", upd.WaitMinutes)
		}
	}

	if len(pub.messages) != 50 || pub.topics[0] != amenity.TopicStatusUpdated {
		t.Fatalf("expected 50 messages on %s, got %d", amenity.TopicStatusUpdated, len(pub.messages))
	}
	var decoded amenity.StatusUpdate
	if err := json.Unmarshal(pub.messages[0].Payload, &decoded); err != nil || decoded.ID == "" {
		t.Errorf("unexpected payload: %s (%v)", pub.messages[0].Payload, err)
	}
}

func TestTick_Empty(t *testing.T) {
	s := New(mockLogger{}, &mockUseCase{}, &recordingPublisher{}, Config{})
	if _, err := s.Tick(context.Background()); !errors.Is(err, ErrNoAmenities) {
		t.Errorf("expected ErrNoAmenities, got %v", err)
	}
}

func TestNextInterval(t *testing.T) {
	s := New(mockLogger{}, &mockUseCase{}, &recordingPublisher{}, Config{MinInterval: 2 * time.Second, MaxInterval: 4 * time.Second})
	for i := 0; i < 100; i++ {
		d := s.nextInterval()
		if d < 2*time.Second || d > 4*time.Second {
			t.Fatalf("interval out of range: %v", d)
		}
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	pub := &recordingPublisher{}
	s := New(mockLogger{}, &mockUseCase{items: []model.Amenity{{ID: "a1"}}}, pub, Config{
		MinInterval: time.Millisecond,
		MaxInterval: 2 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	pub.mu.Lock()
	defer pub.mu.Unlock()
	if len(pub.messages) == 0 {
		t.Error("expected at least one published tick")
	}
}
