package usecase

import (
	"context"
	"sync"
	"time"

	amenityRepo "layover-os/internal/amenity/repository"
	"layover-os/internal/concierge"
	"layover-os/internal/model"
	"layover-os/internal/router"
	sessionRepo "layover-os/internal/session/repository"
	"layover-os/internal/session/repository/memory"
	"layover-os/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockEmbedder struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (m *mockEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.1, 0.2, 0.3}
	}
	return out, nil
}

func (m *mockEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return m.Embed(ctx, texts)
}

type mockAmenities struct {
	mu       sync.Mutex
	searches []amenityRepo.SearchOptions
	results  []model.Amenity
	err      error
}

func (m *mockAmenities) Search(ctx context.Context, opt amenityRepo.SearchOptions) ([]model.Amenity, error) {
	m.mu.Lock()
	m.searches = append(m.searches, opt)
	m.mu.Unlock()
	return m.results, m.err
}

func (m *mockAmenities) List(ctx context.Context, opt amenityRepo.ListOptions) ([]model.Amenity, error) {
	return m.results, nil
}

type mockFlights struct {
	mu      sync.Mutex
	lookups []string
	flights map[string]model.Flight
	err     error
}

func (m *mockFlights) GetByNumber(ctx context.Context, number string) (*model.Flight, error) {
	m.mu.Lock()
	m.lookups = append(m.lookups, number)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	f, ok := m.flights[number]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (m *mockFlights) Upsert(ctx context.Context, flights []model.Flight) error { return nil }
func (m *mockFlights) AutoMigrate(ctx context.Context) error                   { return nil }

type mockGenerator struct {
	generateFunc func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return m.generateFunc(ctx, req)
}

// mockSessions wraps the in-memory store and lets a test override Load or Save.
type mockSessions struct {
	sessionRepo.Repository
	loadFunc func(ctx context.Context, id string) (model.SessionState, bool, error)
	saveFunc func(ctx context.Context, state model.SessionState, expected int64) (model.SessionState, error)
}

func (m *mockSessions) Load(ctx context.Context, id string) (model.SessionState, bool, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, id)
	}
	return m.Repository.Load(ctx, id)
}

func (m *mockSessions) Save(ctx context.Context, state model.SessionState, expected int64) (model.SessionState, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, state, expected)
	}
	return m.Repository.Save(ctx, state, expected)
}

type fixture struct {
	uc        concierge.UseCase
	sessions  *mockSessions
	embedder  *mockEmbedder
	amenities *mockAmenities
	flights   *mockFlights
}

func newFixture(gen concierge.Generator, cfg Config) *fixture {
	f := &fixture{
		sessions:  &mockSessions{Repository: memory.New(time.Hour, time.Hour)},
		embedder:  &mockEmbedder{},
		amenities: &mockAmenities{},
		flights: &mockFlights{flights: map[string]model.Flight{
			"UA400": {Number: "UA400", Destination: "Denver", Status: "On Time", Gate: "F12"},
		}},
	}
	f.uc = New(&mockLogger{}, router.New(nil), f.sessions, f.amenities, f.embedder, f.flights, gen, cfg)
	return f
}

func (f *fixture) chat(id, text string) (concierge.ChatOutput, error) {
	return f.uc.Chat(context.Background(), concierge.ChatInput{SessionID: id, Text: text, InitialLocation: "SFO"})
}
