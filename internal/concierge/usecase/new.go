package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	amenityRepo "layover-os/internal/amenity/repository"
	"layover-os/internal/concierge"
	flightRepo "layover-os/internal/flight/repository"
	"layover-os/internal/model"
	"layover-os/internal/router"
	sessionRepo "layover-os/internal/session/repository"
	pkgLog "layover-os/pkg/log"
	"layover-os/pkg/voyage"
)

const (
	DefaultGenerationTimeout = 15 * time.Second
	DefaultNumCandidates     = 100
	DefaultSearchLimit       = 10
	DefaultTopN              = 3
)

// Config tunes retrieval and generation. Zero values take the defaults above.
type Config struct {
	GenerationTimeout time.Duration
	NumCandidates     int
	SearchLimit       int
	TopN              int
}

func (c *Config) applyDefaults() {
	if c.GenerationTimeout <= 0 {
		c.GenerationTimeout = DefaultGenerationTimeout
	}
	if c.NumCandidates <= 0 {
		c.NumCandidates = DefaultNumCandidates
	}
	if c.SearchLimit <= 0 {
		c.SearchLimit = DefaultSearchLimit
	}
	if c.TopN <= 0 {
		c.TopN = DefaultTopN
	}
	if c.NumCandidates < c.SearchLimit {
		c.NumCandidates = c.SearchLimit
	}
}

// handlerFunc answers one turn. It reads state and returns the reply plus the
// sticky fields it wants changed. It never writes the session store.
type handlerFunc func(ctx context.Context, text string, state model.SessionState) (string, model.Patch, error)

type implUseCase struct {
	l         pkgLog.Logger
	router    router.Router
	sessions  sessionRepo.Repository
	amenities amenityRepo.SearchRepository
	embedder  voyage.IVoyage
	flights   flightRepo.Repository
	generator concierge.Generator
	cfg       Config
	tracer    trace.Tracer
	locks     *keyedMutex
	handlers  map[router.Intent]handlerFunc
}

// New creates the concierge use case. generator may be nil, in which case
// every reply uses the deterministic templates.
func New(
	l pkgLog.Logger,
	rt router.Router,
	sessions sessionRepo.Repository,
	amenities amenityRepo.SearchRepository,
	embedder voyage.IVoyage,
	flights flightRepo.Repository,
	generator concierge.Generator,
	cfg Config,
) concierge.UseCase {
	if rt == nil || sessions == nil || amenities == nil || embedder == nil || flights == nil {
		panic("concierge/usecase: router, sessions, amenities, embedder and flights are required")
	}
	cfg.applyDefaults()

	uc := &implUseCase{
		l:         l,
		router:    rt,
		sessions:  sessions,
		amenities: amenities,
		embedder:  embedder,
		flights:   flights,
		generator: generator,
		cfg:       cfg,
		tracer:    otel.Tracer("layover-os/internal/concierge"),
		locks:     newKeyedMutex(),
	}
	uc.handlers = map[router.Intent]handlerFunc{
		router.IntentRetrieval:   uc.scout,
		router.IntentLookup:      uc.trackFlight,
		router.IntentTransaction: uc.bursar,
	}
	return uc
}
