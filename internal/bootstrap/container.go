// Package bootstrap builds the service graph from config. Components are
// created on first use so each binary only connects to what it needs.
// A Container is meant for single-goroutine startup wiring.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"layover-os/config"
	"layover-os/config/postgre"
	"layover-os/config/redis"
	"layover-os/internal/amenity"
	amenityRepo "layover-os/internal/amenity/repository"
	amenityPgvector "layover-os/internal/amenity/repository/pgvector"
	amenityQdrant "layover-os/internal/amenity/repository/qdrant"
	amenityUC "layover-os/internal/amenity/usecase"
	"layover-os/internal/concierge"
	conciergeUC "layover-os/internal/concierge/usecase"
	"layover-os/internal/event"
	flightRepo "layover-os/internal/flight/repository"
	flightPostgre "layover-os/internal/flight/repository/postgre"
	"layover-os/internal/router"
	sessionRepo "layover-os/internal/session/repository"
	sessionMemory "layover-os/internal/session/repository/memory"
	sessionRedis "layover-os/internal/session/repository/redis"
	"layover-os/pkg/llmprovider"
	"layover-os/pkg/log"
	pkgQdrant "layover-os/pkg/qdrant"
	"layover-os/pkg/voyage"
)

const (
	SessionBackendMemory     = "memory"
	SessionBackendRedis      = "redis"
	RetrievalBackendQdrant   = "qdrant"
	RetrievalBackendPgvector = "pgvector"
)

type Container struct {
	cfg *config.Config
	l   log.Logger

	db        *gorm.DB
	redis     *goredis.Client
	pubsub    *gochannel.GoChannel
	router    *router.Classifier
	embedder  voyage.IVoyage
	amenities amenityRepo.Repository
	amenityUC amenity.UseCase
	flights   flightRepo.Repository
	sessions  sessionRepo.Repository
	generator concierge.Generator
	genReady  bool
	concierge concierge.UseCase
}

func New(cfg *config.Config, l log.Logger) *Container {
	return &Container{cfg: cfg, l: l}
}

func (c *Container) Config() *config.Config { return c.cfg }
func (c *Container) Logger() log.Logger     { return c.l }

func (c *Container) DB(ctx context.Context) (*gorm.DB, error) {
	if c.db != nil {
		return c.db, nil
	}
	if c.cfg.Postgres.DSN == "" {
		return nil, errors.New("postgres.dsn is required")
	}
	db, err := postgre.Connect(ctx, c.cfg.Postgres)
	if err != nil {
		return nil, err
	}
	c.l.Info(ctx, "Connected to PostgreSQL")
	c.db = db
	return db, nil
}

func (c *Container) Redis(ctx context.Context) (*goredis.Client, error) {
	if c.redis != nil {
		return c.redis, nil
	}
	client, err := redis.Connect(ctx, c.cfg.Redis)
	if err != nil {
		return nil, err
	}
	c.l.Info(ctx, "Connected to Redis")
	c.redis = client
	return client, nil
}

// PubSub is the in-process event bus shared by the simulator and the status consumer.
func (c *Container) PubSub() *gochannel.GoChannel {
	if c.pubsub == nil {
		c.pubsub = event.NewPubSub()
	}
	return c.pubsub
}

func (c *Container) Router() *router.Classifier {
	if c.router == nil {
		c.router = router.New(c.cfg.Concierge.ScopeCodes)
	}
	return c.router
}

func (c *Container) Embedder() (voyage.IVoyage, error) {
	if c.embedder != nil {
		return c.embedder, nil
	}
	client, err := voyage.New(c.cfg.Voyage.APIKey)
	if err != nil {
		return nil, fmt.Errorf("bootstrap.Embedder: %w", err)
	}
	c.embedder = client.WithModel(c.cfg.Voyage.Model).WithBaseURL(c.cfg.Voyage.BaseURL)
	return c.embedder, nil
}

func (c *Container) AmenityRepository(ctx context.Context) (amenityRepo.Repository, error) {
	if c.amenities != nil {
		return c.amenities, nil
	}

	switch c.cfg.Retrieval.Backend {
	case RetrievalBackendPgvector:
		db, err := c.DB(ctx)
		if err != nil {
			return nil, err
		}
		c.amenities = amenityPgvector.New(db, c.l)
	case RetrievalBackendQdrant, "":
		c.amenities = amenityQdrant.New(pkgQdrant.NewClient(c.cfg.Qdrant.URL), c.cfg.Qdrant.CollectionName, c.l)
	default:
		return nil, fmt.Errorf("bootstrap.AmenityRepository: unknown backend %q", c.cfg.Retrieval.Backend)
	}

	c.l.Infof(ctx, "Amenity index backend: %s", c.cfg.Retrieval.Backend)
	return c.amenities, nil
}

func (c *Container) AmenityUseCase(ctx context.Context) (amenity.UseCase, error) {
	if c.amenityUC != nil {
		return c.amenityUC, nil
	}
	repo, err := c.AmenityRepository(ctx)
	if err != nil {
		return nil, err
	}
	embedder, err := c.Embedder()
	if err != nil {
		return nil, err
	}
	c.amenityUC = amenityUC.New(c.l, repo, embedder)
	return c.amenityUC, nil
}

func (c *Container) FlightRepository(ctx context.Context) (flightRepo.Repository, error) {
	if c.flights != nil {
		return c.flights, nil
	}
	db, err := c.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap.FlightRepository: %w", err)
	}
	c.flights = flightPostgre.New(db, c.l)
	return c.flights, nil
}

func (c *Container) SessionRepository(ctx context.Context) (sessionRepo.Repository, error) {
	if c.sessions != nil {
		return c.sessions, nil
	}

	ttl := ParseDuration(c.cfg.Session.TTL, 24*time.Hour)
	switch c.cfg.Session.Backend {
	case SessionBackendRedis:
		client, err := c.Redis(ctx)
		if err != nil {
			return nil, err
		}
		c.sessions = sessionRedis.New(client, ttl, c.l)
	case SessionBackendMemory, "":
		c.sessions = sessionMemory.New(ttl, ParseDuration(c.cfg.Session.CleanupInterval, 10*time.Minute))
	default:
		return nil, fmt.Errorf("bootstrap.SessionRepository: unknown backend %q", c.cfg.Session.Backend)
	}

	c.l.Infof(ctx, "Session store backend: %s (ttl %s)", c.cfg.Session.Backend, ttl)
	return c.sessions, nil
}

// Generator returns the provider manager, or nil when no provider is usable.
func (c *Container) Generator(ctx context.Context) concierge.Generator {
	if c.genReady {
		return c.generator
	}
	c.genReady = true

	providers, err := llmprovider.InitializeProviders(&c.cfg.LLM)
	if err != nil {
		c.l.Warnf(ctx, "Generation disabled, replies use templates: %v", err)
		return nil
	}

	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name() + "/" + p.Model()
	}
	c.l.Infof(ctx, "LLM providers: %v", names)

	c.generator = llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: c.cfg.LLM.FallbackEnabled,
		RetryAttempts:   c.cfg.LLM.RetryAttempts,
		RetryDelay:      ParseDuration(c.cfg.LLM.RetryDelay, 500*time.Millisecond),
		MaxTotalTimeout: ParseDuration(c.cfg.LLM.MaxTotalTimeout, 30*time.Second),
	}, c.l)
	return c.generator
}

func (c *Container) ConciergeUseCase(ctx context.Context) (concierge.UseCase, error) {
	if c.concierge != nil {
		return c.concierge, nil
	}

	sessions, err := c.SessionRepository(ctx)
	if err != nil {
		return nil, err
	}
	amenities, err := c.AmenityRepository(ctx)
	if err != nil {
		return nil, err
	}
	embedder, err := c.Embedder()
	if err != nil {
		return nil, err
	}
	flights, err := c.FlightRepository(ctx)
	if err != nil {
		return nil, err
	}

	c.concierge = conciergeUC.New(c.l, c.Router(), sessions, amenities, embedder, flights, c.Generator(ctx), conciergeUC.Config{
		GenerationTimeout: ParseDuration(c.cfg.Concierge.GenerationTimeout, conciergeUC.DefaultGenerationTimeout),
		NumCandidates:     c.cfg.Concierge.NumCandidates,
		SearchLimit:       c.cfg.Concierge.SearchLimit,
		TopN:              c.cfg.Concierge.TopN,
	})
	return c.concierge, nil
}

// Close releases every connection the container opened.
func (c *Container) Close(ctx context.Context) {
	if c.pubsub != nil {
		if err := c.pubsub.Close(); err != nil {
			c.l.Warnf(ctx, "bootstrap.Close: pubsub: %v", err)
		}
	}
	if c.redis != nil {
		if err := redis.Disconnect(c.redis); err != nil {
			c.l.Warnf(ctx, "bootstrap.Close: redis: %v", err)
		}
	}
	if c.db != nil {
		if err := postgre.Disconnect(ctx, c.db); err != nil {
			c.l.Warnf(ctx, "bootstrap.Close: postgres: %v", err)
		}
	}
}

// ParseDuration falls back to def unless raw is a positive duration.
func ParseDuration(raw string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
