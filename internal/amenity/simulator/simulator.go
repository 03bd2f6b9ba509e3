package simulator

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"layover-os/internal/amenity"
	"layover-os/internal/event"
	"layover-os/pkg/log"
)

// ErrNoAmenities is returned by Tick when the index is empty.
var ErrNoAmenities = errors.New("no amenities to simulate")

const (
	DefaultMinInterval = 2 * time.Second
	DefaultMaxInterval = 4 * time.Second

	minWait = 5
	maxWait = 60
)

type Config struct {
	MinInterval time.Duration
	MaxInterval time.Duration
	// Scope limits the simulation to one airport. Empty means all.
	Scope string
}

// Simulator publishes random live-status changes for seeded amenities,
// standing in for real sensor feeds.
type Simulator struct {
	l   log.Logger
	uc  amenity.UseCase
	pub message.Publisher
	cfg Config
	rnd *rand.Rand
	now func() time.Time
}

func New(l log.Logger, uc amenity.UseCase, pub message.Publisher, cfg Config) *Simulator {
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = DefaultMinInterval
	}
	if cfg.MaxInterval < cfg.MinInterval {
		cfg.MaxInterval = cfg.MinInterval
	}
	return &Simulator{
		l:   l,
		uc:  uc,
		pub: pub,
		cfg: cfg,
		rnd: rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		now: time.Now,
	}
}

// Run ticks at random intervals until ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) {
	s.l.Infof(ctx, "internal.amenity.simulator.Run: started (interval %s-%s)", s.cfg.MinInterval, s.cfg.MaxInterval)
	for {
		timer := time.NewTimer(s.nextInterval())
		select {
		case <-ctx.Done():
			timer.Stop()
			s.l.Info(ctx, "internal.amenity.simulator.Run: stopped")
			return
		case <-timer.C:
		}

		upd, err := s.Tick(ctx)
		if err != nil {
			if !errors.Is(err, ErrNoAmenities) {
				s.l.Warnf(ctx, "internal.amenity.simulator.Run: %v", err)
			}
			continue
		}
		s.l.Debugf(ctx, "internal.amenity.simulator.Run: %s open=%v wait=%d", upd.ID, upd.IsOpen, upd.WaitMinutes)
	}
}

// Tick picks one amenity, draws a new status and publishes it.
func (s *Simulator) Tick(ctx context.Context) (amenity.StatusUpdate, error) {
	items, err := s.uc.List(ctx, s.cfg.Scope, 0)
	if err != nil {
		return amenity.StatusUpdate{}, err
	}
	if len(items) == 0 {
		return amenity.StatusUpdate{}, ErrNoAmenities
	}

	target := items[s.rnd.IntN(len(items))]
	upd := amenity.StatusUpdate{
		ID:        target.ID,
		IsOpen:    s.rnd.IntN(4) != 0,
		UpdatedAt: s.now(),
	}
	if upd.IsOpen {
		upd.WaitMinutes = minWait + s.rnd.IntN(maxWait-minWait+1)
	}

	if err := event.PublishJSON(s.pub, amenity.TopicStatusUpdated, upd); err != nil {
		return amenity.StatusUpdate{}, err
	}
	return upd, nil
}

func (s *Simulator) nextInterval() time.Duration {
	span := s.cfg.MaxInterval - s.cfg.MinInterval
	if span <= 0 {
		return s.cfg.MinInterval
	}
	return s.cfg.MinInterval + time.Duration(s.rnd.Int64N(int64(span)+1))
}
