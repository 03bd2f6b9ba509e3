package memory

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"layover-os/internal/session/repository"
)

type implRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
	ttl   time.Duration
}

// New creates an in-process session store. Entries expire ttl after their last save;
// ttl <= 0 keeps them forever.
func New(ttl, cleanupInterval time.Duration) repository.Repository {
	expiration := ttl
	if expiration <= 0 {
		expiration = cache.NoExpiration
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 10 * time.Minute
	}
	return &implRepository{
		cache: cache.New(expiration, cleanupInterval),
		ttl:   expiration,
	}
}
