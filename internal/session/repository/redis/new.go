package redis

import (
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"layover-os/internal/session/repository"
	"layover-os/pkg/log"
)

// KeyPrefix namespaces session snapshots in a shared Redis.
const KeyPrefix = "layover:session:"

type implRepository struct {
	client *goredis.Client
	ttl    time.Duration
	l      log.Logger
}

// New creates a Redis-backed session store. Snapshots expire ttl after their last save;
// ttl <= 0 keeps them forever.
func New(client *goredis.Client, ttl time.Duration, l log.Logger) repository.Repository {
	if client == nil {
		panic("session/repository/redis: client is required")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &implRepository{client: client, ttl: ttl, l: l}
}

func (r *implRepository) key(id string) string {
	return KeyPrefix + id
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("session/repository/redis.%s", method)
}
