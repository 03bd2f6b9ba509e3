package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"layover-os/config"
)

// Connect parses the URL, dials and pings Redis.
func Connect(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	opt, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis.Connect: parse url: %w", err)
	}

	client := goredis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis.Connect: ping: %w", err)
	}

	return client, nil
}

func Disconnect(client *goredis.Client) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
