package database

import (
	"context"
	"time"

	"homehub-backend/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis and pings it once so a bad address fails
// at boot instead of on the first blacklist lookup.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
