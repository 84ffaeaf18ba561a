package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	authdomain "homehub-backend/internal/auth/domain"

	"github.com/redis/go-redis/v9"
)

const blacklistKey = "token_blacklist"

// redisTokenBlacklistRepository keeps revoked tokens in a Redis sorted set,
// scored by expiry unix time. The sweep is a single ZREMRANGEBYSCORE.
type redisTokenBlacklistRepository struct {
	client *redis.Client
}

// NewRedisTokenBlacklistRepository creates a Redis-backed blacklist repository
func NewRedisTokenBlacklistRepository(client *redis.Client) TokenBlacklistRepository {
	return &redisTokenBlacklistRepository{
		client: client,
	}
}

func (r *redisTokenBlacklistRepository) Add(entry *authdomain.BlacklistEntry) error {
	return r.client.ZAdd(context.Background(), blacklistKey, redis.Z{
		Score:  float64(entry.ExpiresAt.Unix()),
		Member: entry.Token,
	}).Err()
}

func (r *redisTokenBlacklistRepository) IsBlacklisted(token string) (bool, error) {
	_, err := r.client.ZScore(context.Background(), blacklistKey, token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *redisTokenBlacklistRepository) DeleteExpired(before time.Time) (int64, error) {
	// "(" makes the bound exclusive: only rows strictly before the cutoff go.
	max := "(" + strconv.FormatInt(before.Unix(), 10)
	return r.client.ZRemRangeByScore(context.Background(), blacklistKey, "-inf", max).Result()
}
