package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

const redisKeyPrefix = "studynotes:lock:"

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Connect parses a redis:// URL, creates a client and pings it.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// Redis is a lock shared by every process connected to the same Redis.
type Redis struct {
	rdb *redis.Client
}

// NewRedis creates a Redis-backed lock.
func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

// Acquire sets key with SET NX PX or returns domain.ErrConflict if it is held.
func (r *Redis) Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error) {
	k := redisKeyPrefix + key
	token := uuid.NewString()

	ok, err := r.rdb.SetNX(ctx, k, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", key, err)
	}
	if !ok {
		return nil, fmt.Errorf("lock %s: %w", key, domain.ErrConflict)
	}

	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, r.rdb, []string{k}, token).Err(); err != nil {
			return fmt.Errorf("unlock %s: %w", key, err)
		}
		return nil
	}, nil
}
