package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fireproject/fire-engine-bridge/internal/domain/model"
)

const userCacheKeyPrefix = "firebridge:user:"

// RedisUserCache implements ports.UserCache on Redis, keyed by username.
// Entries are JSON-encoded users without the password hash (dropped by
// the model's json tags), so a cache hit can authenticate a request but
// never a login.
type RedisUserCache struct {
	client redis.UniversalClient
}

// NewRedisUserCache creates a new RedisUserCache with the given Redis client.
func NewRedisUserCache(client redis.UniversalClient) *RedisUserCache {
	return &RedisUserCache{client: client}
}

// Get retrieves a cached user by username. A missing or undecodable
// entry reports a miss; only transport failures are errors.
func (c *RedisUserCache) Get(ctx context.Context, username string) (model.User, bool, error) {
	if username == "" {
		return model.User{}, false, errors.New("username cannot be empty")
	}

	raw, err := c.client.Get(ctx, userCacheKeyPrefix+username).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.User{}, false, nil
		}
		return model.User{}, false, fmt.Errorf("redis get: %w", err)
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		// Stale or corrupt entry: treat as a miss, let the caller refill.
		return model.User{}, false, nil
	}
	return user, true, nil
}

// Set stores the user under its username with the given TTL. A
// non-positive TTL disables caching and the call is a no-op.
func (c *RedisUserCache) Set(ctx context.Context, user model.User, ttl time.Duration) error {
	if user.Username == "" {
		return errors.New("username cannot be empty")
	}
	if ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return c.client.Set(ctx, userCacheKeyPrefix+user.Username, raw, ttl).Err()
}
