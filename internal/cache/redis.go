package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/config"
)

// likedMeTTL bounds how long a liked-me counter lives without access.
const likedMeTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

// KeyForLikedMeCount generates the Redis key for a user's received-likes count.
func (c *RedisCache) KeyForLikedMeCount(userID uint64) string {
	return fmt.Sprintf("liked_me:count:%d", userID)
}

// GetLikedMeCount reads the cached count. ok=false on a miss.
// Refreshes the TTL on access.
func (c *RedisCache) GetLikedMeCount(ctx context.Context, userID uint64) (int64, bool, error) {
	key := c.KeyForLikedMeCount(userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	_ = c.Client.Expire(ctx, key, likedMeTTL).Err()
	return n, true, nil
}

// SetLikedMeCount stores the count with the standard TTL.
func (c *RedisCache) SetLikedMeCount(ctx context.Context, userID uint64, count int64) error {
	return c.Client.Set(ctx, c.KeyForLikedMeCount(userID), count, likedMeTTL).Err()
}

// IncrLikedMeCount bumps the counter after a new positive swipe and
// refreshes its TTL. Best-effort: a missing key stays missing until the next
// read repopulates from the database, so only existing keys are bumped.
func (c *RedisCache) IncrLikedMeCount(ctx context.Context, userID uint64) error {
	key := c.KeyForLikedMeCount(userID)
	exists, err := c.Client.Exists(ctx, key).Result()
	if err != nil || exists == 0 {
		return err
	}
	if err := c.Client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, likedMeTTL).Err()
}
