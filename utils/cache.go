package utils

import (
	"ClipHub/internal/repo"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis cache client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get reads a cached value.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Set writes a cached value.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, string(data), expiration).Err()
}

// Delete removes a cache entry.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// BuildCacheKey builds a cache key.
func BuildCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += fmt.Sprintf(":%v", param)
	}
	return key
}

const CacheKeyLiked = "video:liked"

const likedCacheTTL = 10 * time.Minute

func likedCache() Cache {
	if repo.Redis == nil {
		return nil
	}
	return NewRedisCache(repo.Redis)
}

// GetLikedStatusFromCache reads the cached liked hint for a (user, video) pair.
func GetLikedStatusFromCache(ctx context.Context, userID, videoID uint64) (bool, bool) {
	cache := likedCache()
	if cache == nil {
		return false, false
	}
	key := BuildCacheKey(CacheKeyLiked, userID, videoID)
	var liked bool
	if err := cache.Get(ctx, key, &liked); err != nil {
		return false, false
	}
	return liked, true
}

// SetLikedStatusToCache writes the liked hint for a (user, video) pair.
func SetLikedStatusToCache(ctx context.Context, userID, videoID uint64, liked bool) {
	cache := likedCache()
	if cache == nil {
		return
	}
	key := BuildCacheKey(CacheKeyLiked, userID, videoID)
	_ = cache.Set(ctx, key, liked, likedCacheTTL)
}
