package service

import (
	"context"
	"sync"
	"time"

	"crm-dashboard-backend/internal/config"
	"crm-dashboard-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// StatsCache memoizes serialized dashboard statistics. Entries are advisory:
// a miss or a cache outage just means recomputing.
type StatsCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// NewStatsCache returns a Redis-backed cache when an address is configured,
// an in-process cache otherwise
func NewStatsCache(cfg *config.Config) StatsCache {
	if cfg.RedisAddr == "" {
		return newMemoryCache()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return &redisCache{
		client: client,
		log:    logger.New().WithField("component", "stats_cache"),
	}
}

type redisCache struct {
	client *redis.Client
	log    *logger.Logger
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Debugf("cache get failed: %v", err)
		}
		return nil, false
	}
	return value, true
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.Debugf("cache set failed: %v", err)
	}
}

type memoryCacheEntry struct {
	value     []byte
	expiresAt time.Time
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryCacheEntry
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]memoryCacheEntry)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryCacheEntry{value: value, expiresAt: time.Now().Add(ttl)}
}
