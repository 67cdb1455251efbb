package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"prephub/backend/config"
	"prephub/backend/models"

	"github.com/redis/go-redis/v9"
)

// StatsCache keeps recently computed snapshots for a short TTL. Misses and
// backend errors both fall through to recomputation.
type StatsCache interface {
	Get(ctx context.Context, userID uint) (*models.UserStatsSnapshot, bool)
	Set(ctx context.Context, userID uint, snapshot models.UserStatsSnapshot)
	Invalidate(ctx context.Context, userID uint)
	// Close releases the backend connection
	Close() error
}

// New returns a Redis backed cache, or a no-op one when Redis is not configured.
func New(cfg *config.Config, logger *log.Logger) StatsCache {
	if cfg.RedisAddr == "" || cfg.StatsCacheTTL <= 0 {
		logger.Println("Stats cache disabled")
		return NoopCache{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Printf("Error connecting to Redis at %s: %v", cfg.RedisAddr, err)
	}
	return NewRedisCache(client, cfg.StatsCacheTTL, logger)
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

func NewRedisCache(client *redis.Client, ttl time.Duration, logger *log.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

func statsKey(userID uint) string {
	return fmt.Sprintf("prephub:stats:%d", userID)
}

func (c *RedisCache) Get(ctx context.Context, userID uint) (*models.UserStatsSnapshot, bool) {
	raw, err := c.client.Get(ctx, statsKey(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Printf("error getting stats from cache: %v", err)
		}
		return nil, false
	}
	var snapshot models.UserStatsSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		c.logger.Printf("error decoding cached stats: %v", err)
		return nil, false
	}
	return &snapshot, true
}

func (c *RedisCache) Set(ctx context.Context, userID uint, snapshot models.UserStatsSnapshot) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		c.logger.Printf("error encoding stats for cache: %v", err)
		return
	}
	if err := c.client.Set(ctx, statsKey(userID), raw, c.ttl).Err(); err != nil {
		c.logger.Printf("error saving stats to cache: %v", err)
	}
}

func (c *RedisCache) Invalidate(ctx context.Context, userID uint) {
	if err := c.client.Del(ctx, statsKey(userID)).Err(); err != nil {
		c.logger.Printf("error invalidating cached stats: %v", err)
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoopCache struct{}

func (NoopCache) Get(context.Context, uint) (*models.UserStatsSnapshot, bool) { return nil, false }
func (NoopCache) Set(context.Context, uint, models.UserStatsSnapshot)         {}
func (NoopCache) Invalidate(context.Context, uint)                            {}
func (NoopCache) Close() error                                                { return nil }
