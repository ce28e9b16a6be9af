package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/lateness-tracker/internal/config"
	"github.com/MKhiriev/lateness-tracker/models"
)

const (
	keyPrefix   = "lateness:"
	historyKey  = keyPrefix + "history:"
	adminKey    = keyPrefix + "admin"
	genKey      = keyPrefix + "gen:"
	adminGenKey = genKey + "admin"
	defaultTTL  = time.Minute
	dialTimeout = 2 * time.Second
	ioTimeout   = time.Second
)

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns a redis-backed cache for cfg, or [Nop] when no redis address
// is configured.
func New(cfg config.Cache) HistoryCache {
	if cfg.RedisAddress == "" {
		return Nop()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddress,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	})

	return NewRedis(client, cfg.TTL)
}

// NewRedis wraps an existing client. A non-positive ttl falls back to one
// minute.
func NewRedis(client *redis.Client, ttl time.Duration) HistoryCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &redisCache{client: client, ttl: ttl}
}

func historyKeyFor(studentID string, gen int64) string {
	return fmt.Sprintf("%s%s:%d", historyKey, studentID, gen)
}

func adminKeyFor(gen int64) string {
	return fmt.Sprintf("%s:%d", adminKey, gen)
}

func historyGenKey(studentID string) string {
	return genKey + "history:" + studentID
}

func (c *redisCache) History(ctx context.Context, studentID string) ([]models.LatenessRecord, int64, bool, error) {
	gen, err := c.generation(ctx, historyGenKey(studentID))
	if err != nil {
		return nil, 0, false, err
	}

	var records []models.LatenessRecord
	ok, err := c.get(ctx, historyKeyFor(studentID, gen), &records)
	return records, gen, ok, err
}

func (c *redisCache) SetHistory(ctx context.Context, studentID string, gen int64, records []models.LatenessRecord) error {
	return c.set(ctx, historyKeyFor(studentID, gen), records)
}

func (c *redisCache) AdminRecords(ctx context.Context) ([]models.AdminRecord, int64, bool, error) {
	gen, err := c.generation(ctx, adminGenKey)
	if err != nil {
		return nil, 0, false, err
	}

	var records []models.AdminRecord
	ok, err := c.get(ctx, adminKeyFor(gen), &records)
	return records, gen, ok, err
}

func (c *redisCache) SetAdminRecords(ctx context.Context, gen int64, records []models.AdminRecord) error {
	return c.set(ctx, adminKeyFor(gen), records)
}

// Invalidate moves both counters forward in one transaction. Entries written
// under the old generations are left to expire.
func (c *redisCache) Invalidate(ctx context.Context, studentID string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, historyGenKey(studentID))
		pipe.Incr(ctx, adminGenKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("error invalidating cache: %w", err)
	}
	return nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

// generation reads a counter. A missing counter is generation zero.
func (c *redisCache) generation(ctx context.Context, key string) (int64, error) {
	gen, err := c.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error reading %s from cache: %w", key, err)
	}
	return gen, nil
}

func (c *redisCache) get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading %s from cache: %w", key, err)
	}

	if err = json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("error decoding %s from cache: %w", key, err)
	}

	return true, nil
}

func (c *redisCache) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding %s for cache: %w", key, err)
	}

	if err = c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("error writing %s to cache: %w", key, err)
	}

	return nil
}
