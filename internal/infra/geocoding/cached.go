package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/domain/service"
	"nagarsetu/internal/errors"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "geocode:"

// CacheRecorder receives one observation per cache lookup.
type CacheRecorder interface {
	ObserveGeocodeCache(op string, hit bool)
}

type noopCacheRecorder struct{}

func (noopCacheRecorder) ObserveGeocodeCache(string, bool) {}

// Cached stores successful lookups of the wrapped Geocoder in Redis. Redis
// failures are logged and the lookup falls through to the wrapped Geocoder.
type Cached struct {
	next     service.Geocoder
	client   *redis.Client
	ttl      time.Duration
	logger   *slog.Logger
	recorder CacheRecorder
}

// NewCached wraps next with a Redis cache whose entries live for ttl.
func NewCached(next service.Geocoder, client *redis.Client, ttl time.Duration, logger *slog.Logger, recorder CacheRecorder) *Cached {
	if recorder == nil {
		recorder = noopCacheRecorder{}
	}

	return &Cached{
		next:     next,
		client:   client,
		ttl:      ttl,
		logger:   logger,
		recorder: recorder,
	}
}

func (c *Cached) Search(ctx context.Context, query string) (*entity.Location, error) {
	key := searchKey(query)

	return c.lookup(ctx, opSearch, key, func() (*entity.Location, error) {
		return c.next.Search(ctx, query)
	})
}

func (c *Cached) Reverse(ctx context.Context, lat, lng float64) (*entity.Location, error) {
	key := reverseKey(lat, lng)

	return c.lookup(ctx, opReverse, key, func() (*entity.Location, error) {
		return c.next.Reverse(ctx, lat, lng)
	})
}

func (c *Cached) lookup(ctx context.Context, op, key string, load func() (*entity.Location, error)) (*entity.Location, error) {
	if cached, ok := c.get(ctx, key); ok {
		c.recorder.ObserveGeocodeCache(op, true)

		return cached, nil
	}
	c.recorder.ObserveGeocodeCache(op, false)

	location, err := load()
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, location)

	return location, nil
}

func (c *Cached) get(ctx context.Context, key string) (*entity.Location, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("[Geocoding] Cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return nil, false
	}

	var location entity.Location
	if err := json.Unmarshal(raw, &location); err != nil {
		c.logger.Warn("[Geocoding] Dropping unreadable cache entry", slog.String("key", key), slog.Any("error", err))
		c.client.Del(ctx, key)

		return nil, false
	}

	return &location, true
}

func (c *Cached) set(ctx context.Context, key string, location *entity.Location) {
	raw, err := json.Marshal(location)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("[Geocoding] Cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

// searchKey folds case and whitespace so "  MG Road,  Delhi" and
// "mg road, delhi" share an entry.
func searchKey(query string) string {
	return cacheKeyPrefix + opSearch + ":" + strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

func reverseKey(lat, lng float64) string {
	return fmt.Sprintf("%s%s:%.6f,%.6f", cacheKeyPrefix, opReverse, lat, lng)
}
