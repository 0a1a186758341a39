package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/thingful/thingful-api/internal/api/metrics"
	"github.com/thingful/thingful-api/internal/core/ports"
)

const (
	thingsListKey   = "things:list"
	defaultCacheTTL = 30 * time.Second
)

// ThingListCache keeps the serialized public things listing in Redis for a
// short TTL. Every failure degrades to a miss; the request path never fails
// on the cache.
type ThingListCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewThingListCache wraps the given Redis client. A non-positive ttl falls
// back to defaultCacheTTL.
func NewThingListCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *ThingListCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ThingListCache{client: client, ttl: ttl, log: log}
}

func (c *ThingListCache) Get(ctx context.Context) ([]ports.ThingView, bool) {
	payload, err := c.client.Get(ctx, thingsListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Msg("things cache read failed")
		}
		metrics.ThingsCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var things []ports.ThingView
	if err := json.Unmarshal(payload, &things); err != nil {
		c.log.Warn().Err(err).Msg("things cache payload corrupt")
		metrics.ThingsCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.ThingsCacheTotal.WithLabelValues("hit").Inc()
	return things, true
}

func (c *ThingListCache) Set(ctx context.Context, things []ports.ThingView) {
	payload, err := json.Marshal(things)
	if err != nil {
		c.log.Warn().Err(err).Msg("things cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, thingsListKey, payload, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("things cache write failed")
	}
}

func (c *ThingListCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, thingsListKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("things cache invalidation failed")
	}
}
