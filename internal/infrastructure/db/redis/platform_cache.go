package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/platformly/admin-api/internal/core/ports"
)

const (
	platformIDKey   = "settings:platform_tenant_id"
	defaultCacheTTL = time.Minute
)

// PlatformIDCache decorates a PlatformRegistry with a TTL-bounded Redis
// cache. The platform tenant id is read-mostly and rarely changes, so a short
// TTL plus explicit invalidation on writes keeps the settings store off the
// hot path. The wrapped registry remains the source of truth; a cache or
// Redis failure falls through to it.
type PlatformIDCache struct {
	client   *redis.Client
	registry ports.PlatformRegistry
	ttl      time.Duration
}

func NewPlatformIDCache(client *redis.Client, registry ports.PlatformRegistry, ttl time.Duration) *PlatformIDCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &PlatformIDCache{client: client, registry: registry, ttl: ttl}
}

func (c *PlatformIDCache) PlatformTenantID(ctx context.Context) (string, error) {
	cached, err := c.client.Get(ctx, platformIDKey).Result()
	if err == nil && cached != "" {
		return cached, nil
	}

	id, err := c.registry.PlatformTenantID(ctx)
	if err != nil {
		return "", err
	}

	// Best effort: a failed cache write only costs the next read a trip to
	// the settings store.
	_ = c.client.Set(ctx, platformIDKey, id, c.ttl).Err()
	return id, nil
}

// Invalidate drops the cached value. Called after the platform setting row
// is rewritten.
func (c *PlatformIDCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, platformIDKey).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
