package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	varietyListKey   = "varieties:all"
	varietyKeyPrefix = "varieties:id:"
)

// VarietyCache is a read-through cache over the variety read store. The
// knowledge base changes rarely, so entries expire on a TTL rather than
// being invalidated. A nil Redis client disables caching entirely.
type VarietyCache struct {
	inner  queries.VarietyReadStore
	client *redis.Client
	ttl    time.Duration
}

func NewVarietyCache(inner queries.VarietyReadStore, client *redis.Client, ttl time.Duration) *VarietyCache {
	return &VarietyCache{inner: inner, client: client, ttl: ttl}
}

func (c *VarietyCache) FindAll(ctx context.Context) ([]*queries.VarietyView, error) {
	if c.client == nil {
		return c.inner.FindAll(ctx)
	}

	if data, err := c.client.Get(ctx, varietyListKey).Bytes(); err == nil {
		var views []*queries.VarietyView
		if err := json.Unmarshal(data, &views); err == nil {
			return views, nil
		}
	}

	views, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, varietyListKey, views)
	return views, nil
}

func (c *VarietyCache) FindByID(ctx context.Context, id uuid.UUID) (*queries.VarietyView, error) {
	if c.client == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := varietyKeyPrefix + id.String()
	if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var view queries.VarietyView
		if err := json.Unmarshal(data, &view); err == nil {
			return &view, nil
		}
	}

	view, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, view)
	return view, nil
}

// store is best effort; a cache write failure never fails the read.
func (c *VarietyCache) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("variety cache write failed", "key", key, "error", err)
	}
}
