package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

// CachedCatalog is a read-through cache in front of the menu replica.
// Single-item lookups dominate (every cart line at pricing time), so only
// Item is cached; List goes straight to the replica.
type CachedCatalog struct {
	inner usecase.Catalog
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedCatalog(inner usecase.Catalog, rdb *redis.Client, ttl time.Duration) *CachedCatalog {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedCatalog{inner: inner, rdb: rdb, ttl: ttl}
}

func menuKey(itemID string) string { return "menu:item:" + itemID }

func (c *CachedCatalog) Item(ctx context.Context, itemID string) (domain.MenuItem, error) {
	raw, err := c.rdb.Get(ctx, menuKey(itemID)).Bytes()
	if err == nil {
		var it domain.MenuItem
		if jerr := json.Unmarshal(raw, &it); jerr == nil {
			return it, nil
		}
		// fall through on a corrupt entry; the re-fetch overwrites it
	} else if err != redis.Nil {
		return domain.MenuItem{}, err
	}

	it, err := c.inner.Item(ctx, itemID)
	if err != nil {
		return domain.MenuItem{}, err
	}
	if b, jerr := json.Marshal(it); jerr == nil {
		_ = c.rdb.Set(ctx, menuKey(itemID), b, c.ttl).Err()
	}
	return it, nil
}

func (c *CachedCatalog) List(ctx context.Context, category string, featured *bool) ([]domain.MenuItem, error) {
	return c.inner.List(ctx, category, featured)
}

// Invalidate drops a cached item after the menu system reports a change.
func (c *CachedCatalog) Invalidate(ctx context.Context, itemID string) error {
	return c.rdb.Del(ctx, menuKey(itemID)).Err()
}

var _ usecase.Catalog = (*CachedCatalog)(nil)
