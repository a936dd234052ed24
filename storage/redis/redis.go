// Package redis caches the assembled catalog snapshot as one JSON document,
// the same shape the CMS content had in the legacy site's localStorage.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"carrent/pkg/models"
	"carrent/storage"
)

const catalogKey = "cms:catalog"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr, password string, db int, ttl time.Duration) storage.ICatalogCache {
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

func (c *Cache) GetSnapshot(ctx context.Context) (*models.Catalog, error) {
	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get catalog snapshot: %w", err)
	}

	var cat models.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("unmarshal catalog snapshot: %w", err)
	}
	return &cat, nil
}

func (c *Cache) SetSnapshot(ctx context.Context, cat *models.Catalog) error {
	data, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("marshal catalog snapshot: %w", err)
	}
	return c.client.Set(ctx, catalogKey, data, c.ttl).Err()
}

func (c *Cache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}

func (c *Cache) Close() {
	if c.client != nil {
		_ = c.client.Close()
	}
}
