// Package cache stores "latest products" listings in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "storefront:latest:"
	generationKey = "storefront:latest-generation"
)

type latestCache struct {
	rdb *redis.Client
}

func NewLatest(rdb *redis.Client) port.LatestCache {
	return &latestCache{rdb: rdb}
}

// cachedProduct carries the discriminator next to the concrete record.
type cachedProduct struct {
	Kind       domain.ProductKind `json:"kind"`
	Notebook   *domain.Notebook   `json:"notebook,omitempty"`
	Smartphone *domain.Smartphone `json:"smartphone,omitempty"`
}

func (c *latestCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("rdb.Get: %w", err)
	}

	return gen, nil
}

func (c *latestCache) Get(ctx context.Context, gen int64, key string) ([]domain.Product, bool, error) {
	data, err := c.rdb.Get(ctx, listingKey(gen, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("rdb.Get: %w", err)
	}

	var cached []cachedProduct
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	products := make([]domain.Product, 0, len(cached))
	for _, cp := range cached {
		switch {
		case cp.Kind == domain.KindNotebook && cp.Notebook != nil:
			products = append(products, cp.Notebook)
		case cp.Kind == domain.KindSmartphone && cp.Smartphone != nil:
			products = append(products, cp.Smartphone)
		default:
			return nil, false, fmt.Errorf("cached product kind[%s] is not valid", cp.Kind)
		}
	}

	return products, true, nil
}

func (c *latestCache) Set(ctx context.Context, gen int64, key string, products []domain.Product, ttl time.Duration) error {
	cached := make([]cachedProduct, 0, len(products))
	for _, p := range products {
		cp := cachedProduct{Kind: p.Kind()}
		switch v := p.(type) {
		case *domain.Notebook:
			cp.Notebook = v
		case *domain.Smartphone:
			cp.Smartphone = v
		default:
			return fmt.Errorf("product type[%T] is not supported", p)
		}
		cached = append(cached, cp)
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := c.rdb.Set(ctx, listingKey(gen, key), data, ttl).Err(); err != nil {
		return fmt.Errorf("rdb.Set: %w", err)
	}

	return nil
}

// Invalidate starts a new generation. Listings of older generations are no
// longer reachable and expire with their TTL.
func (c *latestCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("rdb.Incr: %w", err)
	}

	return nil
}

func listingKey(gen int64, key string) string {
	return keyPrefix + strconv.FormatInt(gen, 10) + ":" + key
}
