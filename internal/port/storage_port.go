package port

import (
	"context"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
)

// ImageStore keeps the encoded product images referenced by ProductBase.Image.
// Put never replaces an existing image: it returns the name the data was
// actually stored under, which differs from name when name is taken.
type ImageStore interface {
	Put(name string, data []byte) (string, error)
	Get(name string) ([]byte, error)
	Delete(name string) error
}

// LatestCache caches "latest products" listings keyed by the request.
// Listings belong to a generation; Invalidate starts a new one, so a listing
// built from reads that began before Invalidate is never served after it.
// Get reports false on a miss.
type LatestCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, gen int64, key string) ([]domain.Product, bool, error)
	Set(ctx context.Context, gen int64, key string, products []domain.Product, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}
