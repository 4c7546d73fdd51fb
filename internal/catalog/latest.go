// Package catalog aggregates products across kinds for listing pages.
package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/sirupsen/logrus"
)

// LatestPerKind is how many of the newest records of each kind Latest returns.
const LatestPerKind = 5

type Latest struct {
	products port.ProductRepository
	cache    port.LatestCache
	ttl      time.Duration
	log      logrus.FieldLogger
}

// NewLatest builds the aggregation helper. A nil cache or a zero ttl
// disables caching.
func NewLatest(products port.ProductRepository, cache port.LatestCache, ttl time.Duration, log logrus.FieldLogger) *Latest {
	return &Latest{
		products: products,
		cache:    cache,
		ttl:      ttl,
		log:      log,
	}
}

// Products returns the LatestPerKind newest products of every known kind in
// kindNames, concatenated in the requested order. Unknown names are skipped.
// When preferred names a kind that is also requested, its products are moved
// to the front; the relative order of the rest is kept.
func (l *Latest) Products(ctx context.Context, kindNames []string, preferred string) ([]domain.Product, error) {
	kinds := l.parseKinds(kindNames)
	key := cacheKey(kinds, preferred)

	// generation is read before the repository: a concurrent Invalidate
	// leaves the listing written below unreachable
	caching := l.cachingEnabled()
	var gen int64
	if caching {
		var err error
		gen, err = l.cache.Generation(ctx)
		if err != nil {
			l.log.WithError(err).Warn("latest products cache generation read failed")
			caching = false
		}
	}

	if caching {
		cached, ok, err := l.cache.Get(ctx, gen, key)
		if err != nil {
			l.log.WithError(err).WithField("key", key).Warn("latest products cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	var products []domain.Product
	for _, kind := range kinds {
		latest, err := l.products.LatestProducts(ctx, kind, LatestPerKind)
		if err != nil {
			return nil, fmt.Errorf("products.LatestProducts[%s]: %w", kind, err)
		}
		products = append(products, latest...)
	}

	if pk, err := domain.ParseProductKind(preferred); err == nil && slices.Contains(kinds, pk) {
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return preferredRank(a, pk) - preferredRank(b, pk)
		})
	}

	if caching {
		if err := l.cache.Set(ctx, gen, key, products, l.ttl); err != nil {
			l.log.WithError(err).WithField("key", key).Warn("latest products cache write failed")
		}
	}

	return products, nil
}

// Invalidate drops cached listings after a product changed.
func (l *Latest) Invalidate(ctx context.Context) error {
	if !l.cachingEnabled() {
		return nil
	}

	if err := l.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("cache.Invalidate: %w", err)
	}

	return nil
}

func (l *Latest) parseKinds(names []string) []domain.ProductKind {
	kinds := make([]domain.ProductKind, 0, len(names))
	for _, name := range names {
		kind, err := domain.ParseProductKind(name)
		if err != nil {
			l.log.WithField("kind", name).Debug("skipping unknown product kind")
			continue
		}
		if slices.Contains(kinds, kind) {
			continue
		}
		kinds = append(kinds, kind)
	}
	return kinds
}

func (l *Latest) cachingEnabled() bool {
	return l.cache != nil && l.ttl > 0
}

func preferredRank(p domain.Product, preferred domain.ProductKind) int {
	if p.Kind() == preferred {
		return 0
	}
	return 1
}

func cacheKey(kinds []domain.ProductKind, preferred string) string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return strings.Join(names, ",") + "|" + preferred
}
