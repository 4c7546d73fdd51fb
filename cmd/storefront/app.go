package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/cache"
	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/imaging"
	"github.com/nikolayk812/storefront/internal/logging"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/nikolayk812/storefront/internal/storage"
	"github.com/nikolayk812/storefront/internal/urls"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// app holds the wired storefront components for one CLI invocation.
type app struct {
	log *logrus.Logger

	pool *pgxpool.Pool
	rdb  *redis.Client

	products port.ProductRepository
	latest   *catalog.Latest
	saver    *service.ProductService
	routes   *urls.Registry
}

func newApp(ctx context.Context, configDir string) (*app, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	log, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("logging.New: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.Postgres.URL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	rdb, err := cache.Connect(ctx, cfg.Redis)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("cache.Connect: %w", err)
	}

	var latestCache port.LatestCache
	if rdb != nil {
		latestCache = cache.NewLatest(rdb)
	} else {
		log.Debug("redis address is empty, latest products are not cached")
	}

	images, err := storage.NewDirImageStore(cfg.Images.Dir)
	if err != nil {
		pool.Close()
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, fmt.Errorf("storage.NewDirImageStore: %w", err)
	}

	products := repository.NewProduct(pool)
	latest := catalog.NewLatest(products, latestCache, cfg.Cache.LatestTTL, log)
	normalizer := imaging.Normalizer{EnforceLimits: cfg.Images.EnforceResolution}

	return &app{
		log:      log,
		pool:     pool,
		rdb:      rdb,
		products: products,
		latest:   latest,
		saver:    service.NewProductService(products, images, normalizer, latest, log),
		routes:   urls.DefaultRegistry(),
	}, nil
}

func (a *app) Close() {
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.WithError(err).Warn("redis close failed")
		}
	}
	a.pool.Close()
}
