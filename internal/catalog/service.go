package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/glowmart/cosmetics-backend/pkg/config"
	"github.com/glowmart/cosmetics-backend/pkg/logger"
)

// Cache is the optional read cache for the public hot-products payload.
// pkg/redis.Client satisfies it; a nil Cache disables caching entirely.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Service owns the catalog consistency rules: active-row uniqueness,
// soft-delete lifecycle, brand resolution and hot-list replacement.
type Service struct {
	store Store
	cache Cache
	cfg   *config.Config
	logg  *logger.Logger
}

// NewService wires the catalog service. cache may be nil; every cached path
// falls back to the database.
func NewService(store Store, cache Cache, cfg *config.Config, logg *logger.Logger) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("catalog store is required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
		logg:  logg,
	}, nil
}
