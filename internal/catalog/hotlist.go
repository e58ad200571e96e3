package catalog

import (
	"context"
	"encoding/json"
	"errors"

	pkgauth "github.com/glowmart/cosmetics-backend/pkg/auth"
	"github.com/glowmart/cosmetics-backend/pkg/db/models"
	pkgerrors "github.com/glowmart/cosmetics-backend/pkg/errors"
	"github.com/glowmart/cosmetics-backend/pkg/redis"
)

// HotProducts returns the current hot list for the public surface. The Redis
// copy is a read-through cache; any cache failure silently falls back to the
// database so the storefront never breaks on a cold or dead cache.
func (s *Service) HotProducts(ctx context.Context) ([]ProductView, error) {
	if s.cache != nil {
		if payload, err := s.cache.Get(ctx, redis.HotProductsKey()); err == nil {
			var views []ProductView
			if jsonErr := json.Unmarshal([]byte(payload), &views); jsonErr == nil {
				return views, nil
			}
		} else if !errors.Is(err, redis.ErrCacheMiss) {
			s.logg.Warn(s.logg.WithField(ctx, "cache_key", redis.HotProductsKey()), "hot products cache read failed")
		}
	}

	products, err := s.store.ActiveHotProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading hot products")
	}
	views := productViews(products)

	if s.cache != nil {
		if payload, err := json.Marshal(views); err == nil {
			_ = s.cache.Set(ctx, redis.HotProductsKey(), payload, s.cfg.Redis.HotProductsTTL)
		}
	}
	return views, nil
}

// ReplaceHotProducts swaps the entire hot list in one transaction: active
// rows are retired first, then the new list is inserted in request order. An
// empty list clears the strip. Every id must reference an active product.
func (s *Service) ReplaceHotProducts(ctx context.Context, actor pkgauth.Identity, input ReplaceHotProductsInput) error {
	seen := make(map[uint64]struct{}, len(input.ProductIDs))
	for _, id := range input.ProductIDs {
		if _, dup := seen[id]; dup {
			return pkgerrors.New(pkgerrors.CodeValidation, "duplicate product id in request").
				WithDetails(map[string]any{"id": id})
		}
		seen[id] = struct{}{}
	}

	err := s.store.WithTx(ctx, func(tx Store) error {
		if len(input.ProductIDs) > 0 {
			count, err := tx.CountActiveProducts(ctx, input.ProductIDs)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying product ids")
			}
			if count != int64(len(input.ProductIDs)) {
				return pkgerrors.New(pkgerrors.CodeConflict, "request references unknown or retired products")
			}
		}

		if err := tx.RetireHotProducts(ctx, actor.Username); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "retiring hot list")
		}

		rows := make([]*models.HotProduct, 0, len(input.ProductIDs))
		for _, id := range input.ProductIDs {
			rows = append(rows, &models.HotProduct{
				ProductID: id,
				Creator:   actor.Username,
			})
		}
		if err := tx.InsertHotProducts(ctx, rows); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "inserting hot list")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateHotProducts(ctx)

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"operator": actor.Username,
		"count":    len(input.ProductIDs),
	}), "hot products replaced")
	return nil
}

func (s *Service) invalidateHotProducts(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, redis.HotProductsKey()); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "cache_key", redis.HotProductsKey()), "hot products cache invalidation failed")
	}
}
