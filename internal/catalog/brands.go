package catalog

import (
	"context"
	"errors"
	"strings"

	pkgauth "github.com/glowmart/cosmetics-backend/pkg/auth"
	"github.com/glowmart/cosmetics-backend/pkg/db"
	"github.com/glowmart/cosmetics-backend/pkg/db/models"
	pkgerrors "github.com/glowmart/cosmetics-backend/pkg/errors"
	"github.com/glowmart/cosmetics-backend/pkg/pagination"
)

// ListBrands returns one page of active brands ordered by sequence, plus the
// total count of active rows.
func (s *Service) ListBrands(ctx context.Context, paging pagination.Paging) ([]BrandView, int64, error) {
	paging = paging.Normalize(s.cfg.Catalog.DefaultPageSize, s.cfg.Catalog.MaxPageSize)

	brands, total, err := s.store.ListBrands(ctx, paging)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing brands")
	}
	return brandViews(brands), total, nil
}

// AllBrands returns every active brand ordered by sequence, unpaged. The
// storefront uses it to render brand pickers.
func (s *Service) AllBrands(ctx context.Context) ([]BrandView, error) {
	brands, err := s.store.AllActiveBrands(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing all brands")
	}
	return brandViews(brands), nil
}

// CreateBrands inserts a batch of brands in one transaction. Each new brand
// gets the next sequence slot after the current active maximum, in the order
// submitted. Any name already held by an active brand fails the whole batch.
func (s *Service) CreateBrands(ctx context.Context, actor pkgauth.Identity, input CreateBrandsInput) ([]BrandView, error) {
	names := make([]string, 0, len(input.Names))
	seen := make(map[string]struct{}, len(input.Names))
	for _, raw := range input.Names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "brand names cannot be blank")
		}
		if _, dup := seen[name]; dup {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "duplicate brand name in request").
				WithDetails(map[string]any{"name": name})
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	var created []*models.Brand
	err := s.store.WithTx(ctx, func(tx Store) error {
		existing, err := tx.ActiveBrandsByNames(ctx, names)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking brand names")
		}
		if len(existing) > 0 {
			taken := make([]string, 0, len(existing))
			for _, brand := range existing {
				taken = append(taken, brand.Name)
			}
			return pkgerrors.New(pkgerrors.CodeConflict, "brand names already in use").
				WithDetails(map[string]any{"names": taken})
		}

		maxSeq, err := tx.MaxActiveBrandSequence(ctx)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reading max brand sequence")
		}

		created = make([]*models.Brand, 0, len(names))
		for i, name := range names {
			created = append(created, &models.Brand{
				Name:     name,
				Sequence: maxSeq + int32(i) + 1,
				Creator:  actor.Username,
			})
		}
		if err := tx.InsertBrands(ctx, created); err != nil {
			// A concurrent insert can still land first; the partial unique
			// indexes turn that race into a conflict instead of a duplicate.
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.New(pkgerrors.CodeConflict, "brand name or sequence already in use")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "inserting brands")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"operator": actor.Username,
		"count":    len(created),
	}), "brands created")

	views := make([]BrandView, 0, len(created))
	for _, brand := range created {
		views = append(views, brandView(*brand))
	}
	return views, nil
}

// UpdateBrand renames an active brand and optionally moves its sequence
// slot. A name or slot held by another active brand is a conflict; writing
// back the current values is a no-op.
func (s *Service) UpdateBrand(ctx context.Context, actor pkgauth.Identity, id uint64, input UpdateBrandInput) (*BrandView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "brand name cannot be blank")
	}

	var view BrandView
	err := s.store.WithTx(ctx, func(tx Store) error {
		brand, err := tx.ActiveBrandByID(ctx, id)
		if errors.Is(err, ErrRowNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "brand not found")
		}
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading brand")
		}

		if brand.Name != name {
			other, err := tx.ActiveBrandByName(ctx, name)
			if err != nil && !errors.Is(err, ErrRowNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking brand name")
			}
			if other != nil && other.ID != id {
				return pkgerrors.New(pkgerrors.CodeConflict, "brand name already in use")
			}

			rows, err := tx.UpdateBrandName(ctx, id, name, actor.Username)
			if err != nil {
				if db.IsUniqueViolation(err, "") {
					return pkgerrors.New(pkgerrors.CodeConflict, "brand name already in use")
				}
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "renaming brand")
			}
			if rows == 0 {
				return pkgerrors.New(pkgerrors.CodeNotFound, "brand not found")
			}
			brand.Name = name
		}

		if input.Sequence != nil && *input.Sequence != brand.Sequence {
			holder, err := tx.ActiveBrandBySequence(ctx, *input.Sequence)
			if err != nil && !errors.Is(err, ErrRowNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking brand sequence")
			}
			if holder != nil && holder.ID != id {
				return pkgerrors.New(pkgerrors.CodeConflict, "brand sequence already in use")
			}

			rows, err := tx.UpdateBrandSequence(ctx, id, *input.Sequence, actor.Username)
			if err != nil {
				if db.IsUniqueViolation(err, "") {
					return pkgerrors.New(pkgerrors.CodeConflict, "brand sequence already in use")
				}
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "moving brand sequence")
			}
			if rows == 0 {
				return pkgerrors.New(pkgerrors.CodeNotFound, "brand not found")
			}
			brand.Sequence = *input.Sequence
		}

		view = brandView(*brand)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ReorderBrands applies the submitted (id, sequence) assignments. A
// single-element list changes nothing. Every id must reference a distinct
// active brand; a target slot held by a brand outside the request is a
// conflict.
func (s *Service) ReorderBrands(ctx context.Context, actor pkgauth.Identity, input ReorderBrandsInput) error {
	if len(input.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one brand assignment is required")
	}
	seenIDs := make(map[uint64]struct{}, len(input.Items))
	seenSeqs := make(map[int32]struct{}, len(input.Items))
	ids := make([]uint64, 0, len(input.Items))
	for _, item := range input.Items {
		if _, dup := seenIDs[item.ID]; dup {
			return pkgerrors.New(pkgerrors.CodeValidation, "duplicate brand id in request").
				WithDetails(map[string]any{"id": item.ID})
		}
		if _, dup := seenSeqs[item.Sequence]; dup {
			return pkgerrors.New(pkgerrors.CodeValidation, "duplicate sequence in request").
				WithDetails(map[string]any{"sequence": item.Sequence})
		}
		seenIDs[item.ID] = struct{}{}
		seenSeqs[item.Sequence] = struct{}{}
		ids = append(ids, item.ID)
	}
	if len(input.Items) == 1 {
		return nil
	}

	err := s.store.WithTx(ctx, func(tx Store) error {
		count, err := tx.CountActiveBrands(ctx, ids)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying brand ids")
		}
		if count != int64(len(ids)) {
			return pkgerrors.New(pkgerrors.CodeConflict, "request references unknown or retired brands")
		}

		// Two passes: park every row on a negative sequence first so the
		// partial unique index never sees two listed rows on the same slot
		// mid-update.
		for i, item := range input.Items {
			if _, err := tx.UpdateBrandSequence(ctx, item.ID, -int32(i+1), actor.Username); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "staging brand sequence")
			}
		}
		for _, item := range input.Items {
			if _, err := tx.UpdateBrandSequence(ctx, item.ID, item.Sequence, actor.Username); err != nil {
				if db.IsUniqueViolation(err, "") {
					return pkgerrors.New(pkgerrors.CodeConflict, "brand sequence already in use")
				}
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "writing brand sequence")
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"operator": actor.Username,
		"count":    len(input.Items),
	}), "brands reordered")
	return nil
}

// DeleteBrand retires a brand. Brands with active products cannot be retired;
// the products must go first.
func (s *Service) DeleteBrand(ctx context.Context, actor pkgauth.Identity, id uint64) error {
	err := s.store.WithTx(ctx, func(tx Store) error {
		inUse, err := tx.CountActiveProductsByBrand(ctx, id)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking brand usage")
		}
		if inUse > 0 {
			return pkgerrors.New(pkgerrors.CodeConflict, "brand still has active products").
				WithDetails(map[string]any{"active_products": inUse})
		}

		rows, err := tx.RetireBrand(ctx, id, actor.Username)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "retiring brand")
		}
		if rows == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "brand not found")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"operator": actor.Username,
		"brand_id": id,
	}), "brand retired")
	return nil
}
