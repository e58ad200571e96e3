package catalog

import (
	"context"
	"errors"
	"strings"

	pkgauth "github.com/glowmart/cosmetics-backend/pkg/auth"
	"github.com/glowmart/cosmetics-backend/pkg/db/models"
	"github.com/glowmart/cosmetics-backend/pkg/enums"
	pkgerrors "github.com/glowmart/cosmetics-backend/pkg/errors"
	"github.com/glowmart/cosmetics-backend/pkg/pagination"
)

// ListProducts returns one page of active products plus the total active
// count, optionally filtered by brand id and fuzzy name.
func (s *Service) ListProducts(ctx context.Context, query ListProductsQuery) ([]ProductView, int64, error) {
	paging := pagination.Paging{Offset: query.Offset, Limit: query.Limit}.
		Normalize(s.cfg.Catalog.DefaultPageSize, s.cfg.Catalog.MaxPageSize)
	filter := ProductFilter{BrandID: query.BrandID, Name: strings.TrimSpace(query.Name)}

	products, total, err := s.store.ListProducts(ctx, filter, paging)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	return productViews(products), total, nil
}

// GetProduct loads a single active product.
func (s *Service) GetProduct(ctx context.Context, id uint64) (*ProductView, error) {
	product, err := s.store.ActiveProductByID(ctx, id)
	if errors.Is(err, ErrRowNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}
	view := productView(*product)
	return &view, nil
}

// resolveBrand maps a submitted brand name onto an active brand row.
func resolveBrand(ctx context.Context, tx Store, name string) (*models.Brand, error) {
	brand, err := tx.ActiveBrandByName(ctx, strings.TrimSpace(name))
	if errors.Is(err, ErrRowNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "brand not found").
			WithDetails(map[string]any{"brand_name": name})
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolving brand")
	}
	return brand, nil
}

// CreateProduct inserts a product under the brand addressed by name. The
// brand must be active; retired brands cannot take new products.
func (s *Service) CreateProduct(ctx context.Context, actor pkgauth.Identity, input CreateProductInput) (*ProductView, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name cannot be blank")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product title cannot be blank")
	}
	if input.SellPrice.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sell price cannot be negative")
	}
	if input.Status != nil && !enums.RowStatus(*input.Status).IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be 0 or 1")
	}

	var view ProductView
	err := s.store.WithTx(ctx, func(tx Store) error {
		brand, err := resolveBrand(ctx, tx, input.BrandName)
		if err != nil {
			return err
		}

		product := &models.Product{
			Name:        strings.TrimSpace(input.Name),
			Alias:       input.Alias,
			Title:       input.Title,
			Subtitle:    input.Subtitle,
			BrandID:     brand.ID,
			Spec:        input.Spec,
			Kind:        input.Kind,
			SellPrice:   input.SellPrice,
			ImportPrice: input.ImportPrice,
			Sequence:    input.Sequence,
			JDID:        input.JDID,
			JDURL:       input.JDURL,
			ImgURL:      input.ImgURL,
			Comment:     input.Comment,
			Creator:     actor.Username,
		}
		if input.Status != nil {
			product.Status = enums.RowStatus(*input.Status)
		}
		if err := tx.InsertProduct(ctx, product); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "inserting product")
		}
		view = productView(*product)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"operator":   actor.Username,
		"product_id": view.ID,
	}), "product created")
	return &view, nil
}

// UpdateProduct replaces the mutable fields of an active product. Updating a
// retired product is a 404; the row still exists but is no longer editable.
func (s *Service) UpdateProduct(ctx context.Context, actor pkgauth.Identity, id uint64, input UpdateProductInput) (*ProductView, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name cannot be blank")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product title cannot be blank")
	}
	if input.SellPrice.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sell price cannot be negative")
	}
	if input.Status != nil && !enums.RowStatus(*input.Status).IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be 0 or 1")
	}

	var view ProductView
	err := s.store.WithTx(ctx, func(tx Store) error {
		if _, err := tx.ActiveProductByID(ctx, id); errors.Is(err, ErrRowNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		} else if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
		}

		brand, err := resolveBrand(ctx, tx, input.BrandName)
		if err != nil {
			return err
		}

		fields := map[string]any{
			"name":         strings.TrimSpace(input.Name),
			"alias":        input.Alias,
			"title":        input.Title,
			"subtitle":     input.Subtitle,
			"brand_id":     brand.ID,
			"spec":         input.Spec,
			"kind":         input.Kind,
			"sell_price":   input.SellPrice,
			"import_price": input.ImportPrice,
			"sequence":     input.Sequence,
			"jd_id":        input.JDID,
			"jd_url":       input.JDURL,
			"img_url":      input.ImgURL,
			"comment":      input.Comment,
			"modifier":     actor.Username,
		}
		if input.Status != nil {
			fields["status"] = enums.RowStatus(*input.Status)
		}

		rows, err := tx.UpdateProduct(ctx, id, fields)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating product")
		}
		if rows == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}

		// Retiring a product through an update also drops it from the hot
		// list, same as a delete.
		if input.Status != nil && enums.RowStatus(*input.Status) == enums.RowStatusRetired {
			if err := tx.RetireHotProductsByProduct(ctx, id, actor.Username); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "retiring hot list entries")
			}
		}

		product, err := tx.ActiveProductByID(ctx, id)
		if errors.Is(err, ErrRowNotFound) {
			// The update retired the row; echo the submitted state back.
			view = ProductView{ID: id, Name: strings.TrimSpace(input.Name), BrandID: brand.ID}
			return nil
		}
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reloading product")
		}
		view = productView(*product)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if input.Status != nil && enums.RowStatus(*input.Status) == enums.RowStatusRetired {
		s.invalidateHotProducts(ctx)
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"operator":   actor.Username,
		"product_id": id,
	}), "product updated")
	return &view, nil
}

// DeleteProduct retires a product and pulls it off the hot list in the same
// transaction.
func (s *Service) DeleteProduct(ctx context.Context, actor pkgauth.Identity, id uint64) error {
	err := s.store.WithTx(ctx, func(tx Store) error {
		rows, err := tx.RetireProduct(ctx, id, actor.Username)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "retiring product")
		}
		if rows == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		if err := tx.RetireHotProductsByProduct(ctx, id, actor.Username); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "retiring hot list entries")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateHotProducts(ctx)

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"operator":   actor.Username,
		"product_id": id,
	}), "product retired")
	return nil
}
