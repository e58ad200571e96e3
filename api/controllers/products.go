package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/glowmart/cosmetics-backend/api/responses"
	"github.com/glowmart/cosmetics-backend/api/validators"
	"github.com/glowmart/cosmetics-backend/internal/catalog"
	"github.com/glowmart/cosmetics-backend/pkg/logger"
)

func parseProductQuery(r *http.Request) (catalog.ListProductsQuery, error) {
	paging, err := validators.ParsePaging(r)
	if err != nil {
		return catalog.ListProductsQuery{}, err
	}
	brandID, err := validators.ParseQueryUint64(r, "brand_id")
	if err != nil {
		return catalog.ListProductsQuery{}, err
	}
	return catalog.ListProductsQuery{
		BrandID: brandID,
		Name:    strings.TrimSpace(r.URL.Query().Get("name")),
		Offset:  paging.Offset,
		Limit:   paging.Limit,
	}, nil
}

// ProductList returns one page of active products.
func ProductList(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseProductQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views, total, err := svc.ListProducts(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, total, views)
	}
}

// ProductDetail returns a single active product.
func ProductDetail(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUint64(chi.URLParam(r, "productId"), "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.GetProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// ProductCreate inserts a product under the named brand.
func ProductCreate(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := operatorOrFail(w, r, logg)
		if !ok {
			return
		}

		var body catalog.CreateProductInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.CreateProduct(r.Context(), actor, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

// ProductUpdate replaces the mutable fields of an active product.
func ProductUpdate(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := operatorOrFail(w, r, logg)
		if !ok {
			return
		}

		id, err := validators.ParsePathUint64(chi.URLParam(r, "productId"), "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body catalog.UpdateProductInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.UpdateProduct(r.Context(), actor, id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// ProductDelete retires a product.
func ProductDelete(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := operatorOrFail(w, r, logg)
		if !ok {
			return
		}

		id, err := validators.ParsePathUint64(chi.URLParam(r, "productId"), "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteProduct(r.Context(), actor, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
