package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/glowmart/cosmetics-backend/api/responses"
	"github.com/glowmart/cosmetics-backend/api/validators"
	"github.com/glowmart/cosmetics-backend/internal/catalog"
	"github.com/glowmart/cosmetics-backend/pkg/logger"
)

// BrandList returns one page of active brands.
func BrandList(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paging, err := validators.ParsePaging(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views, total, err := svc.ListBrands(r.Context(), paging)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, total, views)
	}
}

// BrandListAll returns every active brand, unpaged.
func BrandListAll(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := svc.AllBrands(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, int64(len(views)), views)
	}
}

// BrandProducts returns one page of active products under a brand.
func BrandProducts(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUint64(chi.URLParam(r, "brandId"), "brandId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		paging, err := validators.ParsePaging(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views, total, err := svc.ListProducts(r.Context(), catalog.ListProductsQuery{
			BrandID: id,
			Offset:  paging.Offset,
			Limit:   paging.Limit,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, total, views)
	}
}

// BrandCreate inserts a batch of brands.
func BrandCreate(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := operatorOrFail(w, r, logg)
		if !ok {
			return
		}

		var body catalog.CreateBrandsInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views, err := svc.CreateBrands(r.Context(), actor, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, views)
	}
}

// BrandUpdate renames a brand.
func BrandUpdate(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := operatorOrFail(w, r, logg)
		if !ok {
			return
		}

		id, err := validators.ParsePathUint64(chi.URLParam(r, "brandId"), "brandId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body catalog.UpdateBrandInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.UpdateBrand(r.Context(), actor, id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// BrandReorder applies the submitted brand sequence assignments.
func BrandReorder(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := operatorOrFail(w, r, logg)
		if !ok {
			return
		}

		var body catalog.ReorderBrandsInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.ReorderBrands(r.Context(), actor, body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "reordered"})
	}
}

// BrandDelete retires a brand.
func BrandDelete(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := operatorOrFail(w, r, logg)
		if !ok {
			return
		}

		id, err := validators.ParsePathUint64(chi.URLParam(r, "brandId"), "brandId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteBrand(r.Context(), actor, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
