package controllers

import (
	"net/http"

	"github.com/glowmart/cosmetics-backend/api/responses"
	"github.com/glowmart/cosmetics-backend/api/validators"
	"github.com/glowmart/cosmetics-backend/internal/catalog"
	"github.com/glowmart/cosmetics-backend/pkg/logger"
)

// HotProductList returns the current hot-products strip.
func HotProductList(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := svc.HotProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, int64(len(views)), views)
	}
}

// HotProductReplace swaps the entire hot list for the submitted one.
func HotProductReplace(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := operatorOrFail(w, r, logg)
		if !ok {
			return
		}

		var body catalog.ReplaceHotProductsInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.ReplaceHotProducts(r.Context(), actor, body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "replaced"})
	}
}
