package controllers

import (
	"net/http"

	"github.com/glowmart/cosmetics-backend/api/middleware"
	"github.com/glowmart/cosmetics-backend/api/responses"
	"github.com/glowmart/cosmetics-backend/api/validators"
	"github.com/glowmart/cosmetics-backend/internal/auth"
	pkgauth "github.com/glowmart/cosmetics-backend/pkg/auth"
	pkgerrors "github.com/glowmart/cosmetics-backend/pkg/errors"
	"github.com/glowmart/cosmetics-backend/pkg/logger"
)

func operatorOrFail(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (pkgauth.Identity, bool) {
	identity := middleware.OperatorFromContext(r.Context())
	if identity == nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
		return pkgauth.Identity{}, false
	}
	return *identity, true
}

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc *auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body auth.LoginInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AuthMe returns the operator behind the presented token.
func AuthMe(svc *auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := operatorOrFail(w, r, logg)
		if !ok {
			return
		}

		result, err := svc.CurrentOperator(r.Context(), actor)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AuthCreateOperator provisions a new operator account.
func AuthCreateOperator(svc *auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := operatorOrFail(w, r, logg)
		if !ok {
			return
		}

		var body auth.CreateOperatorInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateOperator(r.Context(), actor, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// AuthChangePassword rotates the caller's password and returns a new token.
func AuthChangePassword(svc *auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := operatorOrFail(w, r, logg)
		if !ok {
			return
		}

		var body auth.ChangePasswordInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ChangePassword(r.Context(), actor, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
