package middleware

import (
	"errors"
	"net/http"

	"github.com/glowmart/cosmetics-backend/api/responses"
	pkgauth "github.com/glowmart/cosmetics-backend/pkg/auth"
	"github.com/glowmart/cosmetics-backend/pkg/config"
	pkgerrors "github.com/glowmart/cosmetics-backend/pkg/errors"
	"github.com/glowmart/cosmetics-backend/pkg/logger"
)

// Auth validates the bearer token and seeds the request context with the
// operator identity. All decode failures are 401; the message distinguishes
// a missing or malformed header from a bad token.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := pkgauth.DecodeHeader(cfg, r.Header.Get("Authorization"))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, unauthorized(err))
				return
			}

			ctx := WithOperator(r.Context(), identity)
			if logg != nil {
				ctx = logg.WithOperator(ctx, identity.Username)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(err error) *pkgerrors.Error {
	switch {
	case errors.Is(err, pkgauth.ErrMissingAuthHeader):
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	case errors.Is(err, pkgauth.ErrMalformedAuthHeader):
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "malformed credentials")
	default:
		return pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token")
	}
}
