package middleware

import (
	"context"

	pkgauth "github.com/glowmart/cosmetics-backend/pkg/auth"
)

type contextKey string

const ctxOperator contextKey = "operator"

// OperatorFromContext returns the identity stored by the Auth middleware, or
// nil when the request was not authenticated.
func OperatorFromContext(ctx context.Context) *pkgauth.Identity {
	if ctx == nil {
		return nil
	}
	if identity, ok := ctx.Value(ctxOperator).(*pkgauth.Identity); ok {
		return identity
	}
	return nil
}

// WithOperator injects the operator identity into the context.
func WithOperator(ctx context.Context, identity *pkgauth.Identity) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxOperator, identity)
}
