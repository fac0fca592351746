package httpapi

import (
	"context"

	"github.com/akarpenko/warehouse-api/internal/server/auth"
)

type ctxKey int

const (
	claimsKey ctxKey = iota
	requestIDKey
)

// WithClaims stores validated token claims in the request context.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the claims stored by the Authenticate middleware.
// ok is false on routes that never passed through it.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
