// Package http provides the gin handlers and middleware for the auth
// endpoints.
package http

import (
	"context"

	"github.com/patrolbook/patrolbook/internal/auth/domain"
)

type contextKey string

const claimsContextKey contextKey = "auth_claims"

// WithClaims returns a context carrying the verified token payload.
func WithClaims(ctx context.Context, payload *domain.TokenPayload) context.Context {
	return context.WithValue(ctx, claimsContextKey, payload)
}

// GetClaims extracts the verified token payload set by RequireAuth. The
// second return is false for requests that never passed the middleware.
func GetClaims(ctx context.Context) (*domain.TokenPayload, bool) {
	payload, ok := ctx.Value(claimsContextKey).(*domain.TokenPayload)
	return payload, ok && payload != nil
}
