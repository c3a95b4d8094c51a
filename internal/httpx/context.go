package httpx

import (
	"context"
	"net/http"

	"bookshop/internal/platform/crypto"
)

type contextKey string

const (
	usernameKey  contextKey = "username"
	requestIDKey contextKey = "requestID"
	claimsKey    contextKey = "claims"
)

// UsernameFrom retrieves the authenticated username from the request context.
func UsernameFrom(r *http.Request) string {
	if v, ok := r.Context().Value(usernameKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithUsername returns a new context carrying the authenticated username.
func ContextWithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// RequestIDFrom retrieves the request id assigned by RequestIDMiddleware.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ClaimsFrom returns the verified token claims, or nil on unauthenticated routes.
func ClaimsFrom(r *http.Request) *crypto.Claims {
	c, _ := r.Context().Value(claimsKey).(*crypto.Claims)
	return c
}

func ContextWithClaims(ctx context.Context, c *crypto.Claims) context.Context {
	ctx = context.WithValue(ctx, claimsKey, c)
	return ContextWithUsername(ctx, c.Sub)
}
