// Package net holds what the transport layers share: request scoped context values and the
// reply envelope
package net

import (
	"context"

	"humanize/internal/core/scope"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type scopeKey struct{}

// WithRequestID stores id where chi's RequestID middleware would
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, chimw.RequestIDKey, id)
}

// RequestID is the request id chi assigned, or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// WithScope stores the scope negotiated for the request
func WithScope(ctx context.Context, sc scope.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// Scope is the negotiated scope; scope.Any when none was negotiated
func Scope(ctx context.Context) scope.Scope {
	if sc, ok := ctx.Value(scopeKey{}).(scope.Scope); ok {
		return sc
	}
	return scope.Any
}
