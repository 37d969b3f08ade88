// Package middleware re-exports the chi and go-chi/cors middleware the API uses, so callers
// never import chi, and adds the locale, access log and panic middleware
package middleware

import (
	"net/http"
	"time"

	pstrings "humanize/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Func is the middleware shape every constructor here returns
type Func = func(http.Handler) http.Handler

// RequestID reuses an inbound X-Request-Id or mints one, and puts it on the context
func RequestID() Func { return chimw.RequestID }

// RealIP rewrites RemoteAddr from X-Real-IP / X-Forwarded-For
func RealIP() Func { return chimw.RealIP }

// NoCache forbids client and proxy caching
func NoCache() Func { return chimw.NoCache }

// Timeout cancels the request context after d and answers 504 if nothing was written
func Timeout(d time.Duration) Func { return chimw.Timeout(d) }

// Throttle caps in-flight requests at limit; further requests get 429. limit <= 0 disables it
func Throttle(limit int) Func {
	if limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return chimw.Throttle(limit)
}

// Heartbeat answers GET and HEAD on path with 200 before routing
func Heartbeat(path string) Func { return chimw.Heartbeat(path) }

// Compress gzips/deflates eligible responses at level (see compress/flate)
func Compress(level int) Func { return chimw.NewCompressor(level).Handler }

// CORSOptions is the subset of go-chi/cors the API configures
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	MaxAge         int
}

// CORS applies o. Accept-Language is allowed and Content-Language exposed by default since
// they carry locale negotiation
func CORS(o CORSOptions) Func {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Accept-Language", "Content-Type", "X-Request-ID"}),
		ExposedHeaders: pstrings.IfEmpty(o.ExposedHeaders, []string{"Content-Language", "X-Request-ID"}),
		MaxAge:         o.MaxAge,
	})
}
