package middleware

import (
	"net/http"
	"time"

	"humanize/internal/platform/logger"
	pnet "humanize/internal/platform/net"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// AccessLogOptions configures AccessLogZerolog
type AccessLogOptions struct {
	// Slow promotes requests taking at least this long to warn; zero turns it off
	Slow time.Duration
	// Logger defaults to the process logger
	Logger *logger.Logger
}

// AccessLogZerolog writes one line per request once the handler returns. 5xx log at
// error and slow requests at warn; the request id is included when RequestID ran earlier
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			took := time.Since(start)

			base := opt.Logger
			if base == nil {
				base = logger.Get()
			}
			log := logger.Enrich(base, logger.WithRequest(r.Context(), pnet.RequestID(r.Context()), ""))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.WithLevel(accessLevel(status, took, opt.Slow)).
				Int("status", status).
				Dur("elapsed", took).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", routePattern(r)).
				Int("bytes", ww.BytesWritten()).
				Msg("request done")
		})
	}
}

func accessLevel(status int, took, slow time.Duration) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case slow > 0 && took >= slow:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// routePattern is the matched chi pattern, e.g. "/api/v1/parse"; empty outside chi
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		return rc.RoutePattern()
	}
	return ""
}
