package middleware

import (
	"net/http"

	"humanize/internal/core/scope"
	"humanize/internal/platform/logger"
	pnet "humanize/internal/platform/net"
)

// LocaleQueryParam overrides Accept-Language when present on the query string
const LocaleQueryParam = "locale"

// Locale negotiates the request scope. The ?locale= parameter wins over the first
// Accept-Language tag; neither present means the wildcard. A malformed ?locale= is answered
// with the mapped error envelope, a malformed header is ignored
func Locale(write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sc := scope.FromAcceptLanguage(r.Header.Get("Accept-Language"))
			if q := r.URL.Query().Get(LocaleQueryParam); q != "" {
				parsed, err := scope.Parse(q)
				if err != nil {
					status, body := pnet.Error(err, pnet.RequestID(r.Context()))
					write(w, status, body)
					return
				}
				sc = parsed
			}

			ctx := pnet.WithScope(r.Context(), sc)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), sc.String())
			if !sc.IsAny() {
				w.Header().Set("Content-Language", sc.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
