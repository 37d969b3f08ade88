package middleware

import (
	"net/http"
	"runtime/debug"

	perr "humanize/internal/platform/errors"
	"humanize/internal/platform/logger"
	pnet "humanize/internal/platform/net"
)

// RecoverJSON answers a panicking handler with the panic envelope through write and logs
// the value plus stack. http.ErrAbortHandler is re-raised so net/http can drop the conn.
// A matcher that produces the wrong value kind panics inside the registry and lands here
func RecoverJSON(write func(w http.ResponseWriter, status int, body any)) Func {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				switch v {
				case nil:
					return
				case http.ErrAbortHandler:
					panic(v)
				}

				reqID := pnet.RequestID(r.Context())
				logger.C(r.Context()).Error().
					Interface("panic", v).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				if reqID != "" {
					w.Header().Set("X-Request-ID", reqID)
				}
				status, body := pnet.Error(perr.PanicErrf("panic recovered"), reqID)
				write(w, status, body)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
