package httpkit

import (
	"compress/flate"
	"time"

	"humanize/internal/platform/config"
	phttp "humanize/internal/platform/net/http"
	"humanize/internal/platform/net/middleware"
)

// CommonStack is the stack every /api/v1 route runs behind, outermost first. Tunables from
// cfg: CORS_ORIGINS, SLOW_REQUEST and REQUEST_TIMEOUT
func CommonStack(cfg config.Conf) Middlewares {
	return Middlewares{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON(phttp.JSON),
		middleware.NoCache(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{
			Slow: cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		}),
		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		}),
		middleware.Compress(flate.BestSpeed),
		Locale(),
		middleware.Timeout(cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second)),
	}
}

// InflightLimit caps the concurrent requests of the module it is attached to at cfg
// MAX_INFLIGHT and answers the rest with 429. Unset or 0 means unlimited
func InflightLimit(cfg config.Conf) middleware.Func {
	return middleware.Throttle(cfg.MayInt("MAX_INFLIGHT", 0))
}

// HealthPath is the load balancer liveness path answered ahead of routing
const HealthPath = "/health"

// Heartbeat answers HealthPath on the root router. It compares the full request path, so it
// belongs on the root mux rather than in CommonStack
func Heartbeat() middleware.Func { return middleware.Heartbeat(HealthPath) }

// Locale is the locale middleware answering malformed ?locale= with the API envelope
func Locale() middleware.Func { return middleware.Locale(phttp.JSON) }
