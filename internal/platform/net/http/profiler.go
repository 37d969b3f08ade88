package http

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves chi's pprof bundle at prefix (e.g. "/debug") when enabled
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	pprof := http.StripPrefix(prefix, chimw.Profiler())
	for _, p := range []string{prefix, prefix + "/*"} {
		r.Handle(p, pprof)
	}
}
