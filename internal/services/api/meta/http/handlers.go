// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"humanize/internal/core/lexicon"
	"humanize/internal/core/version"
	"humanize/internal/modkit/httpkit"
)

// Counter is satisfied by modules that report a recognizer count
type Counter interface {
	MatcherCount() int
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Matchers    Counter
	// now is a seam for tests
	now func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.now == nil {
		d.now = time.Now
	}
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"humanize-api"`
	Started string `json:"started"  example:"2026-10-19T13:00:00Z"`
	Now     string `json:"now"      example:"2026-10-19T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"lexicon"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"lexicon: decode: unexpected EOF"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-19T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name     string `json:"name"     example:"humanize-api"`
	Started  string `json:"started"  example:"2026-10-19T13:00:00Z"`
	Uptime   int64  `json:"uptime"   example:"300"`
	Matchers int    `json:"matchers" example:"14"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.now().UTC().Format(time.RFC3339),
	}, nil
}

// dependency names a readiness check. run returns "" when healthy, or why not; skipped ones
// are not wired in this process
type dependency struct {
	name    string
	skipped bool
	run     func() string
}

func (h *handlers) dependencies() []dependency {
	return []dependency{
		{name: "lexicon", run: func() string {
			if _, err := lexicon.Load(); err != nil {
				return err.Error()
			}
			return ""
		}},
		{name: "registry", skipped: h.deps.Matchers == nil, run: func() string {
			if h.deps.Matchers.MatcherCount() == 0 {
				return "no recognizers registered"
			}
			return ""
		}},
	}
}

// @Summary Readiness check
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok or degraded"
// @Failure 503 {object} ReadyResponse "a check failed"
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	out := ReadyResponse{Status: "ok", Now: h.deps.now().UTC().Format(time.RFC3339)}
	for _, p := range h.dependencies() {
		c := ReadyCheck{Name: p.name, Status: "ok"}
		switch {
		case p.skipped:
			c.Status = "skipped"
			if out.Status == "ok" {
				out.Status = "degraded"
			}
		default:
			if msg := p.run(); msg != "" {
				c.Status, c.Error = "fail", msg
				out.Status = "fail"
			}
		}
		out.Checks = append(out.Checks, c)
	}
	if out.Status == "fail" {
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
	}
	return out, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.deps.now().Sub(h.deps.StartedAt)
	out := ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}
	if h.deps.Matchers != nil {
		out.Matchers = h.deps.Matchers.MatcherCount()
	}
	return out, nil
}
