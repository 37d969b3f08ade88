// Package module mounts the meta endpoints (health, readiness, version, service) under /meta
package module

import (
	"time"

	"humanize/internal/core/version"
	"humanize/internal/modkit"
	"humanize/internal/modkit/httpkit"
	str "humanize/internal/platform/strings"
	metahttp "humanize/internal/services/api/meta/http"
)

// Ports are what meta reads from sibling modules; pass them with modkit.WithPorts
type Ports struct {
	Matchers metahttp.Counter
}

// Module serves the meta endpoints
type Module struct {
	built     modkit.Built
	startedAt time.Time
}

// New builds the meta module. Defaults are name "meta" and prefix "/meta"
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)
	m := &Module{startedAt: time.Now()}

	ports, _ := b.Ports.(Ports)
	b.Register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: version.Info().Service,
			StartedAt:   m.startedAt,
			Matchers:    ports.Matchers,
		})
	}
	m.built = b
	return m
}

func (m *Module) Name() string { return str.MustString(m.built.Name, "meta module name") }
func (m *Module) Ports() any { return nil }
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }
