// Package module wires parse into the API using modkit
package module

import (
	"humanize/internal/modkit"
	"humanize/internal/modkit/httpkit"
	str "humanize/internal/platform/strings"
	parsehttp "humanize/internal/services/api/parse/http"
	parsesvc "humanize/internal/services/api/parse/service"
)

// DefaultBatchWorkers bounds batch concurrency when BATCH_WORKERS is unset
const DefaultBatchWorkers = 8

// Module serves /parse and /matchers. There is no default prefix since the two
// route families share none
type Module struct {
	built modkit.Built
	ports Ports
}

// New builds the parse module on deps.Parser, falling back to the process default
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	svc := parsesvc.New(deps.ParserOrDefault(), deps.Cfg.MayInt("BATCH_WORKERS", DefaultBatchWorkers))
	b := modkit.Build(append([]modkit.Option{modkit.WithName("parse")}, opts...)...)

	b.Register = func(r httpkit.Router) { parsehttp.Register(r, svc) }
	return &Module{built: b, ports: Ports{Service: svc, Counter: svc}}
}

func (m *Module) Name() string { return str.MustString(m.built.Name, "parse module name") }
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }
