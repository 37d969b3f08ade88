// Package api provides the HTTP API for the application
package api

import (
	"humanize/internal/core/humanize"
	"humanize/internal/platform/config"
	"humanize/internal/platform/logger"
	phttp "humanize/internal/platform/net/http"

	"humanize/internal/modkit"
	"humanize/internal/modkit/httpkit"
	"humanize/internal/modkit/module"

	metamod "humanize/internal/services/api/meta/module"
	parsemod "humanize/internal/services/api/parse/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Parser         *humanize.Parser
	Logger         *logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router. It adds root middleware, so r must
// not have routes yet
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:    opt.Config,
		Parser: opt.Parser,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// parse owns the registry and alone is capped by MAX_INFLIGHT; meta reports its size
	parse := parsemod.New(deps, modkit.WithMiddlewares(httpkit.InflightLimit(opt.Config)))
	counter := module.MustPortsOf[parsemod.Ports](parse).Counter
	mods := module.NewSet(
		parse,
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Matchers: counter})),
	)

	r.Use(httpkit.Heartbeat())
	r.NotFound(phttp.NotFound)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Config), mods.Mount)
}
