// Command humanize-api serves humanized value parsing over HTTP.
//
// Server settings are read from CORE_API_* (API_PORT, timeouts, CORS_ORIGINS, PROFILER)
// and parser settings from HUMANIZE_* (RANKING, LOCALE)
package main

import (
	"context"
	"os/signal"
	"syscall"

	"humanize/internal/core/version"
	"humanize/internal/platform/config"
	"humanize/internal/platform/logger"
	phttp "humanize/internal/platform/net/http"
	"humanize/internal/services/api"
	parsesvc "humanize/internal/services/api/parse/service"
)

func main() {
	log := logger.Get()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.New(), log); err != nil {
		log.Fatal().Err(err).Msg("humanize-api exited")
	}
	log.Info().Msg("humanize-api stopped")
}

func run(ctx context.Context, env config.Conf, log *logger.Logger) error {
	apiCfg := env.Prefix("CORE_API_")
	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.Options{
		Config:         apiCfg,
		Parser:         parsesvc.ParserFromConfig(env.Prefix("HUMANIZE_")),
		Logger:         log,
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})

	bi := version.Info()
	log.Info().Str("addr", srv.Addr()).Str("version", bi.Version).Str("commit", bi.Commit).Msg("humanize-api starting")
	return srv.Run(ctx)
}
