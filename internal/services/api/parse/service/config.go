package service

import (
	"humanize/internal/core/humanize"
	"humanize/internal/core/matcher"
	"humanize/internal/platform/config"
	"humanize/internal/platform/logger"
)

// ParserFromConfig builds the serving parser from cfg: RANKING picks the ranking policy
// (weight or registration) and a non-empty LOCALE locks the registry to that scope
func ParserFromConfig(cfg config.Conf) *humanize.Parser {
	ranking, err := matcher.ParseRanking(cfg.MayEnum("RANKING", "weight", "weight", "registration", "first"))
	if err != nil {
		// MayEnum already rejected anything ParseRanking does not know
		panic(err)
	}
	opts := []matcher.Option{matcher.WithRanking(ranking)}

	sc := cfg.MayScope("LOCALE")
	if sc.IsAny() {
		return humanize.New(opts...)
	}
	reg := humanize.NewScopedRegistry(sc, opts...)
	logger.Named("humanize").Info().
		Str("scope", sc.String()).
		Int("matchers", reg.Len()).
		Str("ranking", ranking.String()).
		Msg("scoped registry built")
	return humanize.NewWithRegistry(reg)
}
