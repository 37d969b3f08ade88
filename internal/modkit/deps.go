// Package modkit provides module wiring and core deps
package modkit

import (
	"humanize/internal/core/humanize"
	"humanize/internal/platform/config"
	"humanize/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log    logger.Logger
	Cfg    config.Conf
	Parser *humanize.Parser
}

// ParserOrDefault returns the injected parser, or the process default when none was wired
func (d Deps) ParserOrDefault() *humanize.Parser {
	if d.Parser == nil {
		return humanize.Default()
	}
	return d.Parser
}
