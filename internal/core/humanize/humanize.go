// Package humanize composes the built-in recognizers into a registry and exposes typed parse
// helpers over it.
//
// A Parser is immutable once built and safe for concurrent use. Default returns a process-wide
// parser built on first use; callers that need a different ranking or a scope-locked registry
// build their own with New or NewWithRegistry
package humanize

import (
	"sync"
	"time"

	"humanize/internal/core/lexicon"
	"humanize/internal/core/matcher"
	"humanize/internal/core/recognize/english"
	"humanize/internal/core/recognize/lexical"
	"humanize/internal/core/recognize/universal"
	"humanize/internal/core/scope"
	"humanize/internal/core/value"
	"humanize/internal/platform/logger"

	"github.com/rs/zerolog"
)

// DefaultRegistry builds an unscoped registry holding every built-in recognizer.
// Registration order is universal, english, then the remaining lexicon locales
func DefaultRegistry(opts ...matcher.Option) *matcher.Registry {
	reg := matcher.NewRegistry(opts...)
	registerBuiltins(reg)
	return reg
}

// NewScopedRegistry builds a registry locked to sc holding the built-in recognizers it accepts.
// Each rejected recognizer is logged at debug level
func NewScopedRegistry(sc scope.Scope, opts ...matcher.Option) *matcher.Registry {
	reg := matcher.NewScoped(sc, opts...)
	registerBuiltins(reg)

	log := logger.Named("humanize")
	if log.GetLevel() <= zerolog.DebugLevel {
		for _, info := range DefaultRegistry().Matchers() {
			if scope.Matches(sc, info.Scope) {
				continue
			}
			log.Debug().
				Str("matcher", info.Name).
				Str("declared", info.Scope.String()).
				Str("registry_scope", sc.String()).
				Msg("recognizer outside registry scope skipped")
		}
	}
	return reg
}

func registerBuiltins(reg *matcher.Registry) {
	p := lexicon.MustLoad()
	universal.Register(reg, p)
	if t, ok := p.Table(english.Locale); ok {
		english.Register(reg, t)
	}
	lexical.Register(reg, p, universal.WildcardLocale, english.Locale)
}

// Parser answers typed queries against one registry
type Parser struct {
	reg *matcher.Registry
}

// New builds a parser over DefaultRegistry(opts...)
func New(opts ...matcher.Option) *Parser {
	return &Parser{reg: DefaultRegistry(opts...)}
}

// NewWithRegistry wraps an existing registry. The registry must not be mutated afterwards
func NewWithRegistry(reg *matcher.Registry) *Parser {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Parser{reg: reg}
}

var (
	defaultOnce   sync.Once
	defaultParser *Parser
)

// Default returns the shared parser with weight ranking, built on first call
func Default() *Parser {
	defaultOnce.Do(func() { defaultParser = New() })
	return defaultParser
}

// Registry exposes the underlying registry
func (p *Parser) Registry() *matcher.Registry { return p.reg }

// Resolve returns every ranked candidate for text
func (p *Parser) Resolve(text string, kind value.Kind, sc scope.Scope) []value.Candidate {
	return p.reg.Resolve(text, kind, sc)
}

// ResolveBest returns the top ranked value for text
func (p *Parser) ResolveBest(text string, kind value.Kind, sc scope.Scope) (value.Value, bool) {
	return p.reg.ResolveBest(text, kind, sc)
}

// ParseBoolean reads text as a boolean
func (p *Parser) ParseBoolean(text string, sc scope.Scope) (bool, bool) {
	v, ok := p.reg.ResolveBest(text, value.Boolean, sc)
	if !ok {
		return false, false
	}
	return v.Bool()
}

// ParseInteger reads text as a signed integer
func (p *Parser) ParseInteger(text string, sc scope.Scope) (int64, bool) {
	v, ok := p.reg.ResolveBest(text, value.Integer, sc)
	if !ok {
		return 0, false
	}
	return v.Integer()
}

// ParseOrdinal reads text as an ordinal position
func (p *Parser) ParseOrdinal(text string, sc scope.Scope) (int64, bool) {
	v, ok := p.reg.ResolveBest(text, value.Ordinal, sc)
	if !ok {
		return 0, false
	}
	return v.Ordinal()
}

// ParseDuration reads text as a duration
func (p *Parser) ParseDuration(text string, sc scope.Scope) (time.Duration, bool) {
	v, ok := p.reg.ResolveBest(text, value.Duration, sc)
	if !ok {
		return 0, false
	}
	return v.Duration()
}

// ParseInstant reads text as a point in time
func (p *Parser) ParseInstant(text string, sc scope.Scope) (time.Time, bool) {
	v, ok := p.reg.ResolveBest(text, value.Instant, sc)
	if !ok {
		return time.Time{}, false
	}
	return v.Instant()
}
