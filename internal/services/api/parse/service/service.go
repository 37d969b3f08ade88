// Package service contains parse workflows
package service

import (
	"context"

	"humanize/internal/core/humanize"
	"humanize/internal/core/scope"
	"humanize/internal/core/value"
	perr "humanize/internal/platform/errors"
	"humanize/internal/platform/logger"
	pnet "humanize/internal/platform/net"
	"humanize/internal/services/api/parse/domain"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Service defines the parse service contract
type Service interface {
	domain.ServicePort
	domain.CounterPort
}

// Svc implements the parse service over a shared parser
type Svc struct {
	parser  *humanize.Parser
	workers int
	newID   func() string
}

// New constructs a parse service. workers bounds batch concurrency, values below 1 mean 1
func New(p *humanize.Parser, workers int) *Svc {
	if p == nil {
		panic("parse.Service requires a non nil Parser")
	}
	if workers < 1 {
		workers = 1
	}
	return &Svc{parser: p, workers: workers, newID: uuid.NewString}
}

// Parse resolves in.Text as in.Kind. An empty in.Locale falls back to the scope negotiated
// for the request, the wildcard when there is none
func (s *Svc) Parse(ctx context.Context, in domain.ParseInput) (domain.ParseResult, error) {
	kind, err := value.ParseKind(in.Kind)
	if err != nil {
		return domain.ParseResult{}, perr.WithField(err, "kind")
	}
	sc, err := resolveScope(in.Locale, pnet.Scope(ctx))
	if err != nil {
		return domain.ParseResult{}, err
	}

	res := s.resolve(in.Text, kind, sc, in.All)
	if !res.Matched {
		logger.C(ctx).Debug().Str("kind", kind.String()).Str("scope", sc.String()).Msg("no recognizer matched")
		if in.Strict {
			return res, perr.WithField(perr.NoMatchf("no %s recognized in %q", kind, in.Text), "text")
		}
	}
	return res, nil
}

// ParseBatch resolves every item concurrently and returns results in input order. Items
// without a locale use the batch locale, then the request scope
func (s *Svc) ParseBatch(ctx context.Context, in domain.BatchInput) (domain.BatchResult, error) {
	if n := len(in.Items); n == 0 || n > domain.MaxBatchItems {
		return domain.BatchResult{}, perr.WithField(
			perr.InvalidArgf("batch must hold 1 to %d items, got %d", domain.MaxBatchItems, n), "items")
	}
	batchScope, err := resolveScope(in.Locale, pnet.Scope(ctx))
	if err != nil {
		return domain.BatchResult{}, perr.WithField(err, "locale")
	}

	out := make([]domain.ParseResult, len(in.Items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, item := range in.Items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return perr.Wrap(err, perr.ErrorCodeUnavailable, "batch cancelled")
			}
			kind, err := value.ParseKind(item.Kind)
			if err != nil {
				return perr.WithOp(perr.WithField(err, "kind"), "item")
			}
			sc, err := resolveScope(item.Locale, batchScope)
			if err != nil {
				return perr.WithOp(perr.WithField(err, "locale"), "item")
			}
			out[i] = s.resolve(item.Text, kind, sc, in.All)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.BatchResult{}, err
	}

	id := s.newID()
	logger.C(ctx).Debug().Str("batch_id", id).Int("items", len(out)).Msg("batch resolved")
	return domain.BatchResult{BatchID: id, Results: out}, nil
}

// Matchers returns a snapshot of the serving registry
func (s *Svc) Matchers(_ context.Context) (domain.MatchersResult, error) {
	reg := s.parser.Registry()
	infos := reg.Matchers()
	return domain.MatchersResult{
		Scope:    reg.Scope().String(),
		Locked:   reg.Locked(),
		Ranking:  reg.Ranking().String(),
		Count:    len(infos),
		Matchers: infos,
	}, nil
}

// MatcherCount reports the number of registered recognizers
func (s *Svc) MatcherCount() int { return s.parser.Registry().Len() }

func (s *Svc) resolve(text string, kind value.Kind, sc scope.Scope, all bool) domain.ParseResult {
	res := domain.ParseResult{Text: text, Kind: kind, Locale: sc.String()}
	cands := s.parser.Resolve(text, kind, sc)
	if len(cands) == 0 {
		return res
	}
	best := cands[0].Value
	res.Matched = true
	res.Value = &best
	if all {
		res.Candidates = cands
	}
	return res
}

// resolveScope parses an explicit locale, or returns fallback when none was given
func resolveScope(locale string, fallback scope.Scope) (scope.Scope, error) {
	if locale == "" {
		return fallback, nil
	}
	sc, err := scope.Parse(locale)
	if err != nil {
		return scope.Any, perr.WithField(err, "locale")
	}
	return sc, nil
}
