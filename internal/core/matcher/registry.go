package matcher

import (
	"fmt"
	"sort"
	"strings"

	"humanize/internal/core/scope"
	"humanize/internal/core/value"
	perr "humanize/internal/platform/errors"
)

// Ranking selects how Resolve orders the candidates it returns
type Ranking uint8

const (
	// RankByWeight sorts candidates by weight descending, ties keep registration order
	RankByWeight Ranking = iota
	// RankByRegistration keeps registration order, so the first registered hit wins
	RankByRegistration
)

// String returns the config name of r
func (r Ranking) String() string {
	switch r {
	case RankByWeight:
		return "weight"
	case RankByRegistration:
		return "registration"
	default:
		return fmt.Sprintf("ranking(%d)", uint8(r))
	}
}

// ParseRanking maps "weight" or "registration" to a Ranking
func ParseRanking(s string) (Ranking, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "weight":
		return RankByWeight, nil
	case "registration", "first":
		return RankByRegistration, nil
	default:
		return RankByWeight, perr.InvalidArgf("unknown ranking %q", s)
	}
}

// Option configures a Registry
type Option func(*Registry)

// WithRanking sets the candidate ordering policy
func WithRanking(r Ranking) Option {
	return func(reg *Registry) { reg.ranking = r }
}

// Registry owns an ordered set of matchers. Registration order is the tie-break for ranking.
//
// Register is not safe for concurrent use. Once construction is done the registry is never
// mutated by queries, so Resolve may be called from any number of goroutines
type Registry struct {
	scope    scope.Scope
	locked   bool
	ranking  Ranking
	matchers []Matcher
}

// NewRegistry creates a registry that accepts matchers of every scope
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{}
	for _, o := range opts {
		o(r)
	}
	return r
}

// NewScoped creates a registry locked to sc: matchers whose scope does not match sc are rejected
func NewScoped(sc scope.Scope, opts ...Option) *Registry {
	r := NewRegistry(opts...)
	r.scope = sc
	r.locked = true
	return r
}

// Register appends m and reports whether it was accepted. A scope-locked registry rejects
// matchers whose declared scope does not match its own; nil matchers are always rejected
func (r *Registry) Register(m Matcher) bool {
	if m == nil {
		return false
	}
	if r.locked && !scope.Matches(r.scope, m.Scope()) {
		return false
	}
	r.matchers = append(r.matchers, m)
	return true
}

// Resolve runs every matcher of kind whose scope matches requested and returns the hits ranked
// per the registry policy. No match yields an empty slice
func (r *Registry) Resolve(text string, kind value.Kind, requested scope.Scope) []value.Candidate {
	out := []value.Candidate{}
	for _, m := range r.matchers {
		if m.Kind() != kind || !scope.Matches(requested, m.Scope()) {
			continue
		}
		c, ok := m.Match(text)
		if !ok {
			continue
		}
		if c.Value.Kind() != m.Kind() {
			panic(fmt.Sprintf("matcher %q declared %s but produced %s", m.Name(), m.Kind(), c.Value.Kind()))
		}
		if c.Matcher == "" {
			c.Matcher = m.Name()
		}
		out = append(out, c)
	}
	if r.ranking == RankByWeight && len(out) > 1 {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
	}
	return out
}

// ResolveBest returns the value of the top ranked candidate
func (r *Registry) ResolveBest(text string, kind value.Kind, requested scope.Scope) (value.Value, bool) {
	cs := r.Resolve(text, kind, requested)
	if len(cs) == 0 {
		return value.Value{}, false
	}
	return cs[0].Value, true
}

// Matchers returns a snapshot of the registered matchers in registration order
func (r *Registry) Matchers() []Info {
	out := make([]Info, 0, len(r.matchers))
	for _, m := range r.matchers {
		out = append(out, Describe(m))
	}
	return out
}

// Len returns the number of registered matchers
func (r *Registry) Len() int { return len(r.matchers) }

// Scope returns the lock scope, scope.Any for unscoped registries
func (r *Registry) Scope() scope.Scope { return r.scope }

// Locked reports whether the registry was created with NewScoped
func (r *Registry) Locked() bool { return r.locked }

// Ranking returns the ordering policy
func (r *Registry) Ranking() Ranking { return r.ranking }
