// Package matcher holds the recognizer contract and the registry that selects, invokes and
// ranks recognizers for a (text, kind, scope) query
package matcher

import (
	"humanize/internal/core/scope"
	"humanize/internal/core/value"
)

// Matcher recognizes text as one kind of value for one locale scope.
// Match must be a pure function of its input: no I/O, no shared mutable state
type Matcher interface {
	// Name is diagnostic only
	Name() string
	// Scope is the locale the matcher understands, scope.Any for every locale
	Scope() scope.Scope
	// Kind is the only kind of value Match may return
	Kind() value.Kind
	// Match returns a candidate and true when text is recognized
	Match(text string) (value.Candidate, bool)
}

// MatchFunc is the recognition function wrapped by New
type MatchFunc func(text string) (value.Candidate, bool)

// ValueFunc is the single-shot variant without a weight, wrapped by Fixed
type ValueFunc func(text string) (value.Value, bool)

type funcMatcher struct {
	name  string
	scope scope.Scope
	kind  value.Kind
	fn    MatchFunc
}

// New adapts fn into a Matcher
func New(name string, sc scope.Scope, kind value.Kind, fn MatchFunc) Matcher {
	return &funcMatcher{name: name, scope: sc, kind: kind, fn: fn}
}

// Fixed adapts a ValueFunc into a Matcher whose candidates all carry weight
func Fixed(name string, sc scope.Scope, kind value.Kind, weight int, fn ValueFunc) Matcher {
	return New(name, sc, kind, func(text string) (value.Candidate, bool) {
		v, ok := fn(text)
		if !ok {
			return value.Candidate{}, false
		}
		return value.Weighted(v, weight), true
	})
}

func (m *funcMatcher) Name() string       { return m.name }
func (m *funcMatcher) Scope() scope.Scope { return m.scope }
func (m *funcMatcher) Kind() value.Kind   { return m.kind }

func (m *funcMatcher) Match(text string) (value.Candidate, bool) {
	if m.fn == nil {
		return value.Candidate{}, false
	}
	return m.fn(text)
}

// Info is a diagnostic snapshot of a registered matcher
type Info struct {
	Name  string      `json:"name"`
	Scope scope.Scope `json:"scope"`
	Kind  value.Kind  `json:"kind"`
}

// Describe returns the Info of m
func Describe(m Matcher) Info {
	return Info{Name: m.Name(), Scope: m.Scope(), Kind: m.Kind()}
}
