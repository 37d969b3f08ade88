package humanize

import (
	"time"

	"humanize/internal/core/scope"
	"humanize/internal/core/value"
)

// Ordinal is a position such as "1st" or "twenty-first". It is a distinct type so generic
// calls can ask for an ordinal rather than a cardinal integer
type Ordinal int64

// Type is the set of Go types a value can be parsed into
type Type interface {
	bool | int64 | Ordinal | time.Duration | time.Time
}

// KindOf reports the value kind queried for T
func KindOf[T Type]() value.Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return value.Boolean
	case int64:
		return value.Integer
	case Ordinal:
		return value.Ordinal
	case time.Duration:
		return value.Duration
	default:
		return value.Instant
	}
}

// Parse reads text as T under the wildcard scope
func Parse[T Type](p *Parser, text string) (T, bool) {
	return ParseIn[T](p, text, scope.Any)
}

// ParseIn reads text as T under sc
func ParseIn[T Type](p *Parser, text string, sc scope.Scope) (T, bool) {
	var zero T
	v, ok := p.reg.ResolveBest(text, KindOf[T](), sc)
	if !ok {
		return zero, false
	}
	out, ok := convert[T](v)
	if !ok {
		return zero, false
	}
	return out, true
}

// ParseOr reads text as T under the wildcard scope, returning def when nothing matches
func ParseOr[T Type](p *Parser, text string, def T) T {
	return ParseOrIn(p, text, scope.Any, def)
}

// ParseOrIn reads text as T under sc, returning def when nothing matches
func ParseOrIn[T Type](p *Parser, text string, sc scope.Scope, def T) T {
	if v, ok := ParseIn[T](p, text, sc); ok {
		return v
	}
	return def
}

func convert[T Type](v value.Value) (T, bool) {
	var out any
	var ok bool
	switch v.Kind() {
	case value.Boolean:
		out, ok = v.Bool()
	case value.Integer:
		out, ok = v.Integer()
	case value.Ordinal:
		var n int64
		n, ok = v.Ordinal()
		out = Ordinal(n)
	case value.Duration:
		out, ok = v.Duration()
	case value.Instant:
		out, ok = v.Instant()
	}
	t, match := out.(T)
	return t, ok && match
}
