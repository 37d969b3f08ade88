// Package lexical registers table-driven boolean recognizers for every lexicon locale
package lexical

import (
	"humanize/internal/core/lexicon"
	"humanize/internal/core/matcher"
	"humanize/internal/core/normalize"
	"humanize/internal/core/value"
)

// Weight of an exact word hit
const Weight = 100

// Booleans returns a matcher for the boolean words of t
func Booleans(t *lexicon.Table) matcher.Matcher {
	return matcher.Fixed("booleans/"+t.Locale, t.Scope, value.Boolean, Weight, func(text string) (value.Value, bool) {
		b, ok := t.Boolean(normalize.Key(text))
		if !ok {
			return value.Value{}, false
		}
		return value.Bool(b), true
	})
}

// Register adds boolean matchers for every table of p except the listed locale keys,
// which other modules own. It returns how many matchers the registry accepted
func Register(reg *matcher.Registry, p *lexicon.Pack, skip ...string) int {
	skipped := make(map[string]struct{}, len(skip))
	for _, s := range skip {
		skipped[s] = struct{}{}
	}
	n := 0
	for _, t := range p.Tables {
		if _, ok := skipped[t.Locale]; ok || !t.HasBooleans() {
			continue
		}
		if reg.Register(Booleans(t)) {
			n++
		}
	}
	return n
}
