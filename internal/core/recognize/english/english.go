// Package english registers the English recognizers: boolean words, digit grouped integers,
// cardinal number words and ordinals written with a suffix or as words
package english

import (
	"regexp"
	"strconv"
	"strings"

	"humanize/internal/core/lexicon"
	"humanize/internal/core/matcher"
	"humanize/internal/core/normalize"
	"humanize/internal/core/recognize/lexical"
	"humanize/internal/core/value"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
)

// Locale is the lexicon key of the English table
const Locale = "en"

const (
	// WeightExact is used for unambiguous forms ("1st", boolean words)
	WeightExact = 100
	// WeightGrouped is used for digit grouped integers ("1,234")
	WeightGrouped = 90
	// WeightWords is used for spelled out numbers
	WeightWords = 80
)

var (
	ordinalSuffixRe = regexp.MustCompile(`^(\d+)(st|nd|rd|th)$`)

	// CLDR English ordinal categories mapped to their suffix
	suffixByRule = map[locales.PluralRule]string{
		locales.PluralRuleOne:   "st",
		locales.PluralRuleTwo:   "nd",
		locales.PluralRuleFew:   "rd",
		locales.PluralRuleOther: "th",
	}

	cldr = en.New()
)

// Register adds the English matchers backed by table t and returns how many were accepted
func Register(reg *matcher.Registry, t *lexicon.Table) int {
	w := newWords(t)
	ms := []matcher.Matcher{
		lexical.Booleans(t),
		matcher.Fixed("en/ordinal-suffix", t.Scope, value.Ordinal, WeightExact, OrdinalSuffix),
	}
	if t.GroupSeparator != "" {
		re := groupedRe(t.GroupSeparator)
		sep := t.GroupSeparator
		ms = append(ms, matcher.Fixed("en/grouped-integer", t.Scope, value.Integer, WeightGrouped,
			func(text string) (value.Value, bool) { return grouped(re, sep, text) }))
	}
	ms = append(ms,
		matcher.Fixed("en/cardinal-words", t.Scope, value.Integer, WeightWords, w.cardinalValue),
		matcher.Fixed("en/ordinal-words", t.Scope, value.Ordinal, WeightWords, w.ordinalValue),
	)
	n := 0
	for _, m := range ms {
		if reg.Register(m) {
			n++
		}
	}
	return n
}

// OrdinalSuffix reads "1st", "22nd", "113th". The suffix must be the one English uses for
// the number, so "1th" and "11st" are rejected
func OrdinalSuffix(text string) (value.Value, bool) {
	m := ordinalSuffixRe.FindStringSubmatch(normalize.Key(text))
	if m == nil {
		return value.Value{}, false
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return value.Value{}, false
	}
	if suffixByRule[cldr.OrdinalPluralRule(float64(n), 0)] != m[2] {
		return value.Value{}, false
	}
	return value.Ord(n), true
}

func groupedRe(sep string) *regexp.Regexp {
	q := regexp.QuoteMeta(sep)
	return regexp.MustCompile(`^[+-]?\d{1,3}(?:` + q + `\d{3})+$`)
}

func grouped(re *regexp.Regexp, sep, text string) (value.Value, bool) {
	key := normalize.Key(text)
	if !re.MatchString(key) {
		return value.Value{}, false
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(key, sep, ""), 10, 64)
	if err != nil {
		return value.Value{}, false
	}
	return value.Int(n), true
}
