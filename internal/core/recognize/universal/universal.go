// Package universal registers the locale independent recognizers: the digit booleans "1" and
// "0", plain decimal integers, Go duration literals and RFC 3339 instants
package universal

import (
	"strconv"
	"strings"
	"time"

	"humanize/internal/core/lexicon"
	"humanize/internal/core/matcher"
	"humanize/internal/core/normalize"
	"humanize/internal/core/recognize/lexical"
	"humanize/internal/core/scope"
	"humanize/internal/core/value"
)

// Weight of every universal recognizer; machine literals are unambiguous
const Weight = 100

// WildcardLocale is the lexicon key holding the digit booleans
const WildcardLocale = "*"

// instant layouts tried in order; dates without a zone are read as UTC
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Register adds the universal matchers to reg and returns how many were accepted
func Register(reg *matcher.Registry, p *lexicon.Pack) int {
	ms := []matcher.Matcher{
		matcher.Fixed("universal/integer", scope.Any, value.Integer, Weight, Integer),
		matcher.Fixed("universal/duration", scope.Any, value.Duration, Weight, Duration),
		matcher.Fixed("universal/instant", scope.Any, value.Instant, Weight, Instant),
	}
	if t, ok := p.Table(WildcardLocale); ok && t.HasBooleans() {
		ms = append([]matcher.Matcher{lexical.Booleans(t)}, ms...)
	}
	n := 0
	for _, m := range ms {
		if reg.Register(m) {
			n++
		}
	}
	return n
}

// Integer reads an optionally signed run of decimal digits
func Integer(text string) (value.Value, bool) {
	key := normalize.Key(text)
	if !digitsOnly(strings.TrimLeft(key, "+-"), 1) || strings.Count(key, "-")+strings.Count(key, "+") > 1 {
		return value.Value{}, false
	}
	n, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return value.Value{}, false
	}
	return value.Int(n), true
}

// Duration reads a Go duration literal such as "90s" or "1h30m". Whitespace is dropped but
// case is kept, since unit case is significant ("m" is minutes, "M" is nothing)
func Duration(text string) (value.Value, bool) {
	key := strings.Join(strings.Fields(text), "")
	if key == "" {
		return value.Value{}, false
	}
	d, err := time.ParseDuration(key)
	if err != nil {
		return value.Value{}, false
	}
	return value.Dur(d), true
}

// Instant reads an RFC 3339 timestamp or an ISO date
func Instant(text string) (value.Value, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return value.Value{}, false
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return value.At(t), true
		}
	}
	return value.Value{}, false
}

func digitsOnly(s string, min int) bool {
	if len(s) < min {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
