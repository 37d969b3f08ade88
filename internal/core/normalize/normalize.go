// Package normalize folds free-form user input into the lookup key recognizers compare against.
//
// Key drops invalid UTF-8 and control characters other than tab, CR and LF, decomposes (NFKD),
// case folds, strips combining marks and format characters, folds full-width forms, recomposes
// (NFC) and finally collapses whitespace runs to single spaces
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// controls matches C0/C1 controls and DEL; tab, CR and LF survive until whitespace collapsing
var controls = runes.Predicate(func(r rune) bool {
	return unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r'
})

// chains are stateful so every call borrows its own
var chains = sync.Pool{New: func() any { return newChain() }}

func newChain() transform.Transformer {
	return transform.Chain(
		runes.Remove(controls),
		norm.NFKD,
		cases.Fold(),
		runes.Remove(runes.In(unicode.Mn)), // accents, once decomposed
		runes.Remove(runes.In(unicode.Cf)), // ZWJ, ZWNJ, BOM
		width.Fold,
		norm.NFC,
	)
}

// Key returns the lookup key for s. Key is idempotent: Key(Key(s)) == Key(s)
func Key(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	t := chains.Get().(transform.Transformer)
	out, _, err := transform.String(t, s)
	t.Reset()
	chains.Put(t)
	if err != nil {
		// the chain has no failure mode on valid UTF-8; fall back to the repaired input
		out = s
	}
	return strings.Join(strings.Fields(out), " ")
}
