package english

import (
	"strings"

	"humanize/internal/core/lexicon"
	"humanize/internal/core/normalize"
	"humanize/internal/core/value"
)

// token classes for the cardinal grammar
type tok uint8

const (
	tokNone tok = iota
	tokUnit
	tokTeen
	tokTens
	tokHundred
	tokScale
	tokConj
)

// words parses spelled out numbers against one lexicon table
type words struct {
	t *lexicon.Table

	// cardinal word for a value, used to turn "twenty-first" into "twenty one"
	cardinalFor map[int64]string
}

func newWords(t *lexicon.Table) *words {
	w := &words{t: t, cardinalFor: make(map[int64]string, len(t.Cardinals)+len(t.Scales))}
	for k, n := range t.Cardinals {
		w.cardinalFor[n] = k
	}
	for k, n := range t.Scales {
		w.cardinalFor[n] = k
	}
	return w
}

func split(key string) []string {
	return strings.FieldsFunc(key, func(r rune) bool { return r == ' ' || r == '-' })
}

func (w *words) cardinalValue(text string) (value.Value, bool) {
	n, ok := w.cardinal(split(normalize.Key(text)))
	if !ok {
		return value.Value{}, false
	}
	return value.Int(n), true
}

func (w *words) ordinalValue(text string) (value.Value, bool) {
	n, ok := w.ordinal(split(normalize.Key(text)))
	if !ok {
		return value.Value{}, false
	}
	return value.Ord(n), true
}

// cardinal parses "forty two", "one hundred and five", "two thousand three hundred".
// Scales above a hundred must strictly decrease and "zero" must stand alone
func (w *words) cardinal(ws []string) (int64, bool) {
	if len(ws) == 0 {
		return 0, false
	}
	var total, group int64
	lastScale := int64(-1)
	prev := tokNone
	seen := false

	for i, word := range ws {
		if _, ok := w.t.Conjunctions[word]; ok {
			if i == 0 || i == len(ws)-1 || prev == tokConj {
				return 0, false
			}
			prev = tokConj
			continue
		}

		if n, ok := w.t.Cardinals[word]; ok {
			switch {
			case n == 0:
				if len(ws) != 1 {
					return 0, false
				}
				return 0, true
			case n < 10:
				if group%100 != 0 && prev != tokTens {
					return 0, false
				}
				prev = tokUnit
			case n < 20:
				if group%100 != 0 {
					return 0, false
				}
				prev = tokTeen
			default:
				if group%100 != 0 {
					return 0, false
				}
				prev = tokTens
			}
			group += n
			seen = true
			continue
		}

		if s, ok := w.t.Scales[word]; ok {
			if s == 100 {
				if group == 0 || group >= 100 {
					return 0, false
				}
				group *= 100
				prev = tokHundred
				continue
			}
			if group == 0 || (lastScale > 0 && s >= lastScale) {
				return 0, false
			}
			total += group * s
			group = 0
			lastScale = s
			prev = tokScale
			continue
		}

		return 0, false
	}

	if !seen || prev == tokConj {
		return 0, false
	}
	return total + group, true
}

// ordinal parses "first", "twenty-first", "one hundred and first", "hundredth".
// The last word is an ordinal word, everything before it is read as a cardinal prefix
func (w *words) ordinal(ws []string) (int64, bool) {
	if len(ws) == 0 {
		return 0, false
	}
	last := ws[len(ws)-1]
	o, ok := w.t.Ordinals[last]
	if !ok {
		return 0, false
	}
	if len(ws) == 1 {
		return o, true
	}
	card, ok := w.cardinalFor[o]
	if !ok || o == 0 {
		return 0, false
	}
	rewritten := append(append([]string(nil), ws[:len(ws)-1]...), card)
	return w.cardinal(rewritten)
}
