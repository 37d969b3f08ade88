// Package lexicon loads the per-locale word tables from the embedded lexicon.json.
// It folds every key with the input normalizer so recognizers can look words up directly
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"humanize/internal/core/normalize"
	"humanize/internal/core/scope"
)

//go:embed lexicon.json
var embedded []byte

type rawBoolean struct {
	True  []string `json:"true"`
	False []string `json:"false"`
}

type rawLocale struct {
	Boolean        rawBoolean       `json:"boolean"`
	Cardinals      map[string]int64 `json:"cardinals,omitempty"`
	Scales         map[string]int64 `json:"scales,omitempty"`
	Ordinals       map[string]int64 `json:"ordinals,omitempty"`
	Conjunctions   []string         `json:"conjunctions,omitempty"`
	GroupSeparator string           `json:"group_separator,omitempty"`
}

type rawPack struct {
	Version int                  `json:"version"`
	Meta    map[string]any       `json:"meta"`
	Locales map[string]rawLocale `json:"locales"`
}

// Pack is the compiled lexicon
type Pack struct {
	Version int
	Meta    map[string]any

	// Tables sorted by locale key, the wildcard "*" first
	Tables []*Table

	byKey map[string]*Table
}

// Table holds the words of one locale. All keys are normalized
type Table struct {
	Locale string
	Scope  scope.Scope

	True  map[string]struct{}
	False map[string]struct{}

	Cardinals    map[string]int64
	Scales       map[string]int64
	Ordinals     map[string]int64
	Conjunctions map[string]struct{}

	// GroupSeparator is the digit grouping mark, "" when the locale has none
	GroupSeparator string
}

// Boolean looks up an already normalized word
func (t *Table) Boolean(key string) (val bool, ok bool) {
	if _, hit := t.True[key]; hit {
		return true, true
	}
	if _, hit := t.False[key]; hit {
		return false, true
	}
	return false, false
}

// HasBooleans reports whether the locale defines any boolean words
func (t *Table) HasBooleans() bool { return len(t.True)+len(t.False) > 0 }

// Table returns the table for a locale key as written in lexicon.json ("*", "en", ...)
func (p *Pack) Table(key string) (*Table, bool) {
	t, ok := p.byKey[key]
	return t, ok
}

var (
	defaultOnce sync.Once
	defaultPack *Pack
	defaultErr  error
)

// Load returns the compiled embedded lexicon. It is parsed once per process
func Load() (*Pack, error) {
	defaultOnce.Do(func() {
		defaultPack, defaultErr = Parse(embedded)
	})
	return defaultPack, defaultErr
}

// MustLoad is Load for package init paths; the embedded file is covered by tests
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

// Parse compiles a lexicon document
func Parse(b []byte) (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(b, &rp); err != nil {
		return nil, fmt.Errorf("lexicon: parse lexicon.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("lexicon: unsupported lexicon.json version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version: rp.Version,
		Meta:    rp.Meta,
		byKey:   make(map[string]*Table, len(rp.Locales)),
	}

	for key, rl := range rp.Locales {
		sc, err := scope.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("lexicon: locale %q: %w", key, err)
		}
		t := &Table{
			Locale:         key,
			Scope:          sc,
			True:           foldSet(rl.Boolean.True),
			False:          foldSet(rl.Boolean.False),
			Cardinals:      foldMap(rl.Cardinals),
			Scales:         foldMap(rl.Scales),
			Ordinals:       foldMap(rl.Ordinals),
			Conjunctions:   foldSet(rl.Conjunctions),
			GroupSeparator: rl.GroupSeparator,
		}
		for w := range t.True {
			if _, dup := t.False[w]; dup {
				return nil, fmt.Errorf("lexicon: locale %q: %q is both true and false", key, w)
			}
		}
		p.byKey[key] = t
		p.Tables = append(p.Tables, t)
	}

	// Deterministic registration order; "*" sorts before letters
	sort.Slice(p.Tables, func(i, j int) bool {
		return p.Tables[i].Locale < p.Tables[j].Locale
	})

	// A boolean word belongs to one table, so a locale query never reads another
	// locale's word
	owner := make(map[string]string)
	for _, t := range p.Tables {
		for _, set := range []map[string]struct{}{t.True, t.False} {
			for w := range set {
				if prev, dup := owner[w]; dup {
					return nil, fmt.Errorf("lexicon: %q is a boolean word of both %q and %q", w, prev, t.Locale)
				}
				owner[w] = t.Locale
			}
		}
	}

	return p, nil
}

func foldSet(in []string) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for _, w := range in {
		if k := normalize.Key(w); k != "" {
			out[k] = struct{}{}
		}
	}
	return out
}

func foldMap(in map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(in))
	for w, n := range in {
		if k := normalize.Key(w); k != "" {
			out[k] = n
		}
	}
	return out
}
