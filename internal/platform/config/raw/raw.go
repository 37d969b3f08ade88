// Package raw provides a minimal env reader used during bootstrap.
// It has NO dependency on the logger package; boolean words are read straight from the
// lexicon tables instead of the parser, which logs
package raw

import (
	"os"
	"strconv"
	"strings"

	"humanize/internal/core/lexicon"
	"humanize/internal/core/normalize"
)

// tables consulted for boolean words, in order
var boolLocales = []string{"*", "en"}

// Conf is a namespaced view over environment variables (e.g., "HUMANIZE_", "LOG_")
type Conf struct{ prefix string }

// New returns a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix returns a child Conf with an additional prefix (e.g. "LOG_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.prefix + k)) }

// Get returns the trimmed env var or the provided default if empty
func (c Conf) Get(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// GetBool reads a boolean word ("1", "yes", "off", ...) with default fallback.
// Unrecognized words yield def
func (c Conf) GetBool(key string, def bool) bool {
	v := c.lookup(key)
	if v == "" {
		return def
	}
	p, err := lexicon.Load()
	if err != nil {
		return def
	}
	k := normalize.Key(v)
	for _, loc := range boolLocales {
		if t, ok := p.Table(loc); ok {
			if b, hit := t.Boolean(k); hit {
				return b
			}
		}
	}
	return def
}

// GetInt parses a non-negative integer with default fallback; non-numeric -> def
func (c Conf) GetInt(key string, def int) int {
	s := c.lookup(key)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
