// Package config reads settings from prefixed environment variables. Booleans and
// durations go through the default parser, so "yes", "off" and " 90S " all work
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"humanize/internal/core/humanize"
	"humanize/internal/core/scope"
	"humanize/internal/platform/logger"
)

// Conf is a view over the environment under a key prefix such as "CORE_API_"
type Conf struct{ prefix string }

// New is the unprefixed view
func New() Conf { return Conf{} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) name(key string) string { return c.prefix + key }

func (c Conf) get(key string) string { return strings.TrimSpace(os.Getenv(c.name(key))) }

// may returns def for an unset key and for a value parse rejects; rejections are logged
func may[T any](c Conf, key string, def T, parse func(string) (T, bool)) T {
	s := c.get(key)
	if s == "" {
		return def
	}
	if v, ok := parse(s); ok {
		return v
	}
	logger.Get().Warn().Str("key", c.name(key)).Str("value", s).Interface("default", def).Msg("unusable config value; using default")
	return def
}

// MayString is the value of key, or def when unset
func (c Conf) MayString(key, def string) string {
	return may(c, key, def, func(s string) (string, bool) { return s, true })
}

// MayInt reads a base 10 integer
func (c Conf) MayInt(key string, def int) int {
	return may(c, key, def, func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil
	})
}

// MayBool reads any boolean word the parser knows
func (c Conf) MayBool(key string, def bool) bool {
	return may(c, key, def, func(s string) (bool, bool) {
		return humanize.Default().ParseBoolean(s, scope.Any)
	})
}

// MayDuration reads a Go duration literal; spacing is forgiven, unit case is not
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, func(s string) (time.Duration, bool) {
		return humanize.Default().ParseDuration(s, scope.Any)
	})
}

// MayCSV splits a comma separated list, dropping blank items. A list of only blanks is def
func (c Conf) MayCSV(key string, def []string) []string {
	return may(c, key, def, func(s string) ([]string, bool) {
		var out []string
		for item := range strings.SplitSeq(s, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out, len(out) > 0
	})
}

// MayEnum returns the allowed entry matching the value case-insensitively, or def when
// unset. Any other value is a deployment error and panics
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	s := c.get(key)
	if s == "" {
		return def
	}
	for _, a := range allowed {
		if strings.EqualFold(s, a) {
			return a
		}
	}
	logger.Get().Panic().Str("key", c.name(key)).Str("value", s).Strs("allowed", allowed).Msg("config value not allowed")
	return ""
}

// MayScope parses a BCP 47 tag; unset means scope.Any. A malformed tag panics
func (c Conf) MayScope(key string) scope.Scope {
	s := c.get(key)
	sc, err := scope.Parse(s)
	if err != nil {
		logger.Get().Panic().Err(err).Str("key", c.name(key)).Str("value", s).Msg("config locale malformed")
	}
	return sc
}
