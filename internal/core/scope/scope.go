// Package scope implements the locale scope that recognizers declare and queries request.
// A Scope is either a concrete BCP 47 tag or the wildcard Any
package scope

import (
	"slices"
	"strings"

	perr "humanize/internal/platform/errors"

	"golang.org/x/text/language"
)

// Scope is a locale specifier. The zero value is the wildcard
type Scope struct {
	tag language.Tag
}

// Any is the wildcard scope; it matches every other scope
var Any = Scope{}

// English is the scope of the built-in English recognizers
var English = Of(language.English)

// Of wraps a language tag. language.Und yields Any
func Of(t language.Tag) Scope {
	if t.IsRoot() {
		return Any
	}
	return Scope{tag: t}
}

// Parse reads a scope from text. "", "*" and "und" are the wildcard
func Parse(s string) (Scope, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return Any, nil
	}
	t, err := language.Parse(s)
	if err != nil {
		return Any, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "invalid locale %q", s)
	}
	return Of(t), nil
}

// MustParse is Parse for static tags, it panics on error
func MustParse(s string) Scope {
	sc, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sc
}

// FromAcceptLanguage picks the highest weighted tag of an Accept-Language header.
// Empty or unparsable headers yield Any
func FromAcceptLanguage(header string) Scope {
	if strings.TrimSpace(header) == "" {
		return Any
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Any
	}
	return Of(tags[0])
}

// IsAny reports whether s is the wildcard
func (s Scope) IsAny() bool { return s.tag.IsRoot() }

// Tag returns the underlying tag (language.Und for Any)
func (s Scope) Tag() language.Tag { return s.tag }

// String returns "*" for Any, otherwise the canonical tag
func (s Scope) String() string {
	if s.IsAny() {
		return "*"
	}
	return s.tag.String()
}

// Equal reports whether both scopes hold the same tag
func (s Scope) Equal(o Scope) bool { return s.String() == o.String() }

// MarshalText implements encoding.TextMarshaler
func (s Scope) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Scope) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Matches decides whether a recognizer declared for declared applies to a query for requested.
//
// A wildcard on either side always matches. Otherwise the base languages must be equal and the
// declared tag subsumes the requested one: a declared script or region that is set must equal
// the requested one, an unset declared script or region accepts anything, and every declared
// variant must be requested. So "en" matches "en-US" and "de" matches "de-1901", but "en-US"
// does not match "en" or "en-GB" and "de-1901" does not match "de-1996". Extensions are ignored
func Matches(requested, declared Scope) bool {
	if requested.IsAny() || declared.IsAny() {
		return true
	}
	rb, rs, rr := requested.tag.Raw()
	db, ds, dr := declared.tag.Raw()
	if rb != db {
		return false
	}
	if ds != (language.Script{}) && ds != rs {
		return false
	}
	if dr != (language.Region{}) && dr != rr {
		return false
	}
	rv := requested.tag.Variants()
	for _, v := range declared.tag.Variants() {
		if !slices.Contains(rv, v) {
			return false
		}
	}
	return true
}
