// Package value defines the semantic kinds a recognizer can produce and the tagged value
// that carries exactly one payload of that kind
package value

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	perr "humanize/internal/platform/errors"
)

// Kind is the closed set of semantic value types
type Kind uint8

const (
	// Boolean is a truth value
	Boolean Kind = iota + 1
	// Integer is a cardinal number
	Integer
	// Ordinal is a position such as "3rd"
	Ordinal
	// Duration is a span of time
	Duration
	// Instant is an absolute point in time
	Instant
)

// Kinds lists every kind in declaration order
var Kinds = []Kind{Boolean, Integer, Ordinal, Duration, Instant}

var kindNames = map[Kind]string{
	Boolean:  "boolean",
	Integer:  "integer",
	Ordinal:  "ordinal",
	Duration: "duration",
	Instant:  "instant",
}

// String returns the lower-case kind name
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is one of the declared kinds
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a kind name back to a Kind, case-insensitively
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, perr.InvalidArgf("unknown kind %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Value holds exactly one payload matching its kind. Build it with the constructors below
type Value struct {
	kind Kind
	b    bool
	i    int64
	d    time.Duration
	t    time.Time
}

// Bool builds a Boolean value
func Bool(b bool) Value { return Value{kind: Boolean, b: b} }

// Int builds an Integer value
func Int(i int64) Value { return Value{kind: Integer, i: i} }

// Ord builds an Ordinal value
func Ord(i int64) Value { return Value{kind: Ordinal, i: i} }

// Dur builds a Duration value
func Dur(d time.Duration) Value { return Value{kind: Duration, d: d} }

// At builds an Instant value
func At(t time.Time) Value { return Value{kind: Instant, t: t} }

// Kind returns the tag; zero for the zero Value
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v was never constructed
func (v Value) IsZero() bool { return v.kind == 0 }

// Bool returns the boolean payload
func (v Value) Bool() (bool, bool) { return v.b, v.kind == Boolean }

// Integer returns the integer payload
func (v Value) Integer() (int64, bool) { return v.i, v.kind == Integer }

// Ordinal returns the ordinal payload
func (v Value) Ordinal() (int64, bool) { return v.i, v.kind == Ordinal }

// Duration returns the duration payload
func (v Value) Duration() (time.Duration, bool) { return v.d, v.kind == Duration }

// Instant returns the instant payload
func (v Value) Instant() (time.Time, bool) { return v.t, v.kind == Instant }

// Any returns the payload as a plain Go value, nil for the zero Value
func (v Value) Any() any {
	switch v.kind {
	case Boolean:
		return v.b
	case Integer, Ordinal:
		return v.i
	case Duration:
		return v.d
	case Instant:
		return v.t
	default:
		return nil
	}
}

// String renders the payload for logs and the CLI
func (v Value) String() string {
	switch v.kind {
	case Boolean:
		return fmt.Sprint(v.b)
	case Integer, Ordinal:
		return fmt.Sprint(v.i)
	case Duration:
		return v.d.String()
	case Instant:
		return v.t.Format(time.RFC3339Nano)
	default:
		return "<none>"
	}
}

// Equal compares kind and payload; instants compare with time.Time.Equal
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == Instant {
		return v.t.Equal(o.t)
	}
	return v == o
}

type wireValue struct {
	Kind  Kind            `json:"kind"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON encodes {"kind": ..., "value": ...}. Durations use Go duration strings and
// instants RFC 3339
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsZero() {
		return []byte("null"), nil
	}
	var payload any
	switch v.kind {
	case Duration:
		payload = v.d.String()
	case Instant:
		payload = v.t.Format(time.RFC3339Nano)
	default:
		payload = v.Any()
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireValue{Kind: v.kind, Value: raw})
}

// UnmarshalJSON reverses MarshalJSON
func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Value{}
		return nil
	}
	var w wireValue
	if err := json.Unmarshal(b, &w); err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "invalid value")
	}
	switch w.Kind {
	case Boolean:
		var x bool
		if err := json.Unmarshal(w.Value, &x); err != nil {
			return perr.Wrap(err, perr.ErrorCodeJSON, "invalid boolean value")
		}
		*v = Bool(x)
	case Integer, Ordinal:
		var x int64
		if err := json.Unmarshal(w.Value, &x); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeJSON, "invalid %s value", w.Kind)
		}
		*v = Value{kind: w.Kind, i: x}
	case Duration:
		var s string
		if err := json.Unmarshal(w.Value, &s); err != nil {
			return perr.Wrap(err, perr.ErrorCodeJSON, "invalid duration value")
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeJSON, "invalid duration value")
		}
		*v = Dur(d)
	case Instant:
		var s string
		if err := json.Unmarshal(w.Value, &s); err != nil {
			return perr.Wrap(err, perr.ErrorCodeJSON, "invalid instant value")
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeJSON, "invalid instant value")
		}
		*v = At(t)
	default:
		return perr.JSONErrf("missing value kind")
	}
	return nil
}

// Candidate is one recognizer's proposal: a value and a signed ranking weight.
// Matcher names the recognizer that produced it and is filled in by the registry
type Candidate struct {
	Value   Value  `json:"value"`
	Weight  int    `json:"weight"`
	Matcher string `json:"matcher,omitempty"`
}

// Weighted builds a Candidate
func Weighted(v Value, weight int) Candidate { return Candidate{Value: v, Weight: weight} }
