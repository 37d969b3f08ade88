package scope

import (
	"testing"

	perr "humanize/internal/platform/errors"
)

func TestParse_WildcardForms(t *testing.T) {
	for _, in := range []string{"", "  ", "*", "und"} {
		sc, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) err: %v", in, err)
		}
		if !sc.IsAny() {
			t.Fatalf("Parse(%q) = %s, want wildcard", in, sc)
		}
		if sc.String() != "*" {
			t.Fatalf("wildcard String() = %q", sc.String())
		}
	}
}

func TestParse_CanonicalizesTag(t *testing.T) {
	sc, err := Parse("EN-us")
	if err != nil {
		t.Fatalf("Parse err: %v", err)
	}
	if sc.String() != "en-US" {
		t.Fatalf("String() = %q, want en-US", sc.String())
	}
	if !sc.Equal(MustParse("en-US")) {
		t.Fatalf("expected Equal to hold")
	}
}

func TestParse_InvalidIsInvalidArgument(t *testing.T) {
	_, err := Parse("not a tag!!")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument code, got %v", perr.CodeOf(err))
	}
}

func TestMatches_Table(t *testing.T) {
	cases := []struct {
		requested string
		declared  string
		want      bool
	}{
		{"*", "en", true},
		{"en", "*", true},
		{"*", "*", true},
		{"en", "en", true},
		{"en", "no", false},
		{"no", "en", false},
		{"en-US", "en", true},
		{"en-Latn-GB", "en", true},
		{"en", "en-US", false},
		{"en-GB", "en-US", false},
		{"en-US", "en-US", true},
		{"sr-Cyrl", "sr-Latn", false},
		{"sr-Latn-RS", "sr-Latn", true},
		{"de-CH", "fr-CH", false},
		{"de-1901", "de", true},
		{"de-CH-1901", "de-1901", true},
		{"de-1996", "de-1901", false},
		{"de", "de-1901", false},
		{"sl-rozaj-biske", "sl-rozaj", true},
		{"en-US-u-ca-buddhist", "en-US", true},
	}
	for _, c := range cases {
		got := Matches(MustParse(c.requested), MustParse(c.declared))
		if got != c.want {
			t.Fatalf("Matches(%s, %s) = %v, want %v", c.requested, c.declared, got, c.want)
		}
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	if sc := FromAcceptLanguage(""); !sc.IsAny() {
		t.Fatalf("empty header should be wildcard, got %s", sc)
	}
	if sc := FromAcceptLanguage("fr-CH, fr;q=0.9, en;q=0.8"); sc.String() != "fr-CH" {
		t.Fatalf("expected fr-CH, got %s", sc)
	}
	if sc := FromAcceptLanguage("en;q=0.2, de;q=0.9"); sc.String() != "de" {
		t.Fatalf("expected highest weight de, got %s", sc)
	}
}

func TestTextRoundTrip(t *testing.T) {
	var sc Scope
	if err := sc.UnmarshalText([]byte("nb-NO")); err != nil {
		t.Fatalf("UnmarshalText err: %v", err)
	}
	b, _ := sc.MarshalText()
	if string(b) != "nb-NO" {
		t.Fatalf("MarshalText = %q", b)
	}
	if err := sc.UnmarshalText([]byte("%%")); err == nil {
		t.Fatalf("expected error for bad tag")
	}
}
