package matcher

import (
	"strings"
	"sync"
	"testing"

	"humanize/internal/core/scope"
	"humanize/internal/core/value"
	perr "humanize/internal/platform/errors"
	kit "humanize/internal/platform/testkit"
)

// always returns v with weight w for any non-empty input
func constant(name string, sc scope.Scope, v value.Value, w int) Matcher {
	return New(name, sc, v.Kind(), func(text string) (value.Candidate, bool) {
		if text == "" {
			return value.Candidate{}, false
		}
		return value.Weighted(v, w), true
	})
}

func word(name string, sc scope.Scope, w string, b bool) Matcher {
	return Fixed(name, sc, value.Boolean, 100, func(text string) (value.Value, bool) {
		if strings.EqualFold(text, w) {
			return value.Bool(b), true
		}
		return value.Value{}, false
	})
}

func TestResolve_FiltersByKindAndScope(t *testing.T) {
	en := scope.English
	no := scope.MustParse("no")

	r := NewRegistry()
	r.Register(word("en-yes", en, "yes", true))
	r.Register(word("any-1", scope.Any, "1", true))
	r.Register(constant("int", scope.Any, value.Int(5), 10))

	if got := r.Resolve("yes", value.Boolean, scope.Any); len(got) != 1 || got[0].Matcher != "en-yes" {
		t.Fatalf("wildcard query: %+v", got)
	}
	if got := r.Resolve("yes", value.Boolean, no); len(got) != 0 {
		t.Fatalf("norwegian query should not see english words: %+v", got)
	}
	if got := r.Resolve("1", value.Boolean, no); len(got) != 1 {
		t.Fatalf("wildcard matcher must apply under every scope: %+v", got)
	}
	if got := r.Resolve("yes", value.Boolean, scope.MustParse("en-GB")); len(got) != 1 {
		t.Fatalf("en should subsume en-GB: %+v", got)
	}
	if got := r.Resolve("yes", value.Integer, scope.Any); len(got) != 1 || got[0].Matcher != "int" {
		t.Fatalf("kind filter failed: %+v", got)
	}
}

func TestResolve_NoMatchIsEmptyNotNil(t *testing.T) {
	r := NewRegistry()
	got := r.Resolve("maybe", value.Boolean, scope.Any)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	if _, ok := r.ResolveBest("maybe", value.Boolean, scope.Any); ok {
		t.Fatalf("expected no best value")
	}
}

func TestResolve_FalsyValueIsStillAMatch(t *testing.T) {
	r := NewRegistry()
	r.Register(word("no", scope.Any, "no", false))
	v, ok := r.ResolveBest("no", value.Boolean, scope.Any)
	if !ok {
		t.Fatalf("expected a match")
	}
	if b, _ := v.Bool(); b {
		t.Fatalf("expected false")
	}
}

func TestRanking_WeightDescendingWithStableTies(t *testing.T) {
	r := NewRegistry()
	r.Register(constant("low", scope.Any, value.Int(1), 10))
	r.Register(constant("high-a", scope.Any, value.Int(2), 90))
	r.Register(constant("high-b", scope.Any, value.Int(3), 90))
	r.Register(constant("negative", scope.Any, value.Int(4), -5))

	got := r.Resolve("x", value.Integer, scope.Any)
	want := []string{"high-a", "high-b", "low", "negative"}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Matcher != name {
			t.Fatalf("position %d: got %s want %s (%+v)", i, got[i].Matcher, name, got)
		}
	}
	best, _ := r.ResolveBest("x", value.Integer, scope.Any)
	if n, _ := best.Integer(); n != 2 {
		t.Fatalf("best should be the first of the heaviest, got %d", n)
	}
}

func TestRanking_RegistrationOrderFirstMatchWins(t *testing.T) {
	r := NewRegistry(WithRanking(RankByRegistration))
	r.Register(constant("first", scope.Any, value.Int(1), 10))
	r.Register(constant("second", scope.Any, value.Int(2), 90))

	got := r.Resolve("x", value.Integer, scope.Any)
	if len(got) != 2 || got[0].Matcher != "first" || got[1].Matcher != "second" {
		t.Fatalf("registration order not preserved: %+v", got)
	}
	best, _ := r.ResolveBest("x", value.Integer, scope.Any)
	if n, _ := best.Integer(); n != 1 {
		t.Fatalf("first registered should win, got %d", n)
	}
}

func TestParseRanking(t *testing.T) {
	cases := map[string]Ranking{"": RankByWeight, "Weight": RankByWeight, "registration": RankByRegistration, "first": RankByRegistration}
	for in, want := range cases {
		got, err := ParseRanking(in)
		if err != nil || got != want {
			t.Fatalf("ParseRanking(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseRanking("random"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if RankByRegistration.String() != "registration" || RankByWeight.String() != "weight" {
		t.Fatalf("unexpected ranking names")
	}
}

func TestScopedRegistry_RejectsMismatchedScope(t *testing.T) {
	r := NewScoped(scope.MustParse("no"))
	if r.Register(word("en-yes", scope.English, "yes", true)) {
		t.Fatalf("english matcher must be rejected by a norwegian registry")
	}
	if r.Len() != 0 {
		t.Fatalf("rejected matcher must not be stored")
	}
	if got := r.Resolve("yes", value.Boolean, scope.Any); len(got) != 0 {
		t.Fatalf("resolution must behave as if registration never happened: %+v", got)
	}
	if !r.Register(word("any-1", scope.Any, "1", true)) {
		t.Fatalf("wildcard matcher must be accepted")
	}
	if !r.Locked() || r.Scope().String() != "no" {
		t.Fatalf("unexpected registry scope %s", r.Scope())
	}
}

func TestScopedRegistry_SubsumesRegionalLock(t *testing.T) {
	r := NewScoped(scope.MustParse("en-US"))
	if !r.Register(word("en-yes", scope.English, "yes", true)) {
		t.Fatalf("en matcher should be accepted by an en-US registry")
	}
	if r.Register(word("gb-yes", scope.MustParse("en-GB"), "yes", true)) {
		t.Fatalf("en-GB matcher should be rejected by an en-US registry")
	}
}

func TestRegister_Nil(t *testing.T) {
	if NewRegistry().Register(nil) {
		t.Fatalf("nil matcher must be rejected")
	}
}

func TestResolve_KindMismatchPanics(t *testing.T) {
	r := NewRegistry()
	r.Register(New("liar", scope.Any, value.Boolean, func(string) (value.Candidate, bool) {
		return value.Weighted(value.Int(1), 1), true
	}))
	kit.MustPanicWith(t, `"liar" declared boolean`, func() { r.Resolve("x", value.Boolean, scope.Any) })
}

func TestMatchers_SnapshotInOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(word("a", scope.English, "yes", true))
	r.Register(constant("b", scope.Any, value.Ord(1), 1))
	infos := r.Matchers()
	if len(infos) != 2 || infos[0].Name != "a" || infos[1].Name != "b" {
		t.Fatalf("unexpected snapshot: %+v", infos)
	}
	if infos[0].Kind != value.Boolean || infos[1].Scope.String() != "*" {
		t.Fatalf("unexpected snapshot fields: %+v", infos)
	}
	if New("nil", scope.Any, value.Boolean, nil).Kind() != value.Boolean {
		t.Fatalf("kind accessor")
	}
	if _, ok := New("nil", scope.Any, value.Boolean, nil).Match("x"); ok {
		t.Fatalf("nil func must never match")
	}
}

func TestResolve_ConcurrentReaders(t *testing.T) {
	r := NewRegistry()
	r.Register(word("en-yes", scope.English, "yes", true))
	r.Register(word("en-no", scope.English, "no", false))
	r.Register(constant("int", scope.Any, value.Int(7), 1))

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := "yes"
			want := true
			if i%2 == 1 {
				text, want = "no", false
			}
			v, ok := r.ResolveBest(text, value.Boolean, scope.Any)
			b, _ := v.Bool()
			if !ok || b != want {
				errs <- text
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Fatalf("concurrent resolve failed for %q", e)
	}
}
