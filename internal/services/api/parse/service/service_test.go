package service

import (
	"context"
	"strings"
	"testing"

	"humanize/internal/core/humanize"
	"humanize/internal/core/matcher"
	"humanize/internal/core/scope"
	"humanize/internal/core/value"
	perr "humanize/internal/platform/errors"
	pnet "humanize/internal/platform/net"
	kit "humanize/internal/platform/testkit"
	"humanize/internal/services/api/parse/domain"
)

func newSvc(t *testing.T) *Svc {
	t.Helper()
	return New(humanize.Default(), 4)
}

func TestParse_UsesExplicitLocale(t *testing.T) {
	s := newSvc(t)
	res, err := s.Parse(context.Background(), domain.ParseInput{Text: "ja", Kind: "boolean", Locale: "de"})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if !res.Matched || res.Locale != "de" || res.Kind != value.Boolean {
		t.Fatalf("unexpected result: %+v", res)
	}
	if b, _ := res.Value.Bool(); !b {
		t.Fatalf("ja should be true, got %v", res.Value)
	}
	if res.Candidates != nil {
		t.Fatalf("candidates only with all=true")
	}
}

func TestParse_FallsBackToRequestScope(t *testing.T) {
	s := newSvc(t)
	ctx := pnet.WithScope(context.Background(), scope.MustParse("no"))

	res, err := s.Parse(ctx, domain.ParseInput{Text: "yes", Kind: "boolean"})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if res.Matched || res.Locale != "no" || res.Value != nil {
		t.Fatalf("english word under norwegian scope should not match: %+v", res)
	}

	// digits resolve under every scope
	res, _ = s.Parse(ctx, domain.ParseInput{Text: "1", Kind: "boolean"})
	if !res.Matched {
		t.Fatalf("digit boolean should match under norwegian scope")
	}

	// the wildcard when the request carries no scope
	res, _ = s.Parse(context.Background(), domain.ParseInput{Text: "yes", Kind: "boolean"})
	if !res.Matched || res.Locale != "*" {
		t.Fatalf("unexpected wildcard result: %+v", res)
	}
}

func TestParse_AllReturnsRankedCandidates(t *testing.T) {
	s := newSvc(t)
	res, err := s.Parse(context.Background(), domain.ParseInput{Text: "1", Kind: "integer", Locale: "en", All: true})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if len(res.Candidates) == 0 || !res.Candidates[0].Value.Equal(*res.Value) {
		t.Fatalf("best value must lead the candidates: %+v", res)
	}
	for i := 1; i < len(res.Candidates); i++ {
		if res.Candidates[i-1].Weight < res.Candidates[i].Weight {
			t.Fatalf("candidates not ranked by weight: %+v", res.Candidates)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	s := newSvc(t)
	cases := []struct {
		in    domain.ParseInput
		code  perr.ErrorCode
		field string
	}{
		{domain.ParseInput{Text: "yes", Kind: "colour"}, perr.ErrorCodeInvalidArgument, "kind"},
		{domain.ParseInput{Text: "yes", Kind: "boolean", Locale: "toolonglanguage"}, perr.ErrorCodeInvalidArgument, "locale"},
		{domain.ParseInput{Text: "maybe", Kind: "boolean", Strict: true}, perr.ErrorCodeNoMatch, "text"},
	}
	for _, c := range cases {
		_, err := s.Parse(context.Background(), c.in)
		e, ok := perr.As(err)
		if !ok || e.Code() != c.code || e.Field() != c.field {
			t.Fatalf("%+v: got %v (code %v)", c.in, err, perr.CodeOf(err))
		}
	}

	// not strict: no match is not an error
	res, err := s.Parse(context.Background(), domain.ParseInput{Text: "maybe", Kind: "boolean"})
	if err != nil || res.Matched {
		t.Fatalf("unexpected: %+v %v", res, err)
	}
}

func TestParseBatch_KeepsOrderAndInheritsLocale(t *testing.T) {
	s := newSvc(t)
	kit.Swap(t, &s.newID, func() string { return "batch-1" })

	in := domain.BatchInput{
		Locale: "de",
		Items: []domain.BatchItem{
			{Text: "ja", Kind: "boolean"},
			{Text: "yes", Kind: "boolean"},
			{Text: "yes", Kind: "boolean", Locale: "en-GB"},
			{Text: "90s", Kind: "duration"},
			{Text: "3rd", Kind: "ordinal", Locale: "en"},
		},
	}
	out, err := s.ParseBatch(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if out.BatchID != "batch-1" || len(out.Results) != len(in.Items) {
		t.Fatalf("unexpected batch: %+v", out)
	}
	want := []bool{true, false, true, true, true}
	for i, r := range out.Results {
		if r.Text != in.Items[i].Text {
			t.Fatalf("result %d out of order: %+v", i, r)
		}
		if r.Matched != want[i] {
			t.Fatalf("result %d matched=%v, want %v (%+v)", i, r.Matched, want[i], r)
		}
	}
	if out.Results[2].Locale != "en-GB" || out.Results[0].Locale != "de" {
		t.Fatalf("locale inheritance wrong: %+v", out.Results)
	}
}

func TestParseBatch_RealIDIsUUID(t *testing.T) {
	out, err := newSvc(t).ParseBatch(context.Background(), domain.BatchInput{
		Items: []domain.BatchItem{{Text: "on", Kind: "boolean"}},
	})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if len(out.BatchID) != 36 || strings.Count(out.BatchID, "-") != 4 {
		t.Fatalf("batch id %q is not a uuid", out.BatchID)
	}
}

func TestParseBatch_Errors(t *testing.T) {
	s := newSvc(t)
	if _, err := s.ParseBatch(context.Background(), domain.BatchInput{}); perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("empty batch: %v", err)
	}

	tooMany := make([]domain.BatchItem, domain.MaxBatchItems+1)
	for i := range tooMany {
		tooMany[i] = domain.BatchItem{Text: "1", Kind: "integer"}
	}
	if _, err := s.ParseBatch(context.Background(), domain.BatchInput{Items: tooMany}); perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("oversized batch: %v", err)
	}

	bad := domain.BatchInput{Items: []domain.BatchItem{{Text: "1", Kind: "integer"}, {Text: "1", Kind: "colour"}}}
	_, err := s.ParseBatch(context.Background(), bad)
	if e, ok := perr.As(err); !ok || e.Code() != perr.ErrorCodeInvalidArgument || e.Field() != "kind" {
		t.Fatalf("bad item kind: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.ParseBatch(ctx, domain.BatchInput{Items: []domain.BatchItem{{Text: "1", Kind: "integer"}}})
	if perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("cancelled batch: %v", err)
	}
}

func TestMatchersSnapshot(t *testing.T) {
	p := humanize.NewWithRegistry(humanize.NewScopedRegistry(scope.MustParse("fr"),
		matcher.WithRanking(matcher.RankByRegistration)))
	s := New(p, 0)

	out, err := s.Matchers(context.Background())
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if out.Scope != "fr" || !out.Locked || out.Ranking != "registration" {
		t.Fatalf("unexpected snapshot header: %+v", out)
	}
	if out.Count != len(out.Matchers) || out.Count != s.MatcherCount() || out.Count == 0 {
		t.Fatalf("count mismatch: %d / %d / %d", out.Count, len(out.Matchers), s.MatcherCount())
	}
	for _, m := range out.Matchers {
		if !scope.Matches(scope.MustParse("fr"), m.Scope) {
			t.Fatalf("scoped registry holds %s (%s)", m.Name, m.Scope)
		}
	}
}

func TestNew_Guards(t *testing.T) {
	kit.MustPanic(t, func() { New(nil, 1) })
	if s := New(humanize.Default(), -3); s.workers != 1 {
		t.Fatalf("workers = %d, want 1", s.workers)
	}
}
