package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"humanize/internal/core/humanize"
	"humanize/internal/modkit"
	"humanize/internal/modkit/module"
	"humanize/internal/platform/config"
	phttp "humanize/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestNew_MountsAtRootAndExposesPorts(t *testing.T) {
	m := New(modkit.Deps{Cfg: config.New(), Parser: humanize.Default()})
	if m.Name() != "parse" {
		t.Fatalf("name = %q", m.Name())
	}

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	for _, want := range []string{"POST /parse", "GET /parse", "POST /parse/batch", "GET /matchers"} {
		if !slices.Contains(r.Routes(), want) {
			t.Fatalf("%s missing from %v", want, r.Routes())
		}
	}

	p := module.MustPortsOf[Ports](m)
	if p.Counter.MatcherCount() != humanize.Default().Registry().Len() {
		t.Fatalf("counter = %d, registry = %d", p.Counter.MatcherCount(), humanize.Default().Registry().Len())
	}
	got, err := p.Service.Matchers(context.Background())
	if err != nil || got.Count != p.Counter.MatcherCount() {
		t.Fatalf("Matchers() = %+v, %v", got, err)
	}
}

func TestNew_PrefixOption(t *testing.T) {
	m := New(modkit.Deps{}, modkit.WithPrefix("/v2"))
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	if !slices.Contains(r.Routes(), "POST /v2/parse") {
		t.Fatalf("routes = %v", r.Routes())
	}
}

func TestNew_MiddlewaresScopeToParseRoutes(t *testing.T) {
	tag := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Module", "parse")
			next.ServeHTTP(w, r)
		})
	}
	r := phttp.AdaptChi(chi.NewRouter())
	New(modkit.Deps{}, modkit.WithMiddlewares(tag)).MountRoutes(r)
	r.Get("/other", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/matchers", nil))
	if rec.Header().Get("X-Module") != "parse" {
		t.Fatalf("module middleware skipped on /matchers")
	}
	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/other", nil))
	if rec.Header().Get("X-Module") != "" {
		t.Fatalf("module middleware leaked onto a sibling route")
	}
}
