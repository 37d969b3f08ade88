package modkit

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"humanize/internal/modkit/httpkit"
	phttp "humanize/internal/platform/net/http"
	kit "humanize/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestBuild_Defaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" || len(b.Mw) != 0 || b.Ports != nil {
		t.Fatalf("unexpected defaults: %+v", b)
	}
	r := phttp.AdaptChi(chi.NewRouter())
	b.Register(r)
	if len(r.Routes()) != 0 {
		t.Fatalf("default register added routes: %v", r.Routes())
	}
}

func TestBuild_AppliesOptions(t *testing.T) {
	type ports struct{ N int }
	mw := func(next http.Handler) http.Handler { return next }

	b := Build(
		WithName("parse"),
		WithPrefix(" parse/ "),
		WithMiddlewares(mw),
		WithMiddlewares(mw),
		WithPorts(ports{N: 3}),
	)
	if b.Name != "parse" || b.Prefix != "/parse" || len(b.Mw) != 2 {
		t.Fatalf("unexpected build: %+v", b)
	}
	if p, ok := b.Ports.(ports); !ok || p.N != 3 {
		t.Fatalf("ports = %#v", b.Ports)
	}
}

func TestWithPrefix_BlankPanics(t *testing.T) {
	kit.MustPanicWith(t, "mount prefix is required", func() { WithPrefix(" / ") })
}

func TestBuilt_MountUnderPrefix(t *testing.T) {
	b := Build(
		WithPrefix("/meta"),
		WithMiddlewares(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Module", "meta")
				next.ServeHTTP(w, r)
			})
		}),
	)
	b.Register = func(r httpkit.Router) {
		httpkit.Get(r, "/version", func(*http.Request) (any, error) { return "v", nil })
	}

	r := phttp.AdaptChi(chi.NewRouter())
	b.Mount(r)

	if !slices.Contains(r.Routes(), "GET /meta/version") {
		t.Fatalf("routes = %v", r.Routes())
	}
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta/version", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("X-Module") != "meta" {
		t.Fatalf("status=%d header=%q", rec.Code, rec.Header().Get("X-Module"))
	}
}

func TestBuilt_MountWithoutPrefix(t *testing.T) {
	b := Build()
	b.Register = func(r httpkit.Router) {
		httpkit.Get(r, "/matchers", func(*http.Request) (any, error) { return nil, nil })
	}
	r := phttp.AdaptChi(chi.NewRouter())
	b.Mount(r)
	if !slices.Contains(r.Routes(), "GET /matchers") {
		t.Fatalf("routes = %v", r.Routes())
	}
}
