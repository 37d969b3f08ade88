package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"humanize/internal/core/scope"
	perr "humanize/internal/platform/errors"
	pnet "humanize/internal/platform/net"
	"humanize/internal/platform/net/middleware"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func serveLocale(t *testing.T, target, acceptLanguage string) (*httptest.ResponseRecorder, scope.Scope, bool) {
	t.Helper()
	var seen scope.Scope
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seen = pnet.Scope(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	rr := httptest.NewRecorder()
	middleware.Locale(writeJSON)(next).ServeHTTP(rr, req)
	return rr, seen, called
}

func TestLocale_NoHintsIsWildcard(t *testing.T) {
	rr, sc, called := serveLocale(t, "/", "")
	if !called || !sc.IsAny() {
		t.Fatalf("expected wildcard scope, got %s (called=%v)", sc, called)
	}
	if rr.Header().Get("Content-Language") != "" {
		t.Fatalf("wildcard must not set Content-Language")
	}
}

func TestLocale_AcceptLanguageFirstTag(t *testing.T) {
	rr, sc, _ := serveLocale(t, "/", "fr-CH, fr;q=0.9, en;q=0.8")
	if !sc.Equal(scope.MustParse("fr-CH")) {
		t.Fatalf("expected fr-CH, got %s", sc)
	}
	if got := rr.Header().Get("Content-Language"); got != "fr-CH" {
		t.Fatalf("Content-Language = %q", got)
	}
}

func TestLocale_QueryWinsOverHeader(t *testing.T) {
	_, sc, _ := serveLocale(t, "/?locale=de", "en-US")
	if !sc.Equal(scope.MustParse("de")) {
		t.Fatalf("expected de, got %s", sc)
	}
}

func TestLocale_MalformedHeaderIgnored(t *testing.T) {
	_, sc, called := serveLocale(t, "/", ";;;q=abc")
	if !called || !sc.IsAny() {
		t.Fatalf("malformed header should fall back to wildcard, got %s", sc)
	}
}

func TestLocale_MalformedQueryRejected(t *testing.T) {
	rr, _, called := serveLocale(t, "/?locale=not_a_tag!", "")
	if called {
		t.Fatalf("next must not run for a malformed locale")
	}
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", rr.Code)
	}
	var w pnet.Wire
	if err := json.Unmarshal(rr.Body.Bytes(), &w); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.Code != perr.ErrorCodeInvalidArgument {
		t.Fatalf("expected invalid argument code, got %v", w.Code)
	}
}
