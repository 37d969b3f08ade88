package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// chiRouter is a Router over a chi router. root is the top mux, kept so Routes reports the
// whole tree from any subrouter
type chiRouter struct {
	root *chi.Mux
	r    chi.Router
}

// AdaptChi wraps m as a Router
func AdaptChi(m *chi.Mux) Router { return chiRouter{root: m, r: m} }

func (c chiRouter) sub(r chi.Router) Router { return chiRouter{root: c.root, r: r} }

func (c chiRouter) Get(p string, h Handler)  { c.r.Method(http.MethodGet, p, http.HandlerFunc(h)) }
func (c chiRouter) Post(p string, h Handler) { c.r.Method(http.MethodPost, p, http.HandlerFunc(h)) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) NotFound(h Handler)                        { c.r.NotFound(h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(r chi.Router) { fn(c.sub(r)) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(r chi.Router) { fn(c.sub(r)) })
}

func (c chiRouter) Mux() http.Handler { return c.r }

func (c chiRouter) Routes() []string {
	var out []string
	_ = chi.Walk(c.root, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		out = append(out, method+" "+route)
		return nil
	})
	slices.Sort(out)
	return out
}
