package http

import "net/http"

// Handler is a plain handler func; modules never see chi types
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount on. AdaptChi provides the implementation
type Router interface {
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Get(path string, h Handler)
	Post(path string, h Handler)
	Handle(path string, h http.Handler)
	// NotFound answers unmatched paths; set it before Route so sub-routers inherit it
	NotFound(h Handler)

	// Routes lists mounted endpoints as sorted "METHOD pattern" strings
	Routes() []string
	Mux() http.Handler
}
