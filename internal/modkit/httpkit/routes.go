package httpkit

import (
	"net/http"
	"strings"
)

// Middlewares is an ordered middleware stack
type Middlewares = []func(http.Handler) http.Handler

// MountUnder runs mount on a child of r carrying mw. An empty prefix scopes the
// middleware without adding a path segment
func MountUnder(r Router, prefix string, mw Middlewares, mount func(Router)) {
	scoped := func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	}
	if prefix == "" {
		r.Group(scoped)
		return
	}
	r.Route(prefix, scoped)
}

// MountAPI mounts under /api/{version}
//
//	httpkit.MountAPI(r, "v1", httpkit.CommonStack(cfg), func(api httpkit.Router) {
//		mods.Mount(api)
//	})
func MountAPI(r Router, version string, mw Middlewares, mount func(Router)) {
	MountUnder(r, "/api/"+strings.TrimPrefix(version, "/"), mw, mount)
}

// MountAPIV1 is MountAPI for v1
func MountAPIV1(r Router, mw Middlewares, mount func(Router)) { MountAPI(r, "v1", mw, mount) }

// PostJSON registers a POST route whose body binds into T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// Get registers a GET route replying with the envelope
func Get(r Router, path string, h func(*http.Request) (any, error)) { r.Get(path, Call(h)) }

// Post registers a bodiless POST route replying with the envelope
func Post(r Router, path string, h func(*http.Request) (any, error)) { r.Post(path, Call(h)) }
