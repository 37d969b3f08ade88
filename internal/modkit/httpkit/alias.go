// Package httpkit is the HTTP surface service modules build on. It re-exports the platform
// router seam and envelope helpers so handler packages never import internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "humanize/internal/platform/net/http"
	"humanize/internal/platform/net/http/bind"
)

type (
	Envelope = phttp.Envelope
	Response = phttp.Response
	Handler  = phttp.Handler
	Router   = phttp.Router
)

// OK wraps data in a 200 envelope
func OK(data any) Response { return phttp.OK(data) }

// Error maps err to its status and error envelope
func Error(err error) Response { return phttp.Error(err) }

// JSON adapts fn so the request body is decoded and validated into T first
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler { return phttp.JSONHandler(fn) }

// Call adapts fn for routes without a body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.JSONHandlerNoBody(fn) }

// Handle adapts fn when the handler picks its own status
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// Validate applies the body validator to input gathered elsewhere, such as a query string
func Validate(v any) error { return bind.Validate(v) }
