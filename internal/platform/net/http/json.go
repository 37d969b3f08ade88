package http

import (
	"net/http"

	"humanize/internal/platform/net/http/bind"
)

// JSONHandler decodes and validates a T from the body, then hands it to fn.
// A bind failure never reaches fn
func JSONHandler[T any](fn func(*http.Request, T) (any, error), opts ...bind.JSONOptions) Handler {
	return JSONHandlerNoBody(func(r *http.Request) (any, error) {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return nil, err
		}
		return fn(r, in)
	})
}

// JSONHandlerNoBody wraps fn's result in the envelope. fn may return a Response to pick
// its own status and headers
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return OK(out)
	})
}
