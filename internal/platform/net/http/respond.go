// Package http is the transport layer modules build on: the chi backed Router, the server,
// JSON binding and the response envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "humanize/internal/platform/errors"
	pnet "humanize/internal/platform/net"
)

// Envelope is the body every endpoint replies with
type Envelope = pnet.Wire

// JSON encodes v with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondOK replies 200 with data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	status, env := pnet.OK(data, pnet.RequestID(r.Context()))
	JSON(w, status, env)
}

// RespondError replies with the status and envelope err maps to
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := pnet.Error(err, pnet.RequestID(r.Context()))
	JSON(w, status, env)
}

// NotFound replies with the not_found envelope for a path no route serves
func NotFound(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	RespondError(w, r, perr.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
}

// Response is what return-style handlers produce. A Body holding an error replies with
// that error and ignores Status
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK is a 200 Response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error is a Response whose status comes from err's code
func Error(err error) Response { return Response{Body: err} }

// Handle adapts h to net/http
func Handle(h func(*stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { h(r).write(w, r) }
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vs := range resp.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	_, env := pnet.OK(resp.Body, pnet.RequestID(r.Context()))
	env.StatusCode, env.Status = status, stdhttp.StatusText(status)
	JSON(w, status, env)
}
