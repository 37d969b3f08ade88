// Package http provides http transport for parse
package http

import (
	stdhttp "net/http"

	"humanize/internal/modkit/httpkit"
	"humanize/internal/services/api/parse/domain"
)

// Register mounts parse endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// single text, body or query string
	httpkit.PostJSON(r, "/parse", h.parse)
	httpkit.Get(r, "/parse", h.parseQuery)

	// many texts in one request
	httpkit.PostJSON(r, "/parse/batch", h.parseBatch)

	// registry snapshot
	httpkit.Get(r, "/matchers", h.matchers)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Parse one humanized value
// @Tags Parse
// @Accept json
// @Produce json
// @Param payload body domain.ParseInput true "Text and kind"
// @Success 200 {object} domain.ParseResult "ok"
// @Router /parse [post]
func (h *handlers) parse(r *stdhttp.Request, in domain.ParseInput) (any, error) {
	return h.svc.Parse(r.Context(), in)
}

// @Summary Parse one humanized value from the query string
// @Tags Parse
// @Produce json
// @Param text query string true "Text"
// @Param kind query string true "Value kind"
// @Param locale query string false "BCP 47 locale"
// @Success 200 {object} domain.ParseResult "ok"
// @Router /parse [get]
func (h *handlers) parseQuery(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	// locale was negotiated into the request scope by the locale middleware
	in := domain.ParseInput{Text: q.Get("text"), Kind: q.Get("kind")}
	if err := httpkit.Validate(in); err != nil {
		return nil, err
	}
	return h.svc.Parse(r.Context(), in)
}

// @Summary Parse many humanized values
// @Tags Parse
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Items"
// @Success 200 {object} domain.BatchResult "ok"
// @Router /parse/batch [post]
func (h *handlers) parseBatch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.ParseBatch(r.Context(), in)
}

// @Summary Registered recognizers
// @Tags Parse
// @Produce json
// @Success 200 {object} domain.MatchersResult "ok"
// @Router /matchers [get]
func (h *handlers) matchers(r *stdhttp.Request) (any, error) {
	return h.svc.Matchers(r.Context())
}
