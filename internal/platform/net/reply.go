package net

import (
	"net/http"

	perr "humanize/internal/platform/errors"
)

// Wire is the envelope middlewares write when they answer before a handler runs
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func wire(status int, reqID string) Wire {
	return Wire{StatusCode: status, Status: http.StatusText(status), RequestID: reqID}
}

// OK builds a 200 envelope around data
func OK(data any, reqID string) (int, Wire) {
	w := wire(http.StatusOK, reqID)
	w.Data = data
	return w.StatusCode, w
}

// Error builds the envelope for err. A nil err is a 200 with no data. Wrapped causes stay
// off the wire; only the outer message is sent
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	pub := perr.WireFrom(err)
	w := wire(perr.HTTPStatus(err), reqID)
	w.Code, w.Error = pub.Code, pub.Message
	return w.StatusCode, w
}
