// Package errors is the project error type: a code for machines, a message for people,
// an optional offending field and operation, and the wrapped cause.
//
// Import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error. The numeric values go out on the wire, so append only
type ErrorCode uint16

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodePanic
	ErrorCodeUnavailable // transient, retry may succeed
	ErrorCodeTooManyRequests
	ErrorCodeInvalidArgument // unknown kind, malformed locale
	ErrorCodeValidation
	ErrorCodeJSON
	ErrorCodeNotFound
	ErrorCodeTooLarge // body or batch over its limit
	ErrorCodeNoMatch  // strict parse where no matcher accepted the text
)

var codeInfo = [...]struct {
	name   string
	status int
}{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeTooManyRequests: {"too_many_requests", http.StatusTooManyRequests},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest},
	ErrorCodeJSON:            {"json", http.StatusBadRequest},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound},
	ErrorCodeTooLarge:        {"too_large", http.StatusRequestEntityTooLarge},
	ErrorCodeNoMatch:         {"no_match", http.StatusUnprocessableEntity},
}

func (c ErrorCode) info() (string, int) {
	if int(c) < len(codeInfo) {
		i := codeInfo[c]
		return i.name, i.status
	}
	return codeInfo[ErrorCodeUnknown].name, codeInfo[ErrorCodeUnknown].status
}

// String is the snake_case name used in logs and CLI output
func (c ErrorCode) String() string {
	name, _ := c.info()
	return name
}

// HTTPStatus is the status a reply carrying c uses. Unknown codes are 500
func (c ErrorCode) HTTPStatus() int {
	_, status := c.info()
	return status
}

// Error carries a code, a message, an optional field and op, and an optional cause
type Error struct {
	code  ErrorCode
	msg   string
	field string
	op    string
	cause error
}

// Error renders "msg" or "msg: cause"
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.cause == nil:
		return e.msg
	default:
		return e.msg + ": " + e.cause.Error()
	}
}

func (e *Error) Unwrap() error { return e.cause }
func (e *Error) Code() ErrorCode { return e.code }
func (e *Error) Message() string { return e.msg }
func (e *Error) Field() string { return e.field }
func (e *Error) Op() string { return e.op }
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }
func (e *Error) HTTPStatus() int { return e.code.HTTPStatus() }

// Wire is the public projection of an error. Causes never reach it
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// WireFrom projects err. Foreign errors become Unknown with their full text; nil is the zero Wire
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// As finds the outermost *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf is err's code, Unknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus maps any error to a status via its code
func HTTPStatus(err error) int { return CodeOf(err).HTTPStatus() }

// WithField returns a copy of err naming the offending input field. Foreign errors pass through
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// WithOp returns a copy of err tagged with the operation that failed. Foreign errors pass through
func WithOp(err error, op string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.op = op
	return &c
}

// New builds an *Error
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf builds an *Error with a formatted message
func Newf(code ErrorCode, format string, a ...any) error { return New(code, fmt.Sprintf(format, a...)) }

// Wrap attaches code and msg to cause
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

// Wrapf is Wrap with a formatted message
func Wrapf(cause error, code ErrorCode, format string, a ...any) error {
	return Wrap(cause, code, fmt.Sprintf(format, a...))
}

func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }
func TooLargef(format string, a ...any) error { return Newf(ErrorCodeTooLarge, format, a...) }
func NoMatchf(format string, a ...any) error { return Newf(ErrorCodeNoMatch, format, a...) }
