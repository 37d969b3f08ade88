// Package bind decodes request bodies and validates them with go-playground/validator.
// Validation messages are English, name fields by their json tag and map to perr codes
package bind

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"humanize/internal/core/scope"
	"humanize/internal/core/value"
	perr "humanize/internal/platform/errors"
	"humanize/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// Validator is a validator.Validate with its English translator
type Validator struct {
	v     *validator.Validate
	trans ut.Translator
}

var shared = sync.OnceValue(newValidator)

// trailing reports input after the first JSON value other than whitespace. A stray closing
// delimiter counts, which dec.More would miss
var trailing = func(dec *json.Decoder) bool {
	_, err := dec.Token()
	return !errors.Is(err, io.EOF)
}

// Shared is the process validator every handler uses
func Shared() *Validator { return shared() }

// rule is a custom tag plus the message it fails with; {0} is the field name
type rule struct {
	tag string
	msg string
	fn  validator.Func
}

func rules() []rule {
	kinds := make([]string, len(value.Kinds))
	for i, k := range value.Kinds {
		kinds[i] = k.String()
	}
	return []rule{
		{
			tag: "kind",
			msg: "{0} must be one of " + strings.Join(kinds, ", "),
			fn: func(fl validator.FieldLevel) bool {
				_, err := value.ParseKind(fl.Field().String())
				return err == nil
			},
		},
		{
			// blank passes; presence is for required/omitempty
			tag: "locale",
			msg: "{0} must be a BCP 47 language tag",
			fn: func(fl validator.FieldLevel) bool {
				s := fl.Field().String()
				if s == "" {
					return true
				}
				_, err := scope.Parse(s)
				return err == nil
			},
		},
	}
}

func newValidator() *Validator {
	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = entrans.RegisterDefaultTranslations(v, trans)

	x := &Validator{v: v, trans: trans}
	x.message("min", "{0} must be at least {1}")
	x.message("max", "{0} must be at most {1}")
	for _, r := range rules() {
		_ = v.RegisterValidation(r.tag, r.fn)
		x.message(r.tag, r.msg)
	}
	return x
}

// jsonName names a field by its json tag, falling back to the Go name
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func (x *Validator) message(tag, text string) {
	_ = x.v.RegisterTranslation(tag, x.trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// Check validates the struct v. The first failing field becomes a Validation error
// carrying that field's name
func (x *Validator) Check(v any) error {
	err := x.v.Struct(v)
	if err == nil {
		return nil
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		logger.Get().Error().Err(err).Msg("validator misuse")
		return perr.JSONErrf("validation error")
	}
	var failures validator.ValidationErrors
	if !errors.As(err, &failures) || len(failures) == 0 {
		return perr.Wrap(err, perr.ErrorCodeValidation, "validation failed")
	}
	fe := failures[0]
	return perr.WithField(perr.New(perr.ErrorCodeValidation, fe.Translate(x.trans)), fe.Field())
}

// Validate checks v with the shared validator
func Validate(v any) error { return Shared().Check(v) }

// JSONOptions tunes ParseJSON. Passing options replaces the defaults wholesale
type JSONOptions struct {
	MaxBytes        int64 // 0 means unlimited
	DisallowUnknown bool
	AllowEmptyBody  bool // an empty body yields the zero T, unvalidated
}

// DefaultJSONOptions caps bodies at 1 MiB and rejects unknown fields and empty bodies
var DefaultJSONOptions = JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}

// ParseJSON decodes exactly one JSON value from r's body into T and validates it
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var dst T
	o := DefaultJSONOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Warn().Err(err).Msg("closing request body")
		}
	}()

	body := r.Body
	if o.MaxBytes > 0 {
		body = http.MaxBytesReader(nil, body, o.MaxBytes)
	}
	br := bufio.NewReader(body)
	if _, err := br.Peek(1); errors.Is(err, io.EOF) {
		if o.AllowEmptyBody {
			return dst, nil
		}
		return dst, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(br)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&dst); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			return dst, perr.TooLargef("request body exceeds %d bytes", tooBig.Limit)
		case o.AllowEmptyBody && errors.Is(err, io.EOF):
			return dst, nil
		default:
			return dst, perr.JSONErrf("invalid JSON: %v", err)
		}
	}
	if trailing(dec) {
		return dst, perr.JSONErrf("unexpected trailing data")
	}
	if err := Validate(dst); err != nil {
		var zero T
		return zero, err
	}
	return dst, nil
}
