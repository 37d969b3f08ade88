package modkit

import (
	"net/http"

	str "humanize/internal/platform/strings"
)

// Option adjusts how a module is built
type Option func(*Built)

// WithName overrides the module name
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix mounts the module under prefix instead of in place. The prefix is cleaned to
// "/seg[/seg...]"; a blank one panics
func WithPrefix(prefix string) Option {
	clean := str.MustPrefix(prefix)
	return func(b *Built) { b.Prefix = clean }
}

// WithMiddlewares appends module scoped middleware
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module the ports it consumes from a sibling. The receiving module owns
// the concrete type
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }
