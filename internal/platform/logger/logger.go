// Package logger owns the process zerolog logger and the request scoped children that
// carry a request id and the locale the request resolved under
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"humanize/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is zerolog's logger; callers never import zerolog for the type alone
type Logger = zerolog.Logger

// Options configures New
type Options struct {
	Level        string // trace..panic, "warning" accepted; unknown means debug
	Format       string // "console" or json
	Service      string
	Component    string
	Writer       io.Writer // stdout when nil
	WithCaller   bool
	SampleEvery  int // keep one event in N; <= 1 keeps all
	StaticFields map[string]string
}

// FromEnv reads LOG_* through the raw view, which does not log
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:       env.Get("LEVEL", "debug"),
		Format:      strings.ToLower(env.Get("FORMAT", "console")),
		Service:     env.Get("SERVICE", "humanize"),
		Component:   env.Get("COMPONENT", ""),
		WithCaller:  env.GetBool("CALLER", false),
		SampleEvery: env.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	initOnce sync.Once
	root     atomic.Pointer[Logger]
)

// Init installs the process logger built from opt. Only the first call has an effect
func Init(opt Options) {
	initOnce.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := New(opt)
		root.Store(&l)
	})
}

// Get returns the process logger, initializing it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// New builds a standalone logger from opt without touching the process logger
func New(opt Options) Logger {
	out := opt.Writer
	if out == nil {
		out = os.Stdout
	}
	if opt.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	fields := zerolog.New(out).Level(parseLevel(opt.Level)).With().Timestamp()
	if bi, ok := debug.ReadBuildInfo(); ok {
		fields = fields.Str("go_version", bi.GoVersion)
	}
	for k, v := range map[string]string{"service": opt.Service, "component": opt.Component} {
		if v != "" {
			fields = fields.Str(k, v)
		}
	}
	for k, v := range opt.StaticFields {
		fields = fields.Str(k, v)
	}
	if opt.WithCaller {
		fields = fields.Caller()
	}

	l := fields.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return l
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" || lvl == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return lvl
}

type requestKey struct{}

type request struct{ id, locale string }

func requestFrom(ctx context.Context) request {
	r, _ := ctx.Value(requestKey{}).(request)
	return r
}

// WithRequest records reqID and locale on ctx. Empty values leave what is already there
func WithRequest(ctx context.Context, reqID, locale string) context.Context {
	r := requestFrom(ctx)
	next := r
	if reqID != "" {
		next.id = reqID
	}
	if locale != "" {
		next.locale = locale
	}
	if next == r {
		return ctx
	}
	return context.WithValue(ctx, requestKey{}, next)
}

// WithLocale records only the locale
func WithLocale(ctx context.Context, locale string) context.Context {
	return WithRequest(ctx, "", locale)
}

// C is Enrich on the process logger
func C(ctx context.Context) *Logger { return Enrich(Get(), ctx) }

// Enrich returns a child of base with request_id and locale from ctx
func Enrich(base *Logger, ctx context.Context) *Logger {
	r := requestFrom(ctx)
	if r == (request{}) {
		return base
	}
	b := base.With()
	if r.id != "" {
		b = b.Str("request_id", r.id)
	}
	if r.locale != "" {
		b = b.Str("locale", r.locale)
	}
	l := b.Logger()
	return &l
}

// Named returns a child of the process logger tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
