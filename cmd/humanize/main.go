// Command humanize resolves humanized text into typed values from the command line.
//
//	humanize -kind boolean -locale en yes
//	humanize -kind ordinal -all "twenty-first"
//
// Exit status is 0 when every text matched, 1 when any did not, 2 on usage errors
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"humanize/internal/core/scope"
	"humanize/internal/core/value"
	"humanize/internal/platform/config"
	"humanize/internal/platform/config/raw"
	perr "humanize/internal/platform/errors"
	"humanize/internal/platform/logger"
	pnet "humanize/internal/platform/net"
	"humanize/internal/services/api/parse/domain"
	parsesvc "humanize/internal/services/api/parse/service"
)

const (
	exitOK      = 0
	exitNoMatch = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	kind   string
	locale string
	all    bool
	def    string
	asJSON bool
}

func run(args []string, stdout, stderr io.Writer) int {
	// diagnostics go to stderr and stay quiet unless LOG_LEVEL asks otherwise
	lo := logger.FromEnv()
	lo.Level = raw.New().Prefix("LOG_").Get("LEVEL", "warn")
	lo.Writer = stderr
	logger.Init(lo)

	cfg := config.New().Prefix("HUMANIZE_")

	var o options
	fs := flag.NewFlagSet("humanize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.kind, "kind", "boolean", "value kind: boolean, integer, ordinal, duration, instant")
	fs.StringVar(&o.locale, "locale", "", "BCP 47 locale to resolve under; empty means any")
	fs.BoolVar(&o.all, "all", false, "print every candidate in rank order")
	fs.StringVar(&o.def, "default", "", "value used when a text does not match; parsed as -kind, exit status stays 0")
	fs.BoolVar(&o.asJSON, "json", false, "print results as JSON lines")
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "usage: humanize [-kind K] [-locale TAG] [-all] [-default V] [-json] TEXT...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}
	kind, err := value.ParseKind(o.kind)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "humanize:", err)
		return exitUsage
	}
	sc, err := scope.Parse(o.locale)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "humanize:", err)
		return exitUsage
	}

	ctx := pnet.WithScope(context.Background(), sc)
	ctx = logger.WithLocale(ctx, sc.String())
	svc := parsesvc.New(parsesvc.ParserFromConfig(cfg), 1)

	var fallback *value.Value
	if o.def != "" {
		d, err := svc.Parse(ctx, domain.ParseInput{Text: o.def, Kind: o.kind})
		if err != nil || !d.Matched {
			_, _ = fmt.Fprintf(stderr, "humanize: -default %q is not a %s\n", o.def, kind)
			return exitUsage
		}
		fallback = d.Value
	}

	status := exitOK
	for _, text := range fs.Args() {
		res, err := svc.Parse(ctx, domain.ParseInput{Text: text, Kind: o.kind, All: o.all})
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "humanize:", err)
			return exitUsage
		}
		if !res.Matched && fallback != nil {
			res.Value = fallback
			if o.all {
				res.Candidates = []value.Candidate{{Value: *fallback, Matcher: "default"}}
			}
		}
		if res.Value == nil {
			logger.C(ctx).Debug().Str("text", text).Msg("no match")
			_, _ = fmt.Fprintln(stderr, "humanize:", perr.NoMatchf("no %s recognized in %q", res.Kind, text))
			status = exitNoMatch
			continue
		}
		if err := printResult(stdout, res, o); err != nil {
			_, _ = fmt.Fprintln(stderr, "humanize:", err)
			return exitUsage
		}
	}
	return status
}

func printResult(w io.Writer, res domain.ParseResult, o options) error {
	if o.asJSON {
		return json.NewEncoder(w).Encode(res)
	}
	if !o.all {
		_, err := fmt.Fprintln(w, res.Value.String())
		return err
	}
	parts := make([]string, 0, len(res.Candidates))
	for _, c := range res.Candidates {
		parts = append(parts, fmt.Sprintf("%s\t%d\t%s", c.Value, c.Weight, c.Matcher))
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "\n"))
	return err
}
