// Package version reports what build is running
package version

import (
	"runtime/debug"
	"sync"
)

// BuildInfo identifies a build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// stamped with
//
//	-ldflags "-X humanize/internal/core/version.version=v0.3.0 -X humanize/internal/core/version.commit=abc123 -X humanize/internal/core/version.date=2026-10-19"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var info = sync.OnceValue(func() BuildInfo {
	bi := BuildInfo{Service: "humanize-api", Version: version, Commit: commit, Date: date}
	if b, ok := debug.ReadBuildInfo(); ok {
		fillFromVCS(&bi, b.Settings)
	}
	return bi
})

// Info returns the build identity. Fields not stamped via ldflags fall back to the VCS
// settings the go tool embeds
func Info() BuildInfo { return info() }

func fillFromVCS(bi *BuildInfo, settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if bi.Commit == "none" && s.Value != "" {
				bi.Commit = s.Value
			}
		case "vcs.time":
			if bi.Date == "unknown" && s.Value != "" {
				bi.Date = s.Value
			}
		}
	}
}
