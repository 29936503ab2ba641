// Package version reports what build of the API is running
package version

import (
	"runtime/debug"
	"sync"
)

// Service names the API in logs, build info and the postgres application_name
const Service = "cubewars-api"

// Set with -ldflags "-X cubewars/internal/core/version.version=v1.2.0" and
// likewise commit and date. Unset values fall back to the VCS stamp Go
// embeds in module builds
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// BuildInfo is the body of GET /api/version
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Dirty   bool   `json:"dirty,omitempty"`
}

var readBuildInfo = debug.ReadBuildInfo

// Info is computed once per process
var Info = sync.OnceValue(func() BuildInfo {
	out := BuildInfo{Service: Service, Version: version, Commit: commit, Date: date}
	if bi, ok := readBuildInfo(); ok {
		fromVCS(&out, bi.Settings)
	}
	if out.Commit == "" {
		out.Commit = "none"
	}
	if out.Date == "" {
		out.Date = "unknown"
	}
	return out
})

func fromVCS(out *BuildInfo, settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if out.Commit == "" {
				out.Commit = s.Value
			}
		case "vcs.time":
			if out.Date == "" {
				out.Date = s.Value
			}
		case "vcs.modified":
			out.Dirty = s.Value == "true"
		}
	}
}
