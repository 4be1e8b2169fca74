/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the brandtokens CLI.
package version

import (
	"runtime/debug"
)

// Set at build time via -ldflags "-X bennypowers.dev/brandtokens/internal/version.Version=..."
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"buildTime,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
}

// Info returns the build information. Values set by ldflags win; the
// module version and VCS stamps embedded by the go tool fill the rest.
func Info() BuildInfo {
	info := BuildInfo{Version: Version, Commit: GitCommit, BuildTime: BuildTime}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// Get returns the version string.
func Get() string {
	return Info().Version
}

// Full returns the version with a short commit and dirty marker, e.g.
// "v0.3.0 (commit 1a2b3c4, dirty)".
func Full() string {
	return Info().String()
}

func (b BuildInfo) String() string {
	if b.Commit == "" {
		return b.Version
	}
	commit := b.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if b.Dirty {
		return b.Version + " (commit " + commit + ", dirty)"
	}
	return b.Version + " (commit " + commit + ")"
}
