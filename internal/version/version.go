/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the addonc CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const unknown = "unknown"

var (
	// Version information, set at build time via ldflags
	Version   = "dev"
	GitCommit = unknown
	GitTag    = unknown
	BuildTime = unknown
	GitDirty  = ""
)

// BuildInfo is the build metadata reported by `addonc version`.
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	GitTag    string `json:"gitTag" yaml:"gitTag"`
	BuildTime string `json:"buildTime" yaml:"buildTime"`
	Dirty     bool   `json:"dirty" yaml:"dirty"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
}

// Get returns the version string for the application.
// Preference: ldflags Version, module version, then tag plus short commit.
func Get() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "(devel)" && v != "" {
			return v
		}
	}

	if GitTag != unknown && GitCommit != unknown {
		return describe(GitTag, GitCommit, GitDirty == "dirty")
	}

	return "dev"
}

// describe formats a git-describe style version, e.g. "v1.0.0-abc1234-dirty".
func describe(tag, commit string, dirty bool) string {
	version := tag
	if commit != "" {
		short := commit
		if len(short) > 7 {
			short = short[:7]
		}
		if !strings.HasSuffix(tag, short) {
			version = fmt.Sprintf("%s-%s", tag, short)
		}
	}
	if dirty {
		version += "-dirty"
	}
	return version
}

// Full returns the version with its commit, when known.
func Full() string {
	version := Get()
	if GitCommit != unknown {
		return fmt.Sprintf("%s (commit: %s)", version, GitCommit)
	}
	return version
}

// Info returns detailed build information.
func Info() BuildInfo {
	return BuildInfo{
		Version:   Get(),
		GitCommit: GitCommit,
		GitTag:    GitTag,
		BuildTime: BuildTime,
		Dirty:     GitDirty == "dirty",
		GoVersion: runtime.Version(),
	}
}
