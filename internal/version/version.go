// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

// Package version exposes build-time version information, populated via
// -ldflags at release time.
package version

import "fmt"

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// GitCommit is the short commit hash of the build.
	GitCommit = "unknown"
	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// Info bundles the build identifiers.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}

// Get returns the build information for this binary.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
}

// String returns a single-line human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", i.Version, i.GitCommit, i.BuildTime)
}
