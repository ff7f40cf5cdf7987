// Package build carries version information injected at link time.
package build

import (
	"fmt"
	"runtime"
)

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// New fills GoVersion from the running toolchain and defaults empty fields.
func New(version, commit, date string) Info {
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "none"
	}
	if date == "" {
		date = "unknown"
	}
	return Info{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		GoVersion: runtime.Version(),
	}
}

// String renders a one-line version banner.
func (i Info) String() string {
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("tabshell %s (%s, built %s, %s)", i.Version, commit, i.BuildDate, i.GoVersion)
}

// RepoURL returns the project repository URL.
func RepoURL() string {
	return "https://github.com/bnema/tabshell"
}
