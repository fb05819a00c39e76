// Package version exposes the build metadata stamped into the regxl binary.
package version

import "runtime/debug"

// Release builds override these via -ldflags; everything left empty is
// filled from the VCS stamps the Go toolchain embeds.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is the commit hash the binary was built from.
	GitCommit = ""

	// GitMessage is the subject line of that commit.
	GitMessage = ""

	// BuildDate is the build timestamp in ISO-8601.
	BuildDate = ""
)

// Info is the effective build metadata after merging the ldflags variables
// with the binary's embedded build info.
type Info struct {
	Version    string
	GitCommit  string
	GitMessage string
	BuildDate  string
	Dirty      bool
}

// Resolve merges the ldflags variables with the embedded build info.
// Explicit ldflags values win; VCS stamps fill the gaps.
func Resolve() Info {
	var vcs map[string]string
	if bi, ok := debug.ReadBuildInfo(); ok {
		vcs = make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			vcs[s.Key] = s.Value
		}
	}
	return merge(Version, GitCommit, GitMessage, BuildDate, vcs)
}

func merge(ver, commit, msg, date string, vcs map[string]string) Info {
	info := Info{Version: ver, GitCommit: commit, GitMessage: msg, BuildDate: date}
	if info.GitCommit == "" {
		info.GitCommit = vcs["vcs.revision"]
	}
	if info.BuildDate == "" {
		info.BuildDate = vcs["vcs.time"]
	}
	info.Dirty = vcs["vcs.modified"] == "true"
	return info
}
