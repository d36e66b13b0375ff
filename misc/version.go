// Package misc holds program identity filled in at build time.
package misc

import (
	"runtime/debug"
)

// Set with -ldflags "-X varfmt/misc.version=... -X varfmt/misc.gitHash=...".
var (
	version = "dev"
	gitHash = ""
)

const appName = "varfmt"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns commit the binary was built from. When not provided
// by linker flags, VCS information embedded by go build is used.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				if len(s.Value) > 7 {
					return s.Value[:7]
				}
				return s.Value
			}
		}
	}
	return "unknown"
}
