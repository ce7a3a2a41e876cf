// Package buildinfo holds version metadata stamped in at link time:
//
//	go build -ldflags "-X github.com/jsamuelsen11/identifiers/internal/buildinfo.Version=v1.2.0"
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("doiscan %s (commit=%s, date=%s)", ResolvedVersion(), Commit, Date)
}

// ResolvedVersion returns Version, or the module version recorded by the Go
// toolchain when Version was not stamped.
func ResolvedVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
