package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X .../internal/buildinfo.Version=v1.2.3".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Resolved returns Version, falling back to the module version recorded by
// `go install` when no version was stamped.
func Resolved() string {
	if Version != "dev" {
		return Version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return Version
}

func String() string {
	return fmt.Sprintf("profilegen %s (commit=%s, date=%s)", Resolved(), Commit, Date)
}
