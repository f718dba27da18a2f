package version

import "fmt"

// Version is set at build time:
// go build -ldflags "-X git.home.luguber.info/inful/uwiki/internal/version.Version=v1.0.0".
var Version = "unknown"

// Build metadata, also set via ldflags.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String returns the line printed by --version.
func String() string {
	if GitCommit == "unknown" && BuildTime == "unknown" {
		return "uwiki " + Version
	}
	return fmt.Sprintf("uwiki %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
