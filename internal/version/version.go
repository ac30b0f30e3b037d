package version

import "fmt"

var (
	// Version is the release of viewer-manifest. It can be overridden via ldflags.
	Version = "0.1.0"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns only the release string.
func Short() string {
	return Version
}

// Full returns a human-readable version line with commit and build time.
func Full() string {
	return fmt.Sprintf("viewer-manifest %s (commit %s, built %s)", Version, Commit, BuildTime)
}
