// Package version exposes build metadata injected via ldflags
// (Version, Commit, BuildTime) and the cobra `version` subcommand.
package version
