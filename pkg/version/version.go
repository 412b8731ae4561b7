// Package version holds build metadata, overridden at release time via
// -ldflags.
package version

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
