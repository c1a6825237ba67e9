// Package version exposes build metadata for the gatediff binary.
package version

// Build metadata, overridden at release time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
