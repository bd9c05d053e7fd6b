// Package version carries build information stamped in by the linker.
package version

import "fmt"

// Populated by the Go linker (-ldflags -X) at build time; see magetasks.Ldflags.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build information for logs.
func String() string {
	return fmt.Sprintf("sqboot %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
