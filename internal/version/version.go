// Package version holds build metadata reported by tasktree --version.
package version

// Set at build time with ldflags, e.g.
// go build -ldflags "-X github.com/pablasso/tasktree/internal/version.Version=v1.0.0" ./cmd/tasktree
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)
