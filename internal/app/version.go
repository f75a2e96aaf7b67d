package app

import "fmt"

// AppName tags log records and the CLI.
const AppName = "ballotwiki"

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/ballotwiki-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs and health endpoints.
func BuildVersion() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", AppName, Version, Commit, BuildTime)
}
