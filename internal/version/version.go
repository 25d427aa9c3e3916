// Package version holds build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/oukeidos/wcgen/internal/version.Version=0.2.0 \
//	  -X github.com/oukeidos/wcgen/internal/version.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/oukeidos/wcgen/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import "fmt"

// Name is the product name shown in version output and the About dialog.
const Name = "wcgen"

var (
	Version   = "0.1.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info returns the multi-line form printed by --version.
func Info() string {
	return fmt.Sprintf("%s %s\ncommit: %s\nbuild: %s", Name, Version, Commit, BuildDate)
}

// Short is the single-line form used in the About dialog and logs.
func Short() string {
	return fmt.Sprintf("%s %s (%s)", Name, Version, Commit)
}
