// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/spellgrid/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/spellgrid/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/spellgrid/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Info is the build information embedded in generated documents.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
}

// Get returns the current build information. The placeholder commit of
// development builds is omitted.
func Get() Info {
	info := Info{Version: Version}
	if Commit != "none" {
		info.Commit = Commit
	}
	return info
}

// Generator names the producing program, e.g. "spellgrid v1.2.3".
func Generator() string {
	return "spellgrid " + Version
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
