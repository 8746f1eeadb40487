// Package version provides version information for the gfcss CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// treeSitterModule is the parser binding whose version is reported.
const treeSitterModule = "github.com/smacker/go-tree-sitter"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// TreeSitter is the version of the tree-sitter binding linked in.
	TreeSitter string `json:"treeSitter"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:    Version,
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
		TreeSitter: depVersion(treeSitterModule),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("gfcss:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s\n\ntree-sitter:\n  Binding:  %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.TreeSitter)
}

// depVersion looks up a dependency version in the embedded build info.
func depVersion(path string) string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return findDep(bi, path)
}

func findDep(bi *debug.BuildInfo, path string) string {
	for _, dep := range bi.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}
