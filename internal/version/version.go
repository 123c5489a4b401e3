package version

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/lnlst/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/lnlst/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/lnlst/internal/version.Date={{.Date}}
)

// IsRelease reports whether Version is a semantic version, with or without
// the leading "v".
func IsRelease() bool {
	return semver.IsValid(canonical(Version))
}

// String is the --version line: "lnlst 0.2.0". Development builds also
// carry the commit and build date.
func String() string {
	if IsRelease() {
		return "lnlst " + strings.TrimPrefix(Version, "v")
	}
	return fmt.Sprintf("lnlst %s (commit %s, built %s)", Version, Commit, Date)
}

func canonical(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
