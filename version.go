// Package scriptline carries the release version of the scriptline module.
package scriptline

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// ParseVersion parses a SemVer string written without the tag prefix.
func ParseVersion(v string) (*version.Version, error) {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "v") {
		return nil, fmt.Errorf("version %q: tag prefix not allowed", v)
	}
	return version.NewSemver(v)
}
