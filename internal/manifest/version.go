package manifest

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SplitToken splits a library token into a dependency name and version.
// A token may carry an inline version as "name@1.2.3" or "name@^1.2.3";
// scoped packages ("@scope/name", "@scope/name@~2.0.0") are handled by
// splitting on the last "@". Tokens without a version, and tokens whose
// version part is not a parseable semver constraint, resolve to
// DefaultVersion.
func SplitToken(token string) (name, version string) {
	idx := strings.LastIndex(token, "@")
	if idx <= 0 {
		// No separator, or a scoped package with no version.
		return token, DefaultVersion
	}

	name, version = token[:idx], token[idx+1:]
	if !validConstraint(version) {
		return name, DefaultVersion
	}
	return name, version
}

// validConstraint reports whether s parses as a semver constraint
// (plain versions, ranges, and operators like ^ and ~ all qualify).
func validConstraint(s string) bool {
	if s == "" {
		return false
	}
	_, err := semver.NewConstraint(s)
	return err == nil
}
