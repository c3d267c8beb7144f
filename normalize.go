package versionstamp

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Components splits version into its dot-separated components and
// right-pads the result with "0" until at least 4 components exist. A
// pre-release or build suffix ("1.2.3-rc1", "1.2.3+sha.abc") is stripped
// before splitting so its dots don't leak into the tuple. Versions with
// more than 4 components are kept whole, never truncated.
func Components(version string) []string {
	base := version
	if i := strings.IndexAny(base, "-+"); i >= 0 {
		base = base[:i]
	}
	parts := strings.Split(base, ".")
	// Re-check the count after every append; padding must terminate for
	// any input length.
	for len(parts) < 4 {
		parts = append(parts, "0")
	}
	return parts
}

// Tuple joins components with commas into the filevers/prodvers form,
// e.g. "1,2,3,0".
func Tuple(parts []string) string {
	return strings.Join(parts, ",")
}

// NumericTuple converts the first four components to integers for resource
// formats that only accept numbers. ok is false when any component is not
// a plain integer, which is the case for the UnknownVersion sentinel.
func NumericTuple(parts []string) (tuple [4]int, ok bool) {
	for i := 0; i < 4; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return [4]int{}, false
		}
		tuple[i] = n
	}
	return tuple, true
}

// IsSemver reports whether version is valid semver. x/mod wants the "v"
// prefix which version files usually omit, so one is added if missing.
func IsSemver(version string) bool {
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return semver.IsValid(version)
}
