package docref

import (
	"strconv"

	sv "github.com/woozymasta/semver"
)

// coerce extracts the first X / X.Y / X.Y.Z run from a free-form name and
// expands it to X.Y.Z (missing parts are 0). Leading "v", prerelease and
// build decorations are ignored: "v0.0.1-beta.6" -> 0.0.1, "release-2" -> 2.0.0.
func coerce(name string) (sv.Semver, bool) {
	m := coerceRe.FindStringSubmatch(name)
	if m == nil {
		return sv.Semver{}, false
	}

	parts := [3]int{}
	for i, s := range m[1:] {
		if s == "" {
			break
		}

		n, err := strconv.Atoi(s)
		if err != nil {
			return sv.Semver{}, false
		}
		parts[i] = n
	}

	v := makeSemver(parts[0], parts[1], parts[2], "")
	v.Original = name

	return v, true
}
