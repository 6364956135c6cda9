package docref

import sv "github.com/woozymasta/semver"

// parseTag parses a bare tag name as a full SemVer (X.Y.Z[-pre][+build],
// optional leading "v"). Shorthands X / X.Y are rejected.
func parseTag(s string) (sv.Semver, bool) {
	if !strictRe.MatchString(s) {
		return sv.Semver{}, false
	}

	v, ok := sv.ParseNoCanon(s)
	if !ok || !v.IsValid() || !v.HasPatch() {
		return sv.Semver{}, false
	}

	v.Original = s

	return v, true
}

// IsVersion reports whether a bare tag name is a full SemVer.
func IsVersion(s string) bool {
	_, ok := parseTag(s)
	return ok
}

// makeSemver is a light Semver constructor that skips parsing.
// prerelease goes without the leading '-' (e.g. "0" or "alpha.0").
func makeSemver(maj, min, pat int, prerelease string) sv.Semver {
	flags := sv.FlagHasMajor | sv.FlagHasMinor | sv.FlagHasPatch
	if prerelease != "" {
		flags |= sv.FlagHasPre
	}

	return sv.Semver{
		Major:      maj,
		Minor:      min,
		Patch:      pat,
		Prerelease: prerelease,
		Flags:      flags,
		Valid:      true,
	}
}
