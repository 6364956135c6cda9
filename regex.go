package docref

import "regexp"

var (
	// Full SemVer 2.0.0 (semver.org), optional leading "v".
	strictRe = regexp.MustCompile(`^v?(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
		`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
		`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

	// First MAJOR[.MINOR[.PATCH]] run not glued to other digits.
	// Components longer than 16 digits are not versions.
	coerceRe = regexp.MustCompile(`(?:^|\D)(\d{1,16})(?:\.(\d{1,16}))?(?:\.(\d{1,16}))?(?:$|\D)`)
)

var (
	// Partial version: exactly X.Y (optional leading "v").
	relXY = regexp.MustCompile(`^v?(0|[1-9]\d*)\.(0|[1-9]\d*)$`)

	// Partial version: exactly X (optional leading "v").
	relX = regexp.MustCompile(`^v?(0|[1-9]\d*)$`)
)
