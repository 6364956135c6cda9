package docref

import "strconv"

// Head returns the display group of a bare branch or tag name:
//
//	major > 0  -> "v<major>"      (v6.2.1   -> v6)
//	minor > 0  -> "v0.<minor>"    (v0.4.9   -> v0.4)
//	otherwise  -> "v0.0.<patch>"  (v0.0.3   -> v0.0.3)
//
// Names with no version-shaped part (e.g. "main") are their own head.
func Head(name string) string {
	v, ok := coerce(name)
	if !ok {
		return name
	}

	switch {
	case v.Major > 0:
		return "v" + strconv.Itoa(v.Major)
	case v.Minor > 0:
		return "v0." + strconv.Itoa(v.Minor)
	default:
		return "v0.0." + strconv.Itoa(v.Patch)
	}
}

// RefHead classifies ref and returns the Head of its bare name.
// Malformed refs fail with ErrInvalidRefFormat.
func RefHead(ref string) (string, error) {
	name, err := BranchOrTagName(ref)
	if err != nil {
		return "", err
	}

	return Head(name), nil
}
