package docref

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRefFormat is returned when a ref lacks the prefix required
	// by the requested classification.
	ErrInvalidRefFormat = errors.New("invalid ref format")

	// ErrNoRefsAvailable is returned by Resolve for an empty ref list.
	ErrNoRefsAvailable = errors.New("no refs available")

	// ErrNoValidVersions is returned when no tag in the list is a valid SemVer.
	ErrNoValidVersions = errors.New("no valid versions")

	// ErrNoLatestTag is returned when no latest tag can be picked for resolution.
	ErrNoLatestTag = errors.New("no latest tag")
)

// RefError reports a ref that failed classification.
type RefError struct {
	Ref  string // raw input
	Want Kind   // expected kind; KindUnknown means branch or tag
}

func (e *RefError) Error() string {
	if e.Want == KindUnknown {
		return fmt.Sprintf("%v: %q is neither a branch nor a tag ref", ErrInvalidRefFormat, e.Ref)
	}

	return fmt.Sprintf("%v: %q is not a %s ref", ErrInvalidRefFormat, e.Ref, e.Want)
}

// Unwrap makes errors.Is(err, ErrInvalidRefFormat) hold.
func (e *RefError) Unwrap() error {
	return ErrInvalidRefFormat
}
