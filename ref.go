package docref

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

var (
	branchPrefix = plumbing.NewBranchReferenceName("").String() // "refs/heads/"
	tagPrefix    = plumbing.NewTagReferenceName("").String()    // "refs/tags/"
)

// Kind tells branch refs from tag refs.
type Kind uint8

const (
	// KindUnknown is the zero Kind; no valid Ref carries it.
	KindUnknown Kind = iota
	// KindBranch is a "refs/heads/<name>" ref.
	KindBranch
	// KindTag is a "refs/tags/<name>" ref.
	KindTag
)

// String returns a stable textual representation for Kind.
func (k Kind) String() string {
	switch k {
	case KindBranch:
		return "branch"
	case KindTag:
		return "tag"
	default:
		return "unknown"
	}
}

// Ref is a classified repository ref: its kind plus the bare name.
type Ref struct {
	Kind Kind
	Name string
}

// Branch returns the branch ref for name.
func Branch(name string) Ref {
	return Ref{Kind: KindBranch, Name: name}
}

// Tag returns the tag ref for name.
func Tag(name string) Ref {
	return Ref{Kind: KindTag, Name: name}
}

// String renders the full ref ("refs/heads/main", "refs/tags/v1.0.0").
func (r Ref) String() string {
	switch r.Kind {
	case KindBranch:
		return plumbing.NewBranchReferenceName(r.Name).String()
	case KindTag:
		return plumbing.NewTagReferenceName(r.Name).String()
	default:
		return r.Name
	}
}

// IsBranch reports whether r is a branch ref.
func (r Ref) IsBranch() bool { return r.Kind == KindBranch }

// IsTag reports whether r is a tag ref.
func (r Ref) IsTag() bool { return r.Kind == KindTag }

// ParseRef classifies a raw ref string. Anything other than a non-empty
// name under "refs/heads/" or "refs/tags/" is rejected with a *RefError.
func ParseRef(s string) (Ref, error) {
	rn := plumbing.ReferenceName(s)

	switch {
	case rn.IsBranch():
		if name := strings.TrimPrefix(s, branchPrefix); name != "" {
			return Branch(name), nil
		}
	case rn.IsTag():
		if name := strings.TrimPrefix(s, tagPrefix); name != "" {
			return Tag(name), nil
		}
	}

	return Ref{}, &RefError{Ref: s}
}

// BranchOrTagName strips either the branch or the tag prefix.
func BranchOrTagName(ref string) (string, error) {
	r, err := ParseRef(ref)
	if err != nil {
		return "", err
	}

	return r.Name, nil
}

// BranchName strips the branch prefix; tag refs are rejected.
func BranchName(ref string) (string, error) {
	return nameOfKind(ref, KindBranch)
}

// TagName strips the tag prefix; branch refs are rejected.
func TagName(ref string) (string, error) {
	return nameOfKind(ref, KindTag)
}

func nameOfKind(ref string, want Kind) (string, error) {
	r, err := ParseRef(ref)
	if err != nil || r.Kind != want {
		return "", &RefError{Ref: ref, Want: want}
	}

	return r.Name, nil
}

// parseRefs classifies the whole list, failing on the first malformed ref.
func parseRefs(in []string) ([]Ref, error) {
	out := make([]Ref, 0, len(in))
	for _, s := range in {
		r, err := ParseRef(s)
		if err != nil {
			return nil, err
		}

		out = append(out, r)
	}

	return out, nil
}
