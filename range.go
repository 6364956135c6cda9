package docref

import (
	"strconv"
	"strings"

	ms "github.com/Masterminds/semver/v3"
)

// compileRange parses query as a SemVer range ("^1.2.0", "~1.2", "v6", "1.x",
// ">=1 <2", "*", "a || b"). Prereleases always take part in matching.
// An empty query matches everything.
func compileRange(query string) (*ms.Constraints, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		q = "*"
	}
	q = expandPartial(q)

	c, err := ms.NewConstraint(q)
	if err != nil {
		return nil, false
	}
	c.IncludePrerelease = true

	return c, true
}

// satisfies checks a full-SemVer tag name against a compiled range.
func satisfies(c *ms.Constraints, tag string) bool {
	v, err := ms.NewVersion(tag)
	if err != nil {
		return false
	}

	return c.Check(v)
}

// Satisfies reports whether the full-SemVer version matches query.
// Shorthand versions ("1", "1.2") and unparsable ranges never match.
func Satisfies(version, query string) bool {
	if !IsVersion(version) {
		return false
	}

	c, ok := compileRange(query)
	if !ok {
		return false
	}

	return satisfies(c, version)
}

// MaxSatisfying returns the highest full-SemVer entry of versions that
// matches query. ok is false when nothing matches.
func MaxSatisfying(versions []string, query string) (string, bool) {
	c, ok := compileRange(query)
	if !ok {
		return "", false
	}

	rs := make([]rec, 0, len(versions))
	for i, s := range versions {
		if v, ok := parseTag(s); ok {
			rs = append(rs, rec{tag: s, ver: v, idx: i})
		}
	}

	best, ok := maxSatisfying(rs, c)
	if !ok {
		return "", false
	}

	return best.tag, true
}

func maxSatisfying(in []rec, c *ms.Constraints) (rec, bool) {
	var (
		best  rec
		found bool
	)

	for _, r := range in {
		if !satisfies(c, r.tag) {
			continue
		}

		if !found || newer(r, best) {
			best, found = r, true
		}
	}

	return best, found
}

// expandPartial turns a bare X / X.Y query into an explicit bucket whose
// ends carry "-0", so prereleases inside the bucket match:
//
//	X   -> >=X.0.0-0, <(X+1).0.0-0
//	X.Y -> >=X.Y.0-0, <X.(Y+1).0-0
//
// Anything else is returned unchanged.
func expandPartial(q string) string {
	if m := relX.FindStringSubmatch(q); m != nil {
		maj, err := strconv.Atoi(m[1])
		if err != nil {
			return q
		}

		return bucket([3]int{maj, 0, 0}, [3]int{maj + 1, 0, 0})
	}

	if m := relXY.FindStringSubmatch(q); m != nil {
		maj, err1 := strconv.Atoi(m[1])
		min, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			return q
		}

		return bucket([3]int{maj, min, 0}, [3]int{maj, min + 1, 0})
	}

	return q
}

func bucket(floor, ceil [3]int) string {
	return ">=" + preZero(floor) + ", <" + preZero(ceil)
}

// preZero renders X.Y.Z-0, the lowest version of the X.Y.Z line.
func preZero(v [3]int) string {
	return strconv.Itoa(v[0]) + "." + strconv.Itoa(v[1]) + "." + strconv.Itoa(v[2]) + "-0"
}
