package docref

import sv "github.com/woozymasta/semver"

// rec is an internal record carrying the bare tag name, its parsed version and input index.
type rec struct {
	tag string    // bare tag name
	ver sv.Semver // parsed, always valid
	idx int       // position in the input
}

// collectTags keeps tag refs whose names are full SemVer and pass the
// cheap name filters. Branch refs never survive.
func collectTags(refs []Ref, opt Options) []rec {
	out := make([]rec, 0, len(refs))
	for idx, r := range refs {
		if !r.IsTag() || !prefilterTag(r.Name, opt) {
			continue
		}

		v, ok := parseTag(r.Name)
		if !ok {
			continue
		}

		if opt.ReleaseOnly && v.HasPre() {
			continue
		}

		out = append(out, rec{tag: r.Name, ver: v, idx: idx})
	}

	return out
}

// prefilterTag: user regexes on the bare name, before parsing.
func prefilterTag(t string, opt Options) bool {
	if opt.Include != nil && !opt.Include.MatchString(t) {
		return false
	}

	if opt.Exclude != nil && opt.Exclude.MatchString(t) {
		return false
	}

	return true
}

// latestPerHead keeps the newest record for each Head, in first-seen head order.
func latestPerHead(in []rec) []rec {
	by := make(map[string]rec, len(in))
	order := make([]string, 0, 16)

	for _, r := range in {
		k := Head(r.tag)
		if b, ok := by[k]; ok {
			if newer(r, b) {
				by[k] = r
			}
			continue
		}

		by[k] = r
		order = append(order, k)
	}

	out := make([]rec, 0, len(by))
	for _, k := range order {
		out = append(out, by[k])
	}

	return out
}

// maxRec returns the newest record; in must not be empty.
func maxRec(in []rec) rec {
	best := in[0]
	for _, r := range in[1:] {
		if newer(r, best) {
			best = r
		}
	}

	return best
}
