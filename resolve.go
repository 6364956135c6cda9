package docref

// Resolve maps a version token to the ref documentation is served from.
//
//   - An exact branch or tag name is returned as "refs/tags/<query>" when
//     query is a full SemVer, otherwise as "refs/heads/<query>".
//   - A range satisfied by the newest tag returns latestBranch verbatim.
//   - Any other range returns "refs/tags/<highest matching tag>".
//
// A query that matches nothing yields ok == false and a nil error.
// Errors: ErrNoRefsAvailable for an empty list, ErrInvalidRefFormat for a
// malformed ref, ErrNoLatestTag when refs hold no SemVer tag.
func Resolve(query string, refs []string, latestBranch string) (ref string, ok bool, err error) {
	if len(refs) == 0 {
		return "", false, ErrNoRefsAvailable
	}

	rs, err := parseRefs(refs)
	if err != nil {
		return "", false, err
	}

	for _, r := range rs {
		if r.Name != query {
			continue
		}

		if IsVersion(query) {
			return Tag(query).String(), true, nil
		}

		return Branch(query).String(), true, nil
	}

	tags := collectTags(rs, Options{})
	if len(tags) == 0 {
		return "", false, ErrNoLatestTag
	}
	latest := maxRec(tags)

	c, valid := compileRange(query)
	if !valid {
		return "", false, nil
	}

	if satisfies(c, latest.tag) {
		return latestBranch, true, nil
	}

	if best, found := maxSatisfying(tags, c); found {
		return Tag(best.tag).String(), true, nil
	}

	return "", false, nil
}
