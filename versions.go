package docref

// VersionHead is one entry of the version index.
type VersionHead struct {
	// Head is the display group, like "v2" or "v0.4".
	Head string `json:"head" yaml:"head"`

	// Version is the full tag name, like "v2.1.1".
	Version string `json:"version" yaml:"version"`

	// IsLatest marks the newest version; it is served from the latest
	// branch rather than from its tag.
	IsLatest bool `json:"isLatest" yaml:"isLatest"`
}

// SelectVersions builds the version index from a ref list.
// Pipeline:
//  1. classify refs (malformed refs fail)
//  2. keep tags that are full SemVer and pass Include/Exclude/ReleaseOnly
//  3. Depth aggregation
//  4. sort newest first, cap to Limit, flag the newest as latest
//  5. flip to oldest first when Sort is SortAsc
//
// Fails with ErrNoValidVersions when step 2 leaves nothing.
func SelectVersions(refs []string, opt Options) ([]VersionHead, error) {
	rs, err := parseRefs(refs)
	if err != nil {
		return nil, err
	}

	tags := collectTags(rs, opt)
	if len(tags) == 0 {
		return nil, ErrNoValidVersions
	}

	switch opt.Depth {
	case DepthHead:
		tags = latestPerHead(tags)
	case DepthLatest:
		tags = []rec{maxRec(tags)}
	default: // DepthAll -> keep all
	}

	sortRecs(tags, SortDesc)
	tags = capRecs(tags, opt.Limit)

	out := make([]VersionHead, 0, len(tags))
	for _, r := range tags {
		out = append(out, VersionHead{Head: Head(r.tag), Version: r.tag})
	}
	out[0].IsLatest = true

	if opt.Sort == SortAsc {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return out, nil
}
