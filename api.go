package docref

// DefaultOptions returns the preset used by Versions:
//
//   - ReleaseOnly: false      // prereleases are listed
//   - Depth:       DepthAll   // every tag
//   - Sort:        SortDesc   // newest first
//   - Limit:       0          // unlimited
func DefaultOptions() Options {
	return Options{
		Depth: DepthAll,
		Sort:  SortDesc,
	}
}

// Versions runs SelectVersions with DefaultOptions.
//
// Every tag ref holding a full SemVer becomes one VersionHead, newest
// first, and the newest is flagged IsLatest. Branch refs are skipped.
func Versions(refs []string) ([]VersionHead, error) {
	return SelectVersions(refs, DefaultOptions())
}

// Heads returns the newest version of every head, newest head first.
// DepthHead + SortDesc.
func Heads(refs []string) ([]VersionHead, error) {
	opt := DefaultOptions()
	opt.Depth = DepthHead

	return SelectVersions(refs, opt)
}

// LatestTag returns the bare name of the newest full-SemVer tag in refs.
func LatestTag(refs []string) (string, error) {
	rs, err := parseRefs(refs)
	if err != nil {
		return "", err
	}

	tags := collectTags(rs, Options{})
	if len(tags) == 0 {
		return "", ErrNoLatestTag
	}

	return maxRec(tags).tag, nil
}
