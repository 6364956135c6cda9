package docref

import (
	"sort"

	"github.com/woozymasta/semver"
)

// newer reports whether a orders strictly after b.
// Versions equal by precedence fall back to the raw tag so the result
// never depends on input order.
func newer(a, b rec) bool {
	if c := a.ver.Compare(b.ver); c != 0 {
		return c > 0
	}

	return a.tag > b.tag
}

// sortRecs orders records newest first (SortDesc) or oldest first (SortAsc).
func sortRecs(in []rec, mode SortMode) {
	if len(in) < 2 {
		return
	}

	sort.SliceStable(in, func(i, j int) bool {
		if mode == SortAsc {
			return newer(in[j], in[i])
		}

		return newer(in[i], in[j])
	})
}

// Sort orders bare tag names using SemVer precedence when possible,
// otherwise falls back to lexicographic sort.
func Sort(in []string, mode SortMode) []string {
	if len(in) < 2 {
		return append([]string(nil), in...)
	}

	arr := make([]rec, 0, len(in))
	for i, t := range in {
		v, ok := semver.Parse(t)
		if !ok || !v.IsValid() {
			// Fallback: lexicographic sort if any tag is not a valid SemVer.
			return sortLex(in, mode)
		}
		arr = append(arr, rec{tag: t, ver: v, idx: i})
	}

	sortRecs(arr, mode)

	out := make([]string, len(arr))
	for i, it := range arr {
		out[i] = it.tag
	}

	return out
}

// SortN sorts and then returns at most N items.
func SortN(in []string, mode SortMode, n int) []string {
	return capStrings(Sort(in, mode), n)
}

// sortLex does a plain lexicographic sort as a fallback.
func sortLex(in []string, mode SortMode) []string {
	out := append([]string(nil), in...)
	if mode == SortAsc {
		sort.Strings(out)
	} else {
		sort.Sort(sort.Reverse(sort.StringSlice(out)))
	}

	return out
}
