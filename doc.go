/*
Package docref resolves documentation versions against the refs of a
source repository.

The package is network-agnostic: it operates purely on a slice of ref
strings ("refs/heads/<name>" or "refs/tags/<name>"). Typical flow:

 1. Fetch the raw ref list elsewhere (e.g., via a forge API or git ls-remote).
 2. Call Versions to render a version index, or Resolve to map one
    incoming version token to the ref to fetch content from.
 3. Fetch and render content for the returned ref.

Heads:
  - A head is the display group of a version: "v6" for any 6.x.y,
    "v0.4" for any 0.4.y and "v0.0.3" for a pre-1.0 patch-only release.
  - Head derivation coerces the first MAJOR[.MINOR[.PATCH]] run found in
    the name; names without digits (e.g. "main") are their own head.

Resolution:
  - An exact branch or tag name short-circuits range logic.
  - A range matching the newest tag resolves to the latest branch alias,
    so "v6" serves the actively developed branch while v6 is current.
  - Any other range resolves to its highest matching tag. Prereleases
    always take part in range matching.
  - A query matching nothing is reported with ok == false and a nil error.

Usage example:

	refs := []string{
		"refs/heads/main",
		"refs/tags/v6.1.0", "refs/tags/v6.0.0",
		"refs/tags/v5.9.0", "refs/tags/v5.0.0",
	}

	list, _ := docref.Versions(refs)
	fmt.Println(list[0]) // {v6 v6.1.0 true}

	ref, ok, _ := docref.Resolve("v5", refs, "refs/heads/main")
	fmt.Println(ref, ok) // refs/tags/v5.9.0 true

	ref, ok, _ = docref.Resolve("v6", refs, "refs/heads/main")
	fmt.Println(ref, ok) // refs/heads/main true
*/
package docref
