package docref

import "testing"

func TestParseDepth(t *testing.T) {
	t.Parallel()

	cases := map[string]Depth{
		"":        DepthAll, // default
		"latest":  DepthLatest,
		"l":       DepthLatest,
		"max":     DepthLatest,
		"0":       DepthLatest,
		"head":    DepthHead,
		"heads":   DepthHead,
		"h":       DepthHead,
		"group":   DepthHead,
		"1":       DepthHead,
		"all":     DepthAll,
		"*":       DepthAll,
		"2":       DepthAll,
		"unknown": DepthAll,  // fallback
		"  HeAd ": DepthHead, // case/space-insensitive
	}

	for in, want := range cases {
		if got := ParseDepth(in); got != want {
			t.Fatalf("ParseDepth(%q) = %v; want %v", in, got, want)
		}
	}
}

func TestDepthString(t *testing.T) {
	t.Parallel()

	cases := map[Depth]string{
		DepthAll:    "all",
		DepthHead:   "head",
		DepthLatest: "latest",
	}

	for d, want := range cases {
		if got := d.String(); got != want {
			t.Fatalf("Depth(%d).String() = %q; want %q", d, got, want)
		}
		if back := ParseDepth(d.String()); back != d {
			t.Fatalf("ParseDepth(%q) = %v; want %v", d.String(), back, d)
		}
	}
}

func TestParseSort(t *testing.T) {
	t.Parallel()

	cases := map[string]SortMode{
		"asc":        SortAsc,
		"ascending":  SortAsc,
		"UP":         SortAsc,
		"desc":       SortDesc,
		"descending": SortDesc,
		"down":       SortDesc,
		"":           SortDesc,
		"none":       SortDesc,
	}

	for in, want := range cases {
		if got := ParseSort(in); got != want {
			t.Fatalf("ParseSort(%q) = %v; want %v", in, got, want)
		}
	}

	if SortAsc.String() != "ascending" || SortDesc.String() != "descending" {
		t.Fatalf("unexpected SortMode strings: %q, %q", SortAsc, SortDesc)
	}
}
