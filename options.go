package docref

import "regexp"

// Options configures the version list pipeline.
type Options struct {
	// ReleaseOnly drops prerelease tags (X.Y.Z-pre). Build metadata is kept.
	ReleaseOnly bool

	// Include positive regex filter applied to the bare tag name; keep only tags that match.
	Include *regexp.Regexp

	// Exclude negative regex filter applied to the bare tag name; drop tags that match.
	Exclude *regexp.Regexp

	// Depth controls aggregation (all/head/latest).
	Depth Depth

	// Sort defines the output ordering. Zero value is newest first.
	Sort SortMode

	// Limit caps the output to the newest N entries (<=0 = unlimited).
	// The latest entry always survives the cap.
	Limit int
}

// Depth controls aggregation granularity of the version list.
type Depth int

const (
	// DepthAll keeps every valid tag.
	DepthAll Depth = iota
	// DepthHead keeps the newest tag per head (v6, v0.4, ...).
	DepthHead
	// DepthLatest keeps a single latest tag overall.
	DepthLatest
)

// String returns a stable textual representation for Depth.
func (d Depth) String() string {
	switch d {
	case DepthLatest:
		return "latest"
	case DepthHead:
		return "head"
	default:
		return "all"
	}
}

// ParseDepth maps free-form tokens to Depth.
// Supported aliases (case-insensitive):
//
//	latest: "latest","l","max","0"
//	head:   "head","heads","h","group","1"
//	all:    "all","a","any","*","2"
func ParseDepth(s string) Depth {
	switch toTok(s) {
	case "latest", "l", "max", "0":
		return DepthLatest

	case "head", "heads", "h", "group", "1":
		return DepthHead

	case "all", "a", "any", "*", "2":
		return DepthAll

	default:
		return DepthAll
	}
}

// SortMode controls the final output ordering.
type SortMode uint8

const (
	// SortDesc sorts newest first.
	SortDesc SortMode = iota
	// SortAsc sorts oldest first.
	SortAsc
)

// String returns a stable textual representation for SortMode.
func (m SortMode) String() string {
	if m == SortAsc {
		return "ascending"
	}

	return "descending"
}

// ParseSort maps strings to SortMode.
// Supported aliases:
//
//	asc:  "asc","ascending","inc","increase","up"
//	desc: "desc","descending","dec","decrease","down"
//
// Anything else yields SortDesc.
func ParseSort(s string) SortMode {
	switch toTok(s) {
	case "asc", "ascending", "inc", "increase", "up":
		return SortAsc

	default:
		return SortDesc
	}
}
