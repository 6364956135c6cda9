package docref

import "strings"

// toTok normalizes a free-form string into a lowercased token.
func toTok(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// capRecs returns in[:min(limit, len(in))] if limit>0; otherwise in.
func capRecs(in []rec, limit int) []rec {
	if limit > 0 && limit < len(in) {
		return in[:limit]
	}

	return in
}

// capStrings returns out[:min(limit, len(out))] if limit>0; otherwise out.
func capStrings(out []string, limit int) []string {
	if limit > 0 && limit < len(out) {
		return out[:limit]
	}

	return out
}
