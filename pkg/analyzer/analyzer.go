// Package analyzer contains the heuristic analyzers of the pipeline. Each
// analyzer is a pure function over (text, knowledge snapshot): no I/O, no
// error paths, deterministic for identical input.
package analyzer

import "strings"

// matchTerms returns the distinct terms present in lower (case-insensitive
// substring semantics; lower must already be lowercased).
func matchTerms(lower string, terms []string) []string {
	var hits []string
	for _, term := range terms {
		if strings.Contains(lower, term) {
			hits = append(hits, term)
		}
	}
	return hits
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
