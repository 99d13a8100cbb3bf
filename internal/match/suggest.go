package match

import (
	"cmp"
	"slices"
	"strings"
)

// MinSimilarity is the score a candidate needs to be suggested.
const MinSimilarity = 0.6

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates that look like key, best first.
// Candidates are compared after NormalizeKey, and command keys (containing
// "$") are never suggested. A limit below one means no limit.
func Suggest(key string, candidates []string, limit int) []string {
	norm := NormalizeKey(key)

	var found []scored
	for _, c := range candidates {
		if c == key || strings.Contains(c, "$") {
			continue
		}

		s := Similarity(norm, NormalizeKey(c))
		if s >= MinSimilarity {
			found = append(found, scored{name: c, score: s})
		}
	}

	slices.SortStableFunc(found, func(a, b scored) int {
		if a.score != b.score {
			return cmp.Compare(b.score, a.score)
		}

		return cmp.Compare(a.name, b.name)
	})

	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}

	out := make([]string, len(found))
	for i, f := range found {
		out[i] = f.name
	}

	return out
}
