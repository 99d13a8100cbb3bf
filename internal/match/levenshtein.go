package match

import "strings"

// Levenshtein returns the edit distance between a and b, counted in runes:
// the least number of single rune insertions, deletions or substitutions
// that turn one string into the other.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	// two rows of the matrix, sized by the shorter string
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity scores a and b between 0 (nothing in common) and 1 (equal),
// as one minus the edit distance over the longer length.
func Similarity(a, b string) float64 {
	n := max(len([]rune(a)), len([]rune(b)))
	if n == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(n)
}

// NormalizeKey folds a key for fuzzy comparison: lower case, with the
// separators _ - . and space removed.
func NormalizeKey(s string) string {
	return keyFolder.Replace(strings.ToLower(s))
}

var keyFolder = strings.NewReplacer("_", "", "-", "", ".", "", " ", "")
