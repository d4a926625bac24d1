// Package match implements the edit-distance primitives used for
// fuzzy matching. Distances are computed over runes, not bytes, so
// multi-byte scripts score the same way ASCII does.
package match

// Distance returns the Levenshtein distance between a and b: the
// minimum number of single-rune insertions, deletions, and
// substitutions needed to turn one into the other.
//
// Deterministic and pure. Distance(a, a) == 0, Distance(a, "") equals
// the rune length of a, and Distance(a, b) == Distance(b, a).
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two-row dynamic programming over the (len(ra)+1) x (len(rb)+1)
	// edit table.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min(prev[j-1], prev[j], curr[j-1]) + 1
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Similarity returns the normalized similarity between a and b:
// 1 - Distance/max(runeLen). Identical strings score 1, strings with
// nothing in common approach 0. Callers are expected to apply a
// threshold rather than clamp.
func Similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(Distance(a, b))/float64(maxLen)
}
