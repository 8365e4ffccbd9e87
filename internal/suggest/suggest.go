// Package suggest ranks known names against a misspelled input so that
// lookup failures can print a "did you mean" list. The scorer is a pure
// function with no shared state; the catalog calls it for unit names and
// substance names alike.
package suggest

import "sort"

// Distance scores the similarity of two strings. The shorter string slides
// over the longer one; at each offset the positional mismatches are counted,
// and the minimum over all offsets plus the length difference is returned.
// Identical strings score 0.
func Distance(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	diff := len(b) - len(a)
	if len(a) == 0 {
		return diff
	}

	best := len(a)
	for offset := 0; offset <= diff; offset++ {
		mismatches := 0
		for i := 0; i < len(a); i++ {
			if a[i] != b[offset+i] {
				mismatches++
			}
		}
		if mismatches < best {
			best = mismatches
		}
	}

	return best + diff
}

// Rank returns the candidates sorted by ascending Distance to input, closest
// first. Ties break lexicographically so the ordering is deterministic.
func Rank(input string, candidates []string) []string {
	ranked := make([]string, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		di, dj := Distance(input, ranked[i]), Distance(input, ranked[j])
		if di != dj {
			return di < dj
		}
		return ranked[i] < ranked[j]
	})

	return ranked
}
