// Package levenshtein computes edit distances between short strings.
package levenshtein

import "unicode/utf8"

// Distance returns the minimum number of single-rune insertions, deletions
// or substitutions needed to turn a into b. Comparison is case-sensitive and
// works on Unicode code points, not bytes. Each byte of invalid UTF-8 counts
// as its own symbol, equal only to the same byte.
//
// Only two rows of the DP table are kept, sized by the shorter input, so
// memory is O(min(len(a), len(b))).
func Distance(a, b string) int {
	ar, br := symbols(a), symbols(b)

	// Iterate rows over the longer string, columns over the shorter one.
	if len(ar) < len(br) {
		ar, br = br, ar
	}
	if len(br) == 0 {
		return len(ar)
	}

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ac := range ar {
		curr[0] = i + 1
		for j, bc := range br {
			sub := prev[j]
			if ac != bc {
				sub++
			}
			curr[j+1] = min(
				prev[j+1]+1, // delete from a
				curr[j]+1,   // insert into a
				sub,
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(br)]
}

// symbols decodes s into code points. Invalid bytes map to negative keys so
// that "\xff" and "\xfe" do not both collapse into utf8.RuneError.
func symbols(s string) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = -1 - rune(s[i])
		}
		out = append(out, r)
		i += size
	}
	return out
}
