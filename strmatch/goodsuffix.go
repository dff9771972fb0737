package strmatch

// goodSuffixRule is the classic two-phase Boyer-Moore good-suffix
// preprocessing, producing a shift[0..P] table: shift[index] gives the
// slide distance on a mismatch at pattern position index (or shift[0]
// on a full match).
type goodSuffixRule struct {
	shift []int
}

// newGoodSuffixRule builds the good-suffix table for pattern.
func newGoodSuffixRule(pattern string) goodSuffixRule {
	P := len(pattern)
	lookup := make([]int, P+1)
	f := make([]int, P+1)

	index, border := P, P+1
	f[index] = border

	for index > 0 {
		for border <= P && pattern[index-1] != pattern[border-1] {
			if lookup[border] == 0 {
				lookup[border] = border - index
			}
			border = f[border]
		}
		index--
		border--
		f[index] = border
	}

	for index, border = 0, f[0]; index <= P; index++ {
		if lookup[index] == 0 {
			lookup[index] = border
		}
		if index == border {
			border = f[border]
		}
	}

	return goodSuffixRule{shift: lookup}
}

func (g goodSuffixRule) Shift(index int) int {
	if index >= len(g.shift) {
		return index + 1
	}
	return g.shift[index]
}
