package strmatch

// KnuthMorrisPratt is a preprocessed pattern carrying the failure table
// lookup[0..P]: lookup[0] = -1, and lookup[index] is the length of the
// longest proper border of pattern[0:index] usable as a fallback on
// mismatch.
type KnuthMorrisPratt struct {
	pattern string
	lookup  []int
}

// NewKnuthMorrisPratt builds the failure table for pattern using the
// optimized construction: lookup[index] is copied from lookup[border]
// whenever pattern[index] == pattern[border], avoiding a wasted
// comparison the plain construction would repeat during search.
func NewKnuthMorrisPratt(pattern string) *KnuthMorrisPratt {
	P := len(pattern)
	lookup := make([]int, P+1)
	if P == 0 {
		return &KnuthMorrisPratt{pattern: pattern, lookup: lookup}
	}

	lookup[0] = -1
	border := 0

	for index := 1; index < P; index++ {
		if pattern[index] == pattern[border] {
			lookup[index] = lookup[border]
		} else {
			lookup[index] = border
			for {
				border = lookup[border]
				if border < 0 || pattern[index] == pattern[border] {
					break
				}
			}
		}
		border++
	}

	lookup[P] = border

	return &KnuthMorrisPratt{pattern: pattern, lookup: lookup}
}

// Pattern returns the preprocessed pattern.
func (k *KnuthMorrisPratt) Pattern() string { return k.pattern }

func (k *KnuthMorrisPratt) lookupAt(index int) int { return k.lookup[index] }

func (k *KnuthMorrisPratt) shift(index int) int { return index - k.lookup[index] }

// Search runs Knuth-Morris-Pratt: O(T+P), never re-examining a text
// byte already consumed by a previous comparison.
func (k *KnuthMorrisPratt) Search(text string) []int {
	P, T := len(k.pattern), len(text)
	var match []int
	if P == 0 {
		return match
	}

	i, j := 0, 0
	for i <= T-P {
		for j < P && text[i+j] == k.pattern[j] {
			j++
		}

		if j == P {
			match = append(match, i)
			i += k.shift(P)
			j = k.lookupAt(P)
		} else {
			i += k.shift(j)
			j = k.lookupAt(j)
		}

		if j < 0 {
			j = 0
		}
	}

	return match
}
