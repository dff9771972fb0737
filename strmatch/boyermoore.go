package strmatch

// BadCharVariant selects which BadCharRule implementation NewBoyerMoore
// preprocesses with.
type BadCharVariant int

const (
	// BadCharMapVariant is the default: O(P^2) preprocessing, O(E*P)
	// space, O(1) lookup.
	BadCharMapVariant BadCharVariant = iota
	// BadCharTableVariant: O(P^2) preprocessing, O(256*P) space, O(1) lookup.
	BadCharTableVariant
	// BadCharListVariant: O(P) preprocessing and space, O(1) but coarser lookup.
	BadCharListVariant
)

// BoyerMoore is a preprocessed pattern ready for Search/SearchGalil: it
// owns a bad-character rule and a good-suffix rule and exposes the
// combined mismatch/match shift Boyer-Moore's search loop consumes.
type BoyerMoore struct {
	pattern string
	bad     BadCharRule
	good    goodSuffixRule
}

// NewBoyerMoore preprocesses pattern with the chosen bad-character rule
// variant and the standard good-suffix rule.
func NewBoyerMoore(pattern string, variant BadCharVariant) *BoyerMoore {
	var bad BadCharRule
	switch variant {
	case BadCharTableVariant:
		bad = NewBadCharTable(pattern)
	case BadCharListVariant:
		bad = NewBadCharList(pattern)
	default:
		bad = NewBadCharMap(pattern)
	}

	return &BoyerMoore{
		pattern: pattern,
		bad:     bad,
		good:    newGoodSuffixRule(pattern),
	}
}

// Pattern returns the preprocessed pattern.
func (bm *BoyerMoore) Pattern() string { return bm.pattern }

func (bm *BoyerMoore) badShift(index int, textChar byte) int {
	return bm.bad.Shift(index, textChar)
}

func (bm *BoyerMoore) goodShift(index int) int {
	return bm.good.Shift(index)
}

func (bm *BoyerMoore) mismatchShift(index int, textChar byte) int {
	bad := bm.badShift(index, textChar)
	good := bm.goodShift(index + 1)
	if bad > good {
		return bad
	}
	return good
}

func (bm *BoyerMoore) matchShift() int {
	return bm.goodShift(0)
}

// Search runs Boyer-Moore without the Galil rule: O(T*P) worst case,
// O(T/P) best case.
func (bm *BoyerMoore) Search(text string) []int {
	P, T := len(bm.pattern), len(text)
	var match []int
	if P == 0 {
		return match
	}

	for i := 0; i+P <= T; {
		j := P - 1
		for j >= 0 && text[i+j] == bm.pattern[j] {
			j--
		}

		if j < 0 {
			match = append(match, i)
			i += bm.matchShift()
		} else {
			i += bm.mismatchShift(j, text[i+j])
		}
	}

	return match
}

// SearchGalil runs Boyer-Moore with the Galil rule: after a match, the
// first P-1-shift bytes of the next window (part of the previous
// match) are known to match, so comparisons only need to go down to
// that bound instead of 0, guaranteeing O(T) worst case. The bound is
// never below 0. A plain mismatch resets the bound, since nothing is
// known about the next window in that case.
func (bm *BoyerMoore) SearchGalil(text string) []int {
	P, T := len(bm.pattern), len(text)
	var match []int
	if P == 0 {
		return match
	}

	galil := 0
	for i := 0; i+P <= T; {
		j := P - 1
		for j >= galil && text[i+j] == bm.pattern[j] {
			j--
		}

		if j < galil {
			match = append(match, i)
			shift := bm.matchShift()
			galil = P - 1 - shift
			if galil < 0 {
				galil = 0
			}
			i += shift
		} else {
			i += bm.mismatchShift(j, text[i+j])
			galil = 0
		}
	}

	return match
}
