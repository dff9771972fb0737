package strmatch_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Brunovsky/roadnet/strmatch"
)

type ExactSearchSuite struct {
	suite.Suite
}

func TestExactSearchSuite(t *testing.T) {
	suite.Run(t, new(ExactSearchSuite))
}

func allVariants(text, pattern string) map[string][]int {
	bmTable := strmatch.NewBoyerMoore(pattern, strmatch.BadCharTableVariant)
	bmMap := strmatch.NewBoyerMoore(pattern, strmatch.BadCharMapVariant)
	bmList := strmatch.NewBoyerMoore(pattern, strmatch.BadCharListVariant)

	return map[string][]int{
		"naive":          strmatch.Naive(text, pattern),
		"bm-table":       bmTable.Search(text),
		"bm-map":         bmMap.Search(text),
		"bm-list":        bmList.Search(text),
		"bm-table-galil": bmTable.SearchGalil(text),
		"bm-map-galil":   bmMap.SearchGalil(text),
		"bm-list-galil":  bmList.SearchGalil(text),
		"kmp":            strmatch.NewKnuthMorrisPratt(pattern).Search(text),
	}
}

// TestScenario3KMPExact is spec.md §8 scenario 3.
func (s *ExactSearchSuite) TestScenario3KMPExact() {
	kmp := strmatch.NewKnuthMorrisPratt("abcaby")
	s.Equal([]int{6}, kmp.Search("abxabcabcaby"))
}

// TestScenario4BoyerMooreAgreesWithNaive is spec.md §8 scenario 4: a
// repetitive text/pattern pair with overlapping occurrences, exercising
// multiple matches across every Boyer-Moore variant.
func (s *ExactSearchSuite) TestScenario4BoyerMooreAgreesWithNaive() {
	text := "abbabababaababbababbababbabab"
	pattern := "abbabab"

	results := allVariants(text, pattern)
	want := results["naive"]
	s.NotEmpty(want)

	for name, got := range results {
		s.Equal(want, got, "variant %s disagreed with naive", name)
	}
}

func (s *ExactSearchSuite) TestAllVariantsAgreeOnRandomInputs() {
	rng := rand.New(rand.NewSource(7))
	alphabet := "ab"

	randomString := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(b)
	}

	for trial := 0; trial < 50; trial++ {
		text := randomString(40)
		pattern := randomString(1 + rng.Intn(6))

		results := allVariants(text, pattern)
		want := results["naive"]

		for name, got := range results {
			s.Equal(want, got, "trial %d: variant %s disagreed with naive (text=%q pattern=%q)", trial, name, text, pattern)
		}

		for _, idx := range want {
			s.Equal(pattern, text[idx:idx+len(pattern)])
		}
	}
}

func (s *ExactSearchSuite) TestNoMatchReturnsEmpty() {
	s.Empty(strmatch.Naive("aaaa", "b"))
	s.Empty(strmatch.NewBoyerMoore("b", strmatch.BadCharMapVariant).Search("aaaa"))
	s.Empty(strmatch.NewKnuthMorrisPratt("b").Search("aaaa"))
}

func (s *ExactSearchSuite) TestEmptyPatternMatchesNothing() {
	s.Empty(strmatch.Naive("abc", ""))
	s.Empty(strmatch.NewBoyerMoore("", strmatch.BadCharMapVariant).Search("abc"))
	s.Empty(strmatch.NewKnuthMorrisPratt("").Search("abc"))
}

// TestGalilMatchesPlainBoyerMoore pins the Galil-rule disposition: on a
// highly repetitive pattern where the skip actually triggers, the
// result list must still match plain Boyer-Moore exactly.
func (s *ExactSearchSuite) TestGalilMatchesPlainBoyerMoore() {
	text := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	pattern := "aaaaaaaaaa"

	bm := strmatch.NewBoyerMoore(pattern, strmatch.BadCharMapVariant)
	s.Equal(bm.Search(text), bm.SearchGalil(text))
	s.NotEmpty(bm.Search(text))
}
