package editdist_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Brunovsky/roadnet/editdist"
)

type EditDistanceSuite struct {
	suite.Suite
}

func TestEditDistanceSuite(t *testing.T) {
	suite.Run(t, new(EditDistanceSuite))
}

func randomString(rng *rand.Rand, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

// TestScenario5Levenshtein is spec.md §8 scenario 5.
func (s *EditDistanceSuite) TestScenario5Levenshtein() {
	s.Equal(3, editdist.Levenshtein("sitting", "kitten", editdist.FullMatrix))
	s.Equal(3, editdist.Levenshtein("sitting", "kitten", editdist.Rolling))
	s.Equal(3, editdist.Levenshtein("sunday", "saturday", editdist.FullMatrix))
	s.Equal(3, editdist.Levenshtein("sunday", "saturday", editdist.Rolling))
}

func (s *EditDistanceSuite) TestHammingRequiresEqualLength() {
	d, err := editdist.Hamming("abc", "abd")
	s.NoError(err)
	s.Equal(1, d)

	_, err = editdist.Hamming("abc", "ab")
	s.ErrorIs(err, editdist.ErrLengthMismatch)
}

func (s *EditDistanceSuite) TestIdentities() {
	words := []string{"", "a", "abc", "roadnet", "mississippi"}
	for _, w := range words {
		s.Equal(0, editdist.Levenshtein(w, w, editdist.FullMatrix), "d(%q,%q)", w, w)
		s.Equal(len(w), editdist.Levenshtein(w, "", editdist.FullMatrix), "d(%q,\"\")", w)
		s.Equal(len(w), editdist.Levenshtein("", w, editdist.FullMatrix), "d(\"\",%q)", w)

		s.Equal(0, editdist.RestrictedDamerau(w, w, editdist.FullMatrix))
		s.Equal(0, editdist.Damerau(w, w))
	}
}

func (s *EditDistanceSuite) TestLevenshteinIsSymmetric() {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 30; trial++ {
		a := randomString(rng, "abcde", rng.Intn(10))
		b := randomString(rng, "abcde", rng.Intn(10))
		s.Equal(
			editdist.Levenshtein(a, b, editdist.FullMatrix),
			editdist.Levenshtein(b, a, editdist.FullMatrix),
			"d(%q,%q) != d(%q,%q)", a, b, b, a,
		)
	}
}

func (s *EditDistanceSuite) TestMatrixAgreesWithRolling() {
	rng := rand.New(rand.NewSource(23))
	for trial := 0; trial < 40; trial++ {
		a := randomString(rng, "ab", rng.Intn(12))
		b := randomString(rng, "ab", rng.Intn(12))

		s.Equal(
			editdist.Levenshtein(a, b, editdist.FullMatrix),
			editdist.Levenshtein(a, b, editdist.Rolling),
			"levenshtein matrix/rolling disagree on (%q,%q)", a, b,
		)
		s.Equal(
			editdist.RestrictedDamerau(a, b, editdist.FullMatrix),
			editdist.RestrictedDamerau(a, b, editdist.Rolling),
			"restricted-DL matrix/rolling disagree on (%q,%q)", a, b,
		)
		s.Equal(
			editdist.FuzzyLevenshtein(a, b, editdist.FullMatrix),
			editdist.FuzzyLevenshtein(a, b, editdist.Rolling),
			"fuzzy levenshtein matrix/rolling disagree on (%q,%q)", a, b,
		)
		s.Equal(
			editdist.FuzzyRestrictedDamerau(a, b, editdist.FullMatrix),
			editdist.FuzzyRestrictedDamerau(a, b, editdist.Rolling),
			"fuzzy restricted-DL matrix/rolling disagree on (%q,%q)", a, b,
		)
	}
}

func (s *EditDistanceSuite) TestTriangleInequality() {
	rng := rand.New(rand.NewSource(31))
	for trial := 0; trial < 40; trial++ {
		a := randomString(rng, "abc", rng.Intn(8))
		b := randomString(rng, "abc", rng.Intn(8))
		c := randomString(rng, "abc", rng.Intn(8))

		ab := editdist.RestrictedDamerau(a, b, editdist.FullMatrix)
		bc := editdist.RestrictedDamerau(b, c, editdist.FullMatrix)
		ac := editdist.RestrictedDamerau(a, c, editdist.FullMatrix)
		s.LessOrEqual(ac, ab+bc, "restricted-DL triangle inequality: (%q,%q,%q)", a, b, c)

		dab := editdist.Damerau(a, b)
		dbc := editdist.Damerau(b, c)
		dac := editdist.Damerau(a, c)
		s.LessOrEqual(dac, dab+dbc, "full-DL triangle inequality: (%q,%q,%q)", a, b, c)
	}
}

// TestTranspositionIsCheaperThanTwoSubstitutions pins the one behavior
// that actually distinguishes Damerau variants from plain Levenshtein.
func (s *EditDistanceSuite) TestTranspositionIsCheaperThanTwoSubstitutions() {
	s.Equal(1, editdist.RestrictedDamerau("ab", "ba", editdist.FullMatrix))
	s.Equal(1, editdist.RestrictedDamerau("ab", "ba", editdist.Rolling))
	s.Equal(1, editdist.Damerau("ab", "ba"))
	s.Equal(2, editdist.Levenshtein("ab", "ba", editdist.FullMatrix))
}

func (s *EditDistanceSuite) TestFuzzyLessOrEqualToFullDistanceAtBestAlignment() {
	text := "xxxkittenxxx"
	pattern := "sitting"

	fuzzy := editdist.FuzzyLevenshtein(text, pattern, editdist.FullMatrix)

	best := -1
	for i := 0; i+len(pattern) <= len(text); i++ {
		d := editdist.Levenshtein(text[i:i+len(pattern)], pattern, editdist.FullMatrix)
		if best < 0 || d < best {
			best = d
		}
	}

	s.LessOrEqual(fuzzy, best)
}

func (s *EditDistanceSuite) TestFuzzyDamerauAgreesWithMatrixAtBestAlignment() {
	text := "thequickbrownfox"
	pattern := "quikc"

	fuzzy := editdist.FuzzyDamerau(text, pattern)

	best := -1
	for length := 1; length <= len(text); length++ {
		for i := 0; i+length <= len(text); i++ {
			d := editdist.Damerau(text[i:i+length], pattern)
			if best < 0 || d < best {
				best = d
			}
		}
	}

	s.Equal(best, fuzzy)
}
