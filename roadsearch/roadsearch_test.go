package roadsearch_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Brunovsky/roadnet/core"
	"github.com/Brunovsky/roadnet/editdist"
	"github.com/Brunovsky/roadnet/roadsearch"
	"github.com/Brunovsky/roadnet/strmatch"
)

func roadGraph(t require.TestingT, names ...string) *core.Graph {
	g := core.NewGraph(1000, 1000, 1)
	for i, name := range names {
		r := core.NewRoad(i+1, name, false)
		require.NoError(t, g.AddRoad(r))
	}
	return g
}

func roadNames(roads []*core.Road) []string {
	out := make([]string, len(roads))
	for i, r := range roads {
		out[i] = r.Name
	}
	return out
}

type RoadSearchSuite struct {
	suite.Suite
}

func TestRoadSearchSuite(t *testing.T) {
	suite.Run(t, new(RoadSearchSuite))
}

// TestScenario6FuzzyRoadName is spec.md §8 scenario 6: a fuzzy query
// ties between two road names each one edit away from it. "Rua do Sol"
// and "Rua da Sul" are both a single substitution from "Rua do Sul";
// "Avenida Central" is unrelated and must not survive.
func (s *RoadSearchSuite) TestScenario6FuzzyRoadName() {
	g := roadGraph(s.T(), "Rua do Sol", "Rua da Sul", "Avenida Central")

	roads, err := roadsearch.ByFuzzyDistance(g, "Rua do Sul", func(text, pattern string) int {
		return editdist.FuzzyLevenshtein(text, pattern, editdist.FullMatrix)
	})

	s.NoError(err)
	s.ElementsMatch([]string{"Rua do Sol", "Rua da Sul"}, roadNames(roads))
}

func (s *RoadSearchSuite) TestExactFindsSubstringMatches() {
	g := roadGraph(s.T(), "Avenida Brasil", "Rua Brasil", "Rua Portugal")

	matcher := strmatch.NewBoyerMoore("Brasil", strmatch.BadCharMapVariant)
	roads, err := roadsearch.Exact(g, matcher)

	s.NoError(err)
	s.ElementsMatch([]string{"Avenida Brasil", "Rua Brasil"}, roadNames(roads))
}

func (s *RoadSearchSuite) TestExactReturnsEmptyMatchWhenNothingFound() {
	g := roadGraph(s.T(), "Avenida Brasil")

	matcher := strmatch.NewKnuthMorrisPratt("Germany")
	_, err := roadsearch.Exact(g, matcher)

	s.ErrorIs(err, roadsearch.ErrEmptyMatch)
}

func (s *RoadSearchSuite) TestByDistancePicksSingleClosestRoad() {
	g := roadGraph(s.T(), "Rua do Sol", "Avenida Paulista", "Rua das Flores")

	roads, err := roadsearch.ByDistance(g, "Rua do Sol", func(a, b string) int {
		return editdist.Levenshtein(a, b, editdist.FullMatrix)
	})

	s.NoError(err)
	s.Len(roads, 1)
	s.Equal("Rua do Sol", roads[0].Name)
}

func (s *RoadSearchSuite) TestByDistanceKeepsTiesAndClearsOnStrictlySmaller() {
	g := roadGraph(s.T(), "abcde", "abcdf", "abczzzzz")

	// "abcde" and "abcdf" are both distance 1 from "abcdx"; "abczzzzz" is
	// much further away and must not survive in the result.
	roads, err := roadsearch.ByDistance(g, "abcdx", func(a, b string) int {
		return editdist.Levenshtein(a, b, editdist.FullMatrix)
	})

	s.NoError(err)
	s.ElementsMatch([]string{"abcde", "abcdf"}, roadNames(roads))
}

func (s *RoadSearchSuite) TestEmptyGraphIsEmptyMatch() {
	g := roadGraph(s.T())

	_, err := roadsearch.ByDistance(g, "anything", func(a, b string) int {
		return editdist.Levenshtein(a, b, editdist.FullMatrix)
	})

	s.ErrorIs(err, roadsearch.ErrEmptyMatch)
}

func (s *RoadSearchSuite) TestByFuzzyDistanceFindsSubstringInLongerName() {
	g := roadGraph(s.T(), "Rodovia Marginal Sul Extensao Leste", "Rua Norte")

	roads, err := roadsearch.ByFuzzyDistance(g, "marginal sul", func(text, pattern string) int {
		return editdist.FuzzyLevenshtein(strings.ToLower(text), pattern, editdist.Rolling)
	})

	s.NoError(err)
	s.Len(roads, 1)
	s.Equal("Rodovia Marginal Sul Extensao Leste", roads[0].Name)
}
