package roadsearch

import "github.com/Brunovsky/roadnet/core"

// ExactMatcher is satisfied by a pattern-preprocessed exact matcher,
// e.g. strmatch.NewBoyerMoore(query, variant) or
// strmatch.NewKnuthMorrisPratt(query): the query is compiled once and
// reused against every road name.
type ExactMatcher interface {
	Search(text string) []int
}

// Exact collects every road whose name contains at least one occurrence
// of matcher's pattern.
func Exact(g *core.Graph, matcher ExactMatcher) ([]*core.Road, error) {
	var found []*core.Road
	for _, r := range g.Roads() {
		if len(matcher.Search(r.Name)) > 0 {
			found = append(found, r)
		}
	}
	if len(found) == 0 {
		return nil, ErrEmptyMatch
	}
	return found, nil
}

// ByDistance collects the roads whose name attains the minimum
// distance(query, road.Name) over all roads in g, using the given
// full-string distance (e.g. editdist.Levenshtein curried with a
// MemoryMode). Ties are kept; a strictly smaller distance clears them.
func ByDistance(g *core.Graph, query string, distance func(a, b string) int) ([]*core.Road, error) {
	return collectMinimum(g.Roads(), func(r *core.Road) int {
		return distance(query, r.Name)
	})
}

// ByFuzzyDistance is ByDistance but scores each road by the distance
// from query to the best-matching substring of road.Name, using a fuzzy
// matcher such as editdist.FuzzyLevenshtein.
func ByFuzzyDistance(g *core.Graph, query string, fuzzy func(text, pattern string) int) ([]*core.Road, error) {
	return collectMinimum(g.Roads(), func(r *core.Road) int {
		return fuzzy(r.Name, query)
	})
}

// collectMinimum scans roads keeping the running-minimum-scoring set:
// a strictly smaller score clears the accumulator and restarts it, an
// equal score joins it.
func collectMinimum(roads []*core.Road, score func(*core.Road) int) ([]*core.Road, error) {
	var best []*core.Road
	bestScore := 0

	for _, r := range roads {
		sc := score(r)
		switch {
		case best == nil || sc < bestScore:
			best = []*core.Road{r}
			bestScore = sc
		case sc == bestScore:
			best = append(best, r)
		}
	}

	if len(best) == 0 {
		return nil, ErrEmptyMatch
	}
	return best, nil
}
