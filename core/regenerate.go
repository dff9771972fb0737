package core

import (
	"math"
	"math/rand"

	"github.com/Brunovsky/roadnet/internal/rng"
)

func defaultRNG() *rand.Rand { return rng.Default() }

// Regenerate re-rolls every edge's mutable Weight by a bounded random
// walk: w' = ((rand mod w) - w/2 + w) mod length(e). This is the
// source's literal formula (spec.md design note), reproduced as is:
// the walk is not clamped, it wraps around modulo length(e). Since
// rand mod w >= 0, the pre-modulo value is at least w/2 > 0, so the new
// weight always lies in [0, length(e)).
//
// The one degenerate case the source leaves undefined is w == 0 (mod by
// zero); here that is read as "a stationary edge stays stationary":
// w' = 0.
//
// rng is the source of randomness; if nil, a package-level default
// *rand.Rand seeded from the current time is used, following the
// builder-config RNG-injection idiom (an explicit source makes the walk
// reproducible given a seed, never the global rand funcs directly).
func (g *Graph) Regenerate(rng *rand.Rand) {
	if rng == nil {
		rng = defaultRNG()
	}

	for _, e := range g.edges {
		e.weight = regenerateWeight(rng, e.weight, g.Length(e))
	}
}

// regenerateWeight applies the source's literal random-walk formula to a
// single edge's weight, isolated for direct testing.
func regenerateWeight(rng *rand.Rand, w, length float64) float64 {
	if w <= 0 {
		return 0
	}

	// rand mod w: rand is drawn as a non-negative integer on [0, ceil(w)),
	// matching the source's integral "rand() % (int)w" usage.
	bound := int64(math.Ceil(w))
	if bound <= 0 {
		bound = 1
	}
	randModW := float64(rng.Int63n(bound))

	w2 := randModW - w/2 + w

	if length <= 0 {
		return 0
	}
	// w2 >= w/2 > 0, so math.Mod wraps it into [0, length): a walk that
	// overshoots length(e) restarts near zero.
	return math.Mod(w2, length)
}
