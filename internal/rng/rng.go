// Package rng provides the default process-wide randomness source used
// when a caller does not inject its own *rand.Rand, following
// lvlath/builder's rng-injection idiom: production code always threads
// an explicit source, and this package exists only to supply one when
// the caller has not bothered to.
package rng

import (
	"math/rand"
	"sync"
	"time"
)

var (
	once    sync.Once
	process *rand.Rand
)

// Default returns a process-wide *rand.Rand seeded once from the
// current time, lazily initialized on first use.
func Default() *rand.Rand {
	once.Do(func() {
		process = rand.New(rand.NewSource(time.Now().UnixNano()))
	})
	return process
}
