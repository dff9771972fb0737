package simulate

import (
	"context"
	"math/rand"

	"github.com/Brunovsky/roadnet/core"
)

// Options configures a re-planning loop. The zero value is valid: a
// background context, the package-default RNG, and no step callback.
type Options struct {
	// Ctx, if non-nil, aborts the loop when ctx.Done() fires.
	Ctx context.Context

	// RNG seeds Graph.Regenerate between steps; nil uses the package
	// default (see internal/rng).
	RNG *rand.Rand

	// OnStep is called after each plan, before the source advances and
	// weights regenerate. path is the freshly planned route from the
	// current source to target. Returning false aborts the loop early,
	// as if the user had requested it; the loop returns with no error.
	OnStep func(step int, source, target *core.Vertex, path []*core.Vertex) bool
}

func (o *Options) context() context.Context {
	if o != nil && o.Ctx != nil {
		return o.Ctx
	}
	return context.Background()
}

func (o *Options) rng() *rand.Rand {
	if o != nil {
		return o.RNG
	}
	return nil
}

func (o *Options) onStep(step int, source, target *core.Vertex, path []*core.Vertex) bool {
	if o == nil || o.OnStep == nil {
		return true
	}
	return o.OnStep(step, source, target, path)
}
