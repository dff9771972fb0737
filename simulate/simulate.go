package simulate

import (
	"github.com/Brunovsky/roadnet/core"
	"github.com/Brunovsky/roadnet/pathfind"
)

func owns(g *core.Graph, v *core.Vertex) bool {
	got, ok := g.GetVertex(v.ID)
	return ok && got == v
}

// RunEdgeStep drives a commuter one hop per iteration: plan with
// Dijkstra-by-weight, advance source to the second vertex of the
// freshly planned path, regenerate every edge weight, repeat until
// source reaches target. It returns the number of hops taken.
func RunEdgeStep(g *core.Graph, source, target *core.Vertex, opts *Options) (int, error) {
	if !owns(g, source) || !owns(g, target) {
		return 0, ErrVertexNotFound
	}

	ctx := opts.context()
	steps := 0

	for source != target {
		select {
		case <-ctx.Done():
			return steps, ctx.Err()
		default:
		}

		g.Clear()
		pathfind.DijkstraByWeight(g, source, target)
		path := pathfind.GetPath(source, target)
		if path == nil {
			return steps, ErrUnreachable
		}

		if !opts.onStep(steps, source, target, path) {
			return steps, nil
		}

		source = path[1]
		g.Regenerate(opts.rng())
		steps++
	}

	return steps, nil
}

// RunRoadStep drives a commuter one road at a time: plan with
// Dijkstra-by-weight, then advance source to the first vertex along the
// path where the road changes from the one leaving the current source
// (or to target, if the whole path lies on a single road); regenerate,
// repeat until source reaches target. It returns the number of road
// transitions taken.
func RunRoadStep(g *core.Graph, source, target *core.Vertex, opts *Options) (int, error) {
	if !owns(g, source) || !owns(g, target) {
		return 0, ErrVertexNotFound
	}

	ctx := opts.context()
	steps := 0

	for source != target {
		select {
		case <-ctx.Done():
			return steps, ctx.Err()
		default:
		}

		g.Clear()
		pathfind.DijkstraByWeight(g, source, target)
		path := pathfind.GetPath(source, target)
		if path == nil {
			return steps, ErrUnreachable
		}

		if !opts.onStep(steps, source, target, path) {
			return steps, nil
		}

		next, err := roadTransitionVertex(g, path)
		if err != nil {
			return steps, err
		}

		source = next
		g.Regenerate(opts.rng())
		steps++
	}

	return steps, nil
}

// roadTransitionVertex scans path for the first edge whose road differs
// from the road of path[0]->path[1]; it returns the source endpoint of
// that edge, or the path's final vertex if every edge shares one road.
func roadTransitionVertex(g *core.Graph, path []*core.Vertex) (*core.Vertex, error) {
	first, ok := g.GetEdgeBetween(path[0].ID, path[1].ID)
	if !ok {
		return nil, ErrUnreachable
	}
	startRoad := first.Road

	for i := 1; i < len(path)-1; i++ {
		e, ok := g.GetEdgeBetween(path[i].ID, path[i+1].ID)
		if !ok {
			return nil, ErrUnreachable
		}
		if e.Road != startRoad {
			return path[i], nil
		}
	}

	return path[len(path)-1], nil
}
