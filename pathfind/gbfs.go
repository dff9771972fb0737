package pathfind

import (
	"github.com/Brunovsky/roadnet/core"
	"github.com/Brunovsky/roadnet/heap"
)

// GreedyBestFirst expands the vertex whose priority is the straight-line
// distance from the *current* vertex (not the target) to the neighbor
// being discovered — not an admissible heuristic, so the path it finds
// is not guaranteed optimal. It never calls DecreaseKey: once a vertex
// is discovered its priority is final.
func GreedyBestFirst(g *core.Graph, source, target *core.Vertex) {
	source.SetPath(source)

	pq := heap.New[*core.Vertex](func(a, b *core.Vertex) bool {
		return a.Priority() < b.Priority()
	})
	pq.Insert(source)

	for !pq.Empty() {
		u := pq.ExtractMin()
		if u == target {
			break
		}

		for _, edge := range u.Out() {
			v := edge.Target
			if v.Path() != nil {
				continue
			}

			v.SetPriority(g.Distance(v, u))
			v.SetPath(u)
			pq.Insert(v)
		}
	}
}
