package pathfind

import (
	"github.com/Brunovsky/roadnet/core"
	"github.com/Brunovsky/roadnet/heap"
)

// costFn computes the cost of stepping from u along edge to its target;
// DijkstraLateExit/DijkstraEarlyExit/AStar use Euclidean distance,
// DijkstraByWeight uses the edge's mutable Weight.
type costFn func(g *core.Graph, u *core.Vertex, edge *core.Edge) float64

// priorityFn computes the heap priority for v given its new cost;
// plain Dijkstra uses the cost itself, A* adds the heuristic distance
// to target.
type priorityFn func(g *core.Graph, v, target *core.Vertex, newCost float64) float64

// dijkstraRun is the shared relax-loop behind DijkstraLateExit,
// DijkstraEarlyExit, AStar and DijkstraByWeight: only the cost and
// priority functions, and whether to exit early on reaching target,
// differ between them.
func dijkstraRun(g *core.Graph, source, target *core.Vertex, cost costFn, priority priorityFn, earlyExit bool) {
	source.SetPath(source)
	source.SetCost(0)

	pq := heap.New[*core.Vertex](func(a, b *core.Vertex) bool {
		return a.Priority() < b.Priority()
	})
	pq.Insert(source)

	for !pq.Empty() {
		u := pq.ExtractMin()
		if earlyExit && u == target {
			break
		}

		for _, edge := range u.Out() {
			v := edge.Target
			if v == source {
				continue
			}

			newCost := u.Cost() + cost(g, u, edge)

			switch {
			case v.Path() == nil:
				v.SetCost(newCost)
				v.SetPriority(priority(g, v, target, newCost))
				v.SetPath(u)
				pq.Insert(v)
			case newCost < v.Cost():
				v.SetCost(newCost)
				v.SetPriority(priority(g, v, target, newCost))
				v.SetPath(u)
				pq.DecreaseKey(v)
			}
		}
	}
}

func euclideanCost(g *core.Graph, u *core.Vertex, edge *core.Edge) float64 {
	return g.Distance(u, edge.Target)
}

func costPriority(_ *core.Graph, _, _ *core.Vertex, newCost float64) float64 {
	return newCost
}

// DijkstraLateExit computes optimal costs to every vertex reachable from
// source; it does not break early on reaching target, so it explores
// extra nodes beyond it. target.Cost() after this call is the optimal
// source-to-target cost whenever target is reachable.
func DijkstraLateExit(g *core.Graph, source, target *core.Vertex) {
	dijkstraRun(g, source, target, euclideanCost, costPriority, false)
}

// DijkstraEarlyExit is DijkstraLateExit but stops as soon as target is
// extracted from the queue. Optimal because Euclidean edge costs are
// non-negative.
func DijkstraEarlyExit(g *core.Graph, source, target *core.Vertex) {
	dijkstraRun(g, source, target, euclideanCost, costPriority, true)
}
