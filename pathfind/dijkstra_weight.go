package pathfind

import "github.com/Brunovsky/roadnet/core"

// DijkstraByWeight is DijkstraEarlyExit but costs come from each edge's
// mutable Weight instead of Euclidean distance; it is the algorithm the
// simulation driver re-invokes as weights drift.
func DijkstraByWeight(g *core.Graph, source, target *core.Vertex) {
	weightCost := func(_ *core.Graph, _ *core.Vertex, edge *core.Edge) float64 {
		return edge.Weight()
	}
	dijkstraRun(g, source, target, weightCost, costPriority, true)
}
