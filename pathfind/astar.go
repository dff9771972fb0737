package pathfind

import "github.com/Brunovsky/roadnet/core"

// AStar is DijkstraEarlyExit with priority = cost + straight-line
// distance from the candidate vertex to target. The heuristic is
// admissible (Euclidean distance never overestimates the true remaining
// cost, which is itself a sum of Euclidean edge lengths), so AStar's
// result is optimal, same as Dijkstra.
func AStar(g *core.Graph, source, target *core.Vertex) {
	priority := func(g *core.Graph, v, target *core.Vertex, newCost float64) float64 {
		return newCost + g.Distance(v, target)
	}
	dijkstraRun(g, source, target, euclideanCost, priority, true)
}
