// Package pathfind implements the path engine (C4): BFS reachability,
// Greedy Best-First Search, Dijkstra (late and early exit), A*, and
// Dijkstra-over-weight, sharing a single contract with core.Graph.
//
// Every algorithm here assumes the caller has already called
// g.Clear(); it writes only into each visited vertex's scratch fields
// (Path, Cost, Priority) and never touches topology. After an algorithm
// returns, GetPath reconstructs the route by walking Path back from the
// target to the source.
package pathfind

import "github.com/Brunovsky/roadnet/core"

// GetPath walks target.Path back to source and returns the route from
// source to target inclusive. If target is unreachable from source (no
// back-pointer chain reaches source), it returns a nil path. A path of
// length 1 (source == target) is legal and returned as-is.
func GetPath(source, target *core.Vertex) []*core.Vertex {
	var path []*core.Vertex

	current := target
	for current != source && current != nil {
		path = append(path, current)
		current = current.Path()
	}

	if current == nil {
		return nil
	}

	path = append(path, source)
	reverse(path)
	return path
}

func reverse(path []*core.Vertex) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
