package pathfind

import "github.com/Brunovsky/roadnet/core"

// BFS computes reachability from source: after it returns, v.Path() is
// non-nil iff v is reachable from source via non-accidented edges. It
// writes no costs or priorities.
//
// source.Path() is seeded to itself as a visited sentinel, so that a
// cycle back to source (e.g. a bothways road's reverse edge) does not
// re-enqueue it; GetPath stops at source regardless of this
// self-reference.
func BFS(g *core.Graph, source *core.Vertex) {
	source.SetPath(source)

	queue := []*core.Vertex{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, edge := range u.Out() {
			v := edge.Target
			if v.Path() == nil {
				v.SetPath(u)
				queue = append(queue, v)
			}
		}
	}
}
