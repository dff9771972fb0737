package core

import "github.com/Brunovsky/roadnet/heap"

// edgeSet is an unordered collection of incident edges, mirroring the
// source's std::unordered_set<Edge*> incidence lists.
type edgeSet map[*Edge]struct{}

func (s edgeSet) add(e *Edge)    { s[e] = struct{}{} }
func (s edgeSet) remove(e *Edge) { delete(s, e) }
func (s edgeSet) has(e *Edge) bool {
	_, ok := s[e]
	return ok
}

// Slice returns the edges of s in unspecified order.
func (s edgeSet) Slice() []*Edge {
	out := make([]*Edge, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	return out
}

// Vertex is a node of the graph: a planar position plus the planner
// scratch fields written by exactly one path-engine invocation at a
// time (path, cost, priority, heapIndex).
//
// Edge incidence is split into active (in/out) and accident-suspended
// (accIn/accOut) sets; an edge is observable to the planner at v iff it
// is in v.out, which is the sole filter the accident state machine
// maintains.
type Vertex struct {
	ID   int
	X, Y int

	in, out       edgeSet
	accIn, accOut edgeSet

	accidented bool

	// planner scratch, valid only during/after the last planner run that
	// touched this vertex; path, cost and priority are reset by
	// Graph.Clear, heapIndex is maintained by the heap.
	path      *Vertex
	cost      float64
	priority  float64
	heapIndex int
}

// NewVertex constructs a Vertex at (x, y); it is not yet owned by any
// Graph until passed to Graph.AddVertex.
func NewVertex(id, x, y int) *Vertex {
	return &Vertex{
		ID: id, X: x, Y: y,
		in: edgeSet{}, out: edgeSet{},
		accIn: edgeSet{}, accOut: edgeSet{},
		heapIndex: heap.NotInHeap,
	}
}

// IsAccidented reports whether the vertex is currently suspended.
func (v *Vertex) IsAccidented() bool { return v.accidented }

// IsClear reports whether the vertex is currently active.
func (v *Vertex) IsClear() bool { return !v.accidented }

// Out returns the active outgoing edges observable by the planner.
func (v *Vertex) Out() []*Edge { return v.out.Slice() }

// In returns the active incoming edges.
func (v *Vertex) In() []*Edge { return v.in.Slice() }

// OutDegree returns the number of active outgoing edges.
func (v *Vertex) OutDegree() int { return len(v.out) }

// InDegree returns the number of active incoming edges.
func (v *Vertex) InDegree() int { return len(v.in) }

// Path returns the planner's back-pointer, or nil if unset.
func (v *Vertex) Path() *Vertex { return v.path }

// SetPath sets the planner's back-pointer.
func (v *Vertex) SetPath(prev *Vertex) { v.path = prev }

// Cost returns the planner's accumulated cost.
func (v *Vertex) Cost() float64 { return v.cost }

// SetCost sets the planner's accumulated cost.
func (v *Vertex) SetCost(c float64) { v.cost = c }

// Priority returns the planner's heap key.
func (v *Vertex) Priority() float64 { return v.priority }

// SetPriority sets the planner's heap key.
func (v *Vertex) SetPriority(p float64) { v.priority = p }

// HeapIndex and SetHeapIndex implement heap.Indexed, letting *Vertex be
// queued directly in a heap.Heap[*Vertex].
func (v *Vertex) HeapIndex() int     { return v.heapIndex }
func (v *Vertex) SetHeapIndex(i int) { v.heapIndex = i }

// Edge is a directed connection between two vertices, belonging to
// exactly one Road as a forward or backward entry.
//
// Weight is mutable and distinct from Length (the constant Euclidean
// distance scaled by the graph's scale factor); Weight is what
// DijkstraByWeight and the simulation consume.
type Edge struct {
	ID             int
	Source, Target *Vertex
	Road           *Road

	accidented bool
	weight     float64
}

// NewEdge constructs an Edge from source to target on the given road,
// not yet linked into the graph's adjacency sets until AddEdge.
func NewEdge(id int, source, target *Vertex, road *Road) *Edge {
	return &Edge{ID: id, Source: source, Target: target, Road: road}
}

// IsAccidented reports whether this edge is individually suspended
// (independent of its endpoints' vertex-level accident state).
func (e *Edge) IsAccidented() bool { return e.accidented }

// IsClear reports the opposite of IsAccidented.
func (e *Edge) IsClear() bool { return !e.accidented }

// Weight returns the current mutable weight.
func (e *Edge) Weight() float64 { return e.weight }

// SetWeight sets the mutable weight directly (used by loaders and tests;
// Graph.Regenerate is the usual mutator during simulation).
func (e *Edge) SetWeight(w float64) { e.weight = w }

// Road is a named, ordered sequence of directed edges sharing a single
// logical identity; Bothways roads additionally carry a Backward list
// tracing the road in the opposite direction.
type Road struct {
	ID       int
	Name     string
	Bothways bool

	Forward  []*Edge
	Backward []*Edge
}

// NewRoad constructs an empty Road.
func NewRoad(id int, name string, bothways bool) *Road {
	return &Road{ID: id, Name: name, Bothways: bothways}
}

// AddEdge appends edge to the road's forward list, or its backward list
// if forward is false.
func (r *Road) AddEdge(e *Edge, forward bool) {
	if forward {
		r.Forward = append(r.Forward, e)
	} else {
		r.Backward = append(r.Backward, e)
	}
}

// StartVertex returns the source of the first forward edge.
// The caller must ensure the road has at least one forward edge.
func (r *Road) StartVertex() *Vertex { return r.Forward[0].Source }

// EndVertex returns the target of the last forward edge.
// The caller must ensure the road has at least one forward edge.
func (r *Road) EndVertex() *Vertex { return r.Forward[len(r.Forward)-1].Target }

// TotalLength sums the Euclidean length of every forward edge.
func (r *Road) TotalLength(g *Graph) float64 {
	var total float64
	for _, e := range r.Forward {
		total += g.Length(e)
	}
	return total
}

// IsClear reports whether every edge in the chosen direction is clear.
func (r *Road) IsClear(forward bool) bool {
	edges := r.Forward
	if !forward {
		edges = r.Backward
	}
	for _, e := range edges {
		if e.IsAccidented() {
			return false
		}
	}
	return true
}

// IsAccidented reports whether any edge in the chosen direction is accidented.
func (r *Road) IsAccidented(forward bool) bool {
	return !r.IsClear(forward)
}
