package core

import "math"

// Viewer is the narrow outbound contract Graph notifies of topology and
// state changes; it is satisfied by package viewer's Viewer interface
// without this package importing it, to keep core free of a dependency
// on the presentation layer.
type Viewer interface {
	AddNode(id, x, y int)
	AddEdge(id, source, target int, directed bool)
	SetVertexColor(id int, color string)
	SetVertexLabel(id int, label string)
	SetEdgeColor(id int, color string)
	SetEdgeLabel(id int, label string)
	Rearrange()
}

// nullViewer satisfies Viewer with no observable side effects, used when
// the caller does not register one.
type nullViewer struct{}

func (nullViewer) AddNode(int, int, int)       {}
func (nullViewer) AddEdge(int, int, int, bool) {}
func (nullViewer) SetVertexColor(int, string)  {}
func (nullViewer) SetVertexLabel(int, string)  {}
func (nullViewer) SetEdgeColor(int, string)    {}
func (nullViewer) SetEdgeLabel(int, string)    {}
func (nullViewer) Rearrange()                  {}

// Graph owns every Vertex, Edge and Road by id, and is the sole source
// of the Euclidean metric used throughout the path engine.
//
// Width, Height and Scale are immutable geometry set at construction;
// Graph is mutated only by AddVertex/AddEdge/AddRoad at load time and by
// accident toggles, Regenerate and planner scratch writes afterward.
type Graph struct {
	Width, Height int
	Scale         float64

	vertices map[int]*Vertex
	edges    map[int]*Edge
	roads    map[int]*Road

	viewer Viewer
}

// Option configures a Graph at construction time.
type Option func(g *Graph)

// WithViewer registers a Viewer to receive CRUD/state notifications. If
// never called, the graph uses a no-op viewer.
func WithViewer(v Viewer) Option {
	return func(g *Graph) {
		if v != nil {
			g.viewer = v
		}
	}
}

// NewGraph constructs an empty Graph with the given canvas dimensions
// and meters-per-unit scale.
func NewGraph(width, height int, scale float64, opts ...Option) *Graph {
	g := &Graph{
		Width: width, Height: height, Scale: scale,
		vertices: make(map[int]*Vertex),
		edges:    make(map[int]*Edge),
		roads:    make(map[int]*Road),
		viewer:   nullViewer{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Graph) withinBounds(x, y int) bool {
	return x >= 0 && x <= g.Width && y >= 0 && y <= g.Height
}

// AddVertex inserts v into the graph. It fails if v's coordinates fall
// outside the canvas, or its id collides with an existing vertex.
func (g *Graph) AddVertex(v *Vertex) error {
	if !g.withinBounds(v.X, v.Y) {
		return ErrOutOfBounds
	}
	if _, exists := g.vertices[v.ID]; exists {
		return ErrDuplicateID
	}
	g.vertices[v.ID] = v
	g.viewer.AddNode(v.ID, v.X, v.Y)
	return nil
}

// AddEdge links e into source.out/target.in and registers it with the
// graph and the Viewer. It fails if e's id collides with an existing edge.
func (g *Graph) AddEdge(e *Edge) error {
	if _, exists := g.edges[e.ID]; exists {
		return ErrDuplicateID
	}
	g.edges[e.ID] = e
	e.Source.out.add(e)
	e.Target.in.add(e)
	g.viewer.AddEdge(e.ID, e.Source.ID, e.Target.ID, true)
	return nil
}

// AddRoad registers r with the graph. It fails if r's id collides with
// an existing road.
func (g *Graph) AddRoad(r *Road) error {
	if _, exists := g.roads[r.ID]; exists {
		return ErrDuplicateID
	}
	g.roads[r.ID] = r
	return nil
}

// Distance returns the Euclidean distance between u and v, scaled by the
// graph's meters-per-unit factor. It is the graph's sole source of
// Euclidean metric, used by GBFS/Dijkstra/A* priorities alike.
func (g *Graph) Distance(u, v *Vertex) float64 {
	dx := float64(u.X - v.X)
	dy := float64(u.Y - v.Y)
	return g.Scale * math.Hypot(dx, dy)
}

// Length returns the constant Euclidean length of e, i.e. Distance
// between its endpoints.
func (g *Graph) Length(e *Edge) float64 {
	return g.Distance(e.Source, e.Target)
}

// GetVertex returns the vertex with the given id, or (nil, false).
func (g *Graph) GetVertex(id int) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// GetEdge returns the edge with the given id, or (nil, false).
func (g *Graph) GetEdge(id int) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// GetEdgeBetween returns the (first) active or suspended edge from
// sourceID to targetID, or (nil, false) if none exists.
func (g *Graph) GetEdgeBetween(sourceID, targetID int) (*Edge, bool) {
	u, ok := g.vertices[sourceID]
	if !ok {
		return nil, false
	}
	for _, set := range []edgeSet{u.out, u.accOut} {
		for e := range set {
			if e.Target.ID == targetID {
				return e, true
			}
		}
	}
	return nil, false
}

// GetRoad returns the road with the given id, or (nil, false).
func (g *Graph) GetRoad(id int) (*Road, bool) {
	r, ok := g.roads[id]
	return r, ok
}

// Roads returns every road owned by the graph, in unspecified order.
func (g *Graph) Roads() []*Road {
	out := make([]*Road, 0, len(g.roads))
	for _, r := range g.roads {
		out = append(out, r)
	}
	return out
}

// Vertices returns every vertex owned by the graph, in unspecified order.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	return out
}

// Clear zeroes the planner scratch fields (path, cost, priority) across
// every vertex. It never touches topology or accident state; every
// planner invocation must precede itself with Clear.
func (g *Graph) Clear() {
	for _, v := range g.vertices {
		v.path = nil
		v.cost = 0
		v.priority = 0
	}
}
