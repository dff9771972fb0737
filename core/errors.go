// Package core implements the road-network graph model: vertices with
// planar coordinates, directed weighted edges grouped into named roads,
// and the accident state machine that suspends vertices/edges from the
// active topology without destroying them.
//
// Graph is an arena: it owns every Vertex, Edge and Road by id, and all
// cross-references between them (Vertex.out, Edge.Road, Road.Forward,
// ...) are plain Go pointers into that arena. Nothing outlives the Graph
// that created it, and nothing but the Graph itself constructs or tears
// down vertices, edges or roads.
//
// Unlike a general-purpose concurrent graph library, core.Graph carries
// no internal locking: the system this package implements is explicitly
// single-threaded (one planner runs at a time, never two), so a mutex
// would protect against a concurrency model that does not exist here.
package core

import "errors"

// Sentinel errors for core graph operations. Callers branch on these via
// errors.Is, never on the formatted message.
var (
	// ErrOutOfBounds indicates a vertex's (x, y) falls outside [0,width] x [0,height].
	ErrOutOfBounds = errors.New("core: vertex coordinates out of bounds")

	// ErrDuplicateID indicates an id collision on AddVertex/AddEdge/AddRoad.
	ErrDuplicateID = errors.New("core: duplicate id")

	// ErrVertexNotFound indicates a referenced vertex id does not exist.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a referenced edge id, or (source, target) pair, does not exist.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrRoadNotFound indicates a referenced road id does not exist.
	ErrRoadNotFound = errors.New("core: road not found")
)
