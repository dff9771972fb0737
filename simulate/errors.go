package simulate

import "errors"

// ErrVertexNotFound is returned when source or target is not owned by
// the graph passed to a simulation loop.
var ErrVertexNotFound = errors.New("simulate: vertex not found in graph")

// ErrUnreachable is returned when the current source cannot reach
// target under the present topology and accident state.
var ErrUnreachable = errors.New("simulate: target unreachable from current source")
