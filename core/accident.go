package core

// Accident state machine (C2): clear -> accidented -> clear, at both the
// vertex and edge level. An edge is suspended (observable only through
// accOut/accIn, never out/in) iff it is itself accidented, or either
// endpoint is; toggling either flag re-derives the edge's active/
// suspended location at both endpoints via reconcileEdge, which is
// idempotent and safe to call redundantly.

// Accident suspends the vertex. It is a no-op returning false if v is
// already accidented; otherwise it sets the flag, moves every incident
// edge to its suspended location at both endpoints, and recolors the
// vertex in the Viewer.
func (g *Graph) Accident(v *Vertex) bool {
	if v.accidented {
		return false
	}
	v.accidented = true
	g.reconcileVertexEdges(v)
	g.viewer.SetVertexColor(v.ID, colorAccidented)
	return true
}

// Fix clears the vertex's accident flag. It is a no-op returning false
// if v is already clear; otherwise it reconciles every incident edge
// back to its active location, provided the edge itself and its other
// endpoint are also clear.
func (g *Graph) Fix(v *Vertex) bool {
	if !v.accidented {
		return false
	}
	v.accidented = false
	g.reconcileVertexEdges(v)
	g.viewer.SetVertexColor(v.ID, colorClear)
	return true
}

// AccidentEdge suspends e individually, independent of its endpoints'
// vertex-level state. No-op returning false if already accidented.
func (g *Graph) AccidentEdge(e *Edge) bool {
	if e.accidented {
		return false
	}
	e.accidented = true
	g.reconcileEdge(e)
	g.viewer.SetEdgeColor(e.ID, colorAccidented)
	return true
}

// FixEdge clears e's individual accident flag. No-op returning false if
// already clear. The edge may remain suspended afterward if either
// endpoint is still accidented.
func (g *Graph) FixEdge(e *Edge) bool {
	if !e.accidented {
		return false
	}
	e.accidented = false
	g.reconcileEdge(e)
	g.viewer.SetEdgeColor(e.ID, colorClear)
	return true
}

const (
	colorClear      = "blue"
	colorAccidented = "red"
)

// reconcileVertexEdges re-derives the active/suspended location of every
// edge incident to v (as source or target, active or already suspended).
func (g *Graph) reconcileVertexEdges(v *Vertex) {
	touched := make([]*Edge, 0, len(v.out)+len(v.in)+len(v.accOut)+len(v.accIn))
	touched = append(touched, v.out.Slice()...)
	touched = append(touched, v.in.Slice()...)
	touched = append(touched, v.accOut.Slice()...)
	touched = append(touched, v.accIn.Slice()...)
	for _, e := range touched {
		g.reconcileEdge(e)
	}
}

// reconcileEdge moves e into the active or suspended set of both of its
// endpoints, matching whether e.accidented || source.accidented ||
// target.accidented. It is idempotent: calling it when e is already in
// the right place is a no-op.
func (g *Graph) reconcileEdge(e *Edge) {
	suspended := e.accidented || e.Source.accidented || e.Target.accidented

	if suspended {
		moveEdge(e.Source.out, e.Source.accOut, e)
		moveEdge(e.Target.in, e.Target.accIn, e)
	} else {
		moveEdge(e.Source.accOut, e.Source.out, e)
		moveEdge(e.Target.accIn, e.Target.in, e)
	}
}

func moveEdge(from, to edgeSet, e *Edge) {
	if from.has(e) {
		from.remove(e)
		to.add(e)
	}
}
