// Package viewer defines the outbound contract the core calls to
// reflect selection, accident and path state in a presentation layer
// (a graphical map viewer, in the system this module replaces). It is a
// thin, stubbable sink: the core never consumes a return value from it,
// and a Null viewer satisfies the interface with no observable side
// effects, so the core runs identically headless or painted.
package viewer

// Viewer is the set of sinks the core calls. It matches core.Viewer
// structurally (core depends on nothing in this package, to keep the
// model free of a presentation dependency) plus the richer styling and
// path-animation calls a real front-end needs.
type Viewer interface {
	AddNode(id, x, y int)
	AddEdge(id, source, target int, directed bool)

	SetVertexColor(id int, color string)
	SetVertexSize(id, size int)
	SetVertexLabel(id int, label string)

	SetEdgeColor(id int, color string)
	SetEdgeThickness(id, thickness int)
	SetEdgeLabel(id int, label string)

	Rearrange()
	CloseWindow()
	SetBackground(path string)
	DefineEdgeCurved(id int, curved bool)
}

// Null is a Viewer with no observable side effects, used for headless
// operation (tests, the simulation driver, any caller that does not
// register a presentation layer).
type Null struct{}

func (Null) AddNode(int, int, int)       {}
func (Null) AddEdge(int, int, int, bool) {}

func (Null) SetVertexColor(int, string) {}
func (Null) SetVertexSize(int, int)     {}
func (Null) SetVertexLabel(int, string) {}

func (Null) SetEdgeColor(int, string)    {}
func (Null) SetEdgeThickness(int, int)   {}
func (Null) SetEdgeLabel(int, string)    {}

func (Null) Rearrange()                {}
func (Null) CloseWindow()              {}
func (Null) SetBackground(string)      {}
func (Null) DefineEdgeCurved(int, bool) {}

var _ Viewer = Null{}
