package viewer_test

import (
	"testing"

	"github.com/Brunovsky/roadnet/core"
	"github.com/Brunovsky/roadnet/viewer"
)

// TestNullSatisfiesCoreViewer pins that viewer.Null can be registered on
// a core.Graph without any adapter glue.
func TestNullSatisfiesCoreViewer(t *testing.T) {
	g := core.NewGraph(100, 100, 1, core.WithViewer(viewer.Null{}))

	v := core.NewVertex(1, 0, 0)
	if err := g.AddVertex(v); err != nil {
		t.Fatalf("AddVertex with Null viewer: %v", err)
	}
}
