package scene

import (
	"testing"

	"github.com/gogpu/blinc"
	"github.com/gogpu/blinc/draw"
)

func TestIDGeneratorStartsAtOne(t *testing.T) {
	gen := NewIDGenerator()
	for want := uint64(1); want <= 5; want++ {
		if got := gen.Next(); got != blinc.LayerID(want) {
			t.Fatalf("Next() = %d, want %d", got, want)
		}
	}
}

func TestSceneGraphIDsUniqueAcrossRebuilds(t *testing.T) {
	g := NewSceneGraph()
	first := g.NewLayerID()

	g.SetRoot(Empty())
	g.SetRoot(nil)

	second := g.NewLayerID()
	if second <= first {
		t.Fatalf("ids not monotonic across rebuilds: %d then %d", first, second)
	}
}

func buildTestGraph() (*SceneGraph, *Layer, *Layer) {
	g := NewSceneGraph()

	target := Empty()
	target.Props.ID = g.NewLayerID()

	decoy := Empty()
	decoy.Props.ID = g.NewLayerID()

	hidden := Empty()
	hidden.Props.ID = g.NewLayerID()
	hidden.Props.Visible = false

	root := Stack(
		Opacity(0.5, target),
		decoy,
		hidden,
	)
	root.Props.ID = g.NewLayerID()
	g.SetRoot(root)
	return g, root, target
}

func TestLayerCount(t *testing.T) {
	g, _, _ := buildTestGraph()
	if got := g.LayerCount(); got != 5 {
		t.Errorf("LayerCount() = %d, want 5", got)
	}
	if got := g.VisibleLayerCount(); got != 4 {
		t.Errorf("VisibleLayerCount() = %d, want 4", got)
	}
}

func TestLayerCountEmptyGraph(t *testing.T) {
	g := NewSceneGraph()
	if got := g.LayerCount(); got != 0 {
		t.Errorf("LayerCount() = %d, want 0", got)
	}
	if g.Has3D() {
		t.Error("empty graph reported 3D content")
	}
}

func TestFindLayer(t *testing.T) {
	g, root, target := buildTestGraph()

	if got := g.FindLayer(target.ID()); got != target {
		t.Errorf("FindLayer(%d) = %v, want target", target.ID(), got)
	}
	if got := g.FindLayer(root.ID()); got != root {
		t.Errorf("FindLayer(%d) = %v, want root", root.ID(), got)
	}
	if got := g.FindLayer(blinc.LayerID(9999)); got != nil {
		t.Errorf("FindLayer(missing) = %v, want nil", got)
	}
	if got := g.FindLayer(0); got != nil {
		t.Errorf("FindLayer(0) = %v, want nil", got)
	}
}

func TestFindLayerFirstMatchPreOrder(t *testing.T) {
	// Duplicate ids only arise in hand-built trees; the first layer in
	// pre-order wins.
	dup := blinc.LayerID(42)
	first := Empty()
	first.Props.ID = dup
	second := Empty()
	second.Props.ID = dup

	g := NewSceneGraph()
	g.SetRoot(Stack(first, second))

	if got := g.FindLayer(dup); got != first {
		t.Fatalf("FindLayer returned the later duplicate")
	}
}

func TestHas3D(t *testing.T) {
	rec := draw.NewRecording(blinc.Size{Width: 10, Height: 10})
	scene3D := Scene3D(blinc.Rect{Width: 10, Height: 10}, rec, blinc.PerspectiveCamera(60))

	g := NewSceneGraph()
	g.SetRoot(Stack(Empty(), Canvas2D(blinc.Size{Width: 10, Height: 10}, rec)))
	if g.Has3D() {
		t.Error("pure 2D tree reported 3D content")
	}

	// A viewport is not 3D itself, but traversal reaches its embedded scene.
	g.SetRoot(Viewport3D(blinc.Rect{Width: 10, Height: 10}, scene3D))
	if !g.Has3D() {
		t.Error("viewport with embedded 3D scene not detected")
	}

	g.SetRoot(Stack(Empty(), Transform3D(blinc.Mat4Identity(), Empty())))
	if !g.Has3D() {
		t.Error("Transform3D not detected as 3D content")
	}
}

func TestTraverseDepths(t *testing.T) {
	g, _, _ := buildTestGraph()
	maxDepth := -1
	g.Traverse(func(_ *Layer, depth int) {
		if depth > maxDepth {
			maxDepth = depth
		}
	})
	if maxDepth != 2 {
		t.Fatalf("max depth = %d, want 2", maxDepth)
	}
}
