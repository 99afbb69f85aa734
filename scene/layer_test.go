package scene

import (
	"testing"

	"github.com/gogpu/blinc"
	"github.com/gogpu/blinc/draw"
)

func childrenOf(l *Layer) []*Layer {
	var out []*Layer
	l.VisitChildren(func(c *Layer) { out = append(out, c) })
	return out
}

func TestVisitChildrenStack(t *testing.T) {
	a, b, c := Empty(), Empty(), Empty()
	stack := Stack(a, b, c)

	got := childrenOf(stack)
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Fatalf("Stack children = %v, want [a b c] in order", got)
	}
}

func TestVisitChildrenSingleChildKinds(t *testing.T) {
	child := Empty()
	layers := []*Layer{
		Transform2D(blinc.AffineIdentity(), child),
		Transform3D(blinc.Mat4Identity(), child),
		Clip(blinc.ClipRect{Rect: blinc.Rect{Width: 10, Height: 10}}, child),
		Opacity(0.5, child),
		Offscreen(blinc.Size{Width: 8, Height: 8}, FormatRGBA8Unorm, child),
		Billboard(child, blinc.Mat4Identity(), draw.FaceCamera),
		Viewport3D(blinc.Rect{Width: 100, Height: 100}, child),
	}
	for _, l := range layers {
		got := childrenOf(l)
		if len(got) != 1 || got[0] != child {
			t.Errorf("%s: children = %v, want single child", l.Kind, got)
		}
	}
}

func TestVisitChildrenNilChild(t *testing.T) {
	l := Opacity(0.5, nil)
	if got := childrenOf(l); len(got) != 0 {
		t.Fatalf("nil child visited: %v", got)
	}
}

func TestVisitChildrenLeaves(t *testing.T) {
	rec := draw.NewRecording(blinc.Size{Width: 10, Height: 10})
	leaves := []*Layer{
		Empty(),
		Ui(UiNode{ID: 7}),
		Canvas2D(blinc.Size{Width: 10, Height: 10}, rec),
		Scene3D(blinc.Rect{Width: 10, Height: 10}, rec, blinc.PerspectiveCamera(60)),
		Portal(blinc.LayerID(3), blinc.Rect{}, blinc.Rect{}),
	}
	for _, l := range leaves {
		if got := childrenOf(l); len(got) != 0 {
			t.Errorf("%s: leaf reported children %v", l.Kind, got)
		}
	}
}

func TestWalkPreOrderDepth(t *testing.T) {
	rec := draw.NewRecording(blinc.Size{Width: 10, Height: 10})
	inner := Canvas2D(blinc.Size{Width: 10, Height: 10}, rec)
	root := Stack(
		Opacity(0.5, inner),
		Empty(),
	)

	type visit struct {
		kind  LayerKind
		depth int
	}
	var visits []visit
	root.Walk(func(l *Layer, depth int) {
		visits = append(visits, visit{l.Kind, depth})
	})

	want := []visit{
		{KindStack, 0},
		{KindOpacity, 1},
		{KindCanvas2D, 2},
		{KindEmpty, 1},
	}
	if len(visits) != len(want) {
		t.Fatalf("Walk visited %d layers, want %d", len(visits), len(want))
	}
	for i, w := range want {
		if visits[i] != w {
			t.Errorf("visit %d = %v, want %v", i, visits[i], w)
		}
	}
}

func TestIs3D(t *testing.T) {
	rec := draw.NewRecording(blinc.Size{Width: 10, Height: 10})
	scene3D := Scene3D(blinc.Rect{Width: 10, Height: 10}, rec, blinc.PerspectiveCamera(60))

	tests := []struct {
		layer *Layer
		want  bool
	}{
		{scene3D, true},
		{Billboard(Empty(), blinc.Mat4Identity(), draw.FaceCameraY), true},
		{Transform3D(blinc.Mat4Identity(), Empty()), true},
		{Viewport3D(blinc.Rect{Width: 10, Height: 10}, scene3D), false},
		{Empty(), false},
		{Canvas2D(blinc.Size{Width: 10, Height: 10}, rec), false},
		{Transform2D(blinc.AffineIdentity(), Empty()), false},
	}
	for _, tt := range tests {
		if got := tt.layer.Is3D(); got != tt.want {
			t.Errorf("%s.Is3D() = %v, want %v", tt.layer.Kind, got, tt.want)
		}
	}
}

func TestLayerKindString(t *testing.T) {
	if got := KindBillboard.String(); got != "Billboard" {
		t.Errorf("KindBillboard.String() = %q", got)
	}
	if got := LayerKind(200).String(); got == "" {
		t.Errorf("unknown kind produced empty string")
	}
}

func TestNewLayerPropertiesVisible(t *testing.T) {
	p := NewLayerProperties()
	if !p.Visible {
		t.Fatal("new layer properties should be visible")
	}
	if p.PointerEvents != PointerAuto {
		t.Fatalf("pointer events = %v, want PointerAuto", p.PointerEvents)
	}
}
