package draw

import (
	"testing"

	"github.com/gogpu/blinc"
)

func TestSDFBuildLowersShadowsFirst(t *testing.T) {
	r := newTestRecording()
	shadow := blinc.Shadow{OffsetY: 2, Blur: 4, Color: blinc.Black.WithAlpha(0.5)}

	// Call order interleaves fills and shadows; lowering must regroup as
	// shadows, fills, strokes.
	r.SDFBuild(func(b SdfBuilder) {
		rect := b.Rect(blinc.Rect{0, 0, 100, 40}, blinc.CornerRadiusAll(8))
		b.Fill(rect, blinc.Solid(blinc.White))
		b.Shadow(rect, shadow)
		circle := b.Circle(blinc.Point{50, 50}, 20)
		b.Stroke(circle, blinc.StrokeWidth(2), blinc.Solid(blinc.Black))
		b.Shadow(circle, shadow)
	})

	want := []CommandType{
		CmdDrawShadow,       // rect shadow, first shadow call
		CmdDrawCircleShadow, // circle shadow, second shadow call
		CmdFillRect,
		CmdStrokeCircle,
	}
	cmds := r.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("command count = %d, want %d", len(cmds), len(want))
	}
	for i, cmd := range cmds {
		if cmd.Type() != want[i] {
			t.Errorf("command %d = %v, want %v", i, cmd.Type(), want[i])
		}
	}
}

func TestSDFBuildPreservesGroupCallOrder(t *testing.T) {
	r := newTestRecording()

	r.SDFBuild(func(b SdfBuilder) {
		a := b.Circle(blinc.Point{0, 0}, 5)
		c := b.Rect(blinc.Rect{10, 10, 20, 20}, blinc.CornerRadius{})
		d := b.Circle(blinc.Point{50, 50}, 7)
		b.Fill(a, blinc.Solid(blinc.Black))
		b.Fill(c, blinc.Solid(blinc.White))
		b.Fill(d, blinc.Solid(blinc.Black))
	})

	want := []CommandType{CmdFillCircle, CmdFillRect, CmdFillCircle}
	cmds := r.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("command count = %d, want %d", len(cmds), len(want))
	}
	for i, cmd := range cmds {
		if cmd.Type() != want[i] {
			t.Errorf("command %d = %v, want %v", i, cmd.Type(), want[i])
		}
	}
}

func TestSDFBuildShapeIdsDense(t *testing.T) {
	r := newTestRecording()

	r.SDFBuild(func(b SdfBuilder) {
		first := b.Rect(blinc.Rect{}, blinc.CornerRadius{})
		second := b.Circle(blinc.Point{}, 1)
		third := b.Union(first, second)
		if first != 0 || second != 1 || third != 2 {
			t.Errorf("shape ids = %d, %d, %d; want dense 0, 1, 2", first, second, third)
		}
	})
}

func TestSDFBuildOutOfRangeIdNoOps(t *testing.T) {
	r := newTestRecording()

	r.SDFBuild(func(b SdfBuilder) {
		b.Fill(ShapeId(99), blinc.Solid(blinc.Black))
		b.Stroke(ShapeId(42), blinc.StrokeWidth(1), blinc.Solid(blinc.Black))
		b.Shadow(ShapeId(7), blinc.Shadow{Blur: 1})
	})

	if got := len(r.Commands()); got != 0 {
		t.Errorf("out-of-range shape ids produced %d commands, want 0", got)
	}
}

func TestSDFBuildUnsupportedCombosSkipped(t *testing.T) {
	r := newTestRecording()

	r.SDFBuild(func(b SdfBuilder) {
		a := b.Circle(blinc.Point{}, 5)
		c := b.Circle(blinc.Point{10, 0}, 5)
		// Boolean combinations have no 2D lowering; filling one must be
		// skipped without error.
		u := b.SmoothUnion(a, c, 2)
		b.Fill(u, blinc.Solid(blinc.Black))
		// Line shadows are unsupported too.
		l := b.Line(blinc.Point{}, blinc.Point{10, 10}, 2)
		b.Shadow(l, blinc.Shadow{Blur: 3})
	})

	if got := len(r.Commands()); got != 0 {
		t.Errorf("unsupported combinations produced %d commands, want 0", got)
	}
}

func TestSDFBuildEllipseLowering(t *testing.T) {
	r := newTestRecording()

	r.SDFBuild(func(b SdfBuilder) {
		e := b.Ellipse(blinc.Point{50, 50}, blinc.Point{20, 10})
		b.Fill(e, blinc.Solid(blinc.Black))
		b.Shadow(e, blinc.Shadow{Blur: 2})
	})

	// Shadow first on the ellipse bounds, then the path fill.
	want := []CommandType{CmdDrawShadow, CmdFillPath}
	cmds := r.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("command count = %d, want %d", len(cmds), len(want))
	}
	shadowCmd := cmds[0].(DrawShadowCmd)
	wantRect := blinc.Rect{30, 40, 40, 20}
	if shadowCmd.Rect != wantRect {
		t.Errorf("ellipse shadow rect = %v, want %v", shadowCmd.Rect, wantRect)
	}
	// Corner radius approximated by the smaller semi-axis.
	if shadowCmd.Radius.TopLeft != 10 {
		t.Errorf("ellipse shadow corner radius = %v, want 10", shadowCmd.Radius.TopLeft)
	}
}

func TestSDFBuildLineFillStrokes(t *testing.T) {
	r := newTestRecording()

	r.SDFBuild(func(b SdfBuilder) {
		l := b.Line(blinc.Point{0, 0}, blinc.Point{100, 0}, 3)
		b.Fill(l, blinc.Solid(blinc.Black))
	})

	cmds := r.Commands()
	if len(cmds) != 1 || cmds[0].Type() != CmdStrokePath {
		t.Fatalf("line fill lowering = %v, want single StrokePath", cmds)
	}
	stroke := cmds[0].(StrokePathCmd)
	if stroke.Stroke.Width != 3 {
		t.Errorf("line width = %v, want 3", stroke.Stroke.Width)
	}
}
