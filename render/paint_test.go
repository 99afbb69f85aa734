package render

import (
	"testing"

	"github.com/gogpu/blinc"
	"github.com/gogpu/blinc/draw"
)

func newTestPaint() (*PaintContext, *FrameContent) {
	fc := &FrameContent{}
	return NewPaintContext(fc, blinc.Size{Width: 800, Height: 600}), fc
}

func TestPaintFillRectSolid(t *testing.T) {
	p, fc := newTestPaint()
	p.FillRect(blinc.Rect{X: 10, Y: 10, Width: 50, Height: 50}, blinc.CornerRadiusAll(4), blinc.Solid(blinc.White))

	if fc.Batch.Len() != 1 {
		t.Fatalf("prims = %d, want 1", fc.Batch.Len())
	}
	prim := fc.Batch.All()[0]
	if prim.Kind != PrimRect || prim.CornerRadius != 4 {
		t.Errorf("prim = %+v", prim)
	}
	if prim.StrokeWidth != 0 {
		t.Error("fill must have no stroke")
	}
}

func TestPaintFillRectWithBorder(t *testing.T) {
	p, fc := newTestPaint()
	p.FillRectWithBorder(blinc.Rect{X: 0, Y: 0, Width: 40, Height: 40}, blinc.CornerRadiusAll(2), blinc.Solid(blinc.White), [4]float32{1, 4, 1, 1}, blinc.Black)

	if fc.Batch.Len() != 2 {
		t.Fatalf("prims = %d, want fill and border stroke", fc.Batch.Len())
	}
	border := fc.Batch.All()[1]
	if border.StrokeWidth != 4 {
		t.Errorf("border stroke width = %v, want widest side 4", border.StrokeWidth)
	}
}

func TestPaintZLayerTagsPrimitives(t *testing.T) {
	p, fc := newTestPaint()
	p.SetZLayer(2)
	if p.ZLayer() != 2 {
		t.Fatalf("ZLayer = %d, want 2", p.ZLayer())
	}
	p.FillRect(blinc.Rect{X: 0, Y: 0, Width: 10, Height: 10}, blinc.CornerRadius{}, blinc.Solid(blinc.White))
	if got := fc.Batch.All()[0].ZLayer; got != 2 {
		t.Errorf("prim z-layer = %d, want 2", got)
	}
}

func TestPaintTransformTranslates(t *testing.T) {
	p, fc := newTestPaint()
	p.PushTransform(blinc.AffineTranslate(100, 50))
	p.FillCircle(blinc.Pt(10, 10), 5, blinc.Solid(blinc.White))
	p.PopTransform()
	p.FillCircle(blinc.Pt(10, 10), 5, blinc.Solid(blinc.White))

	prims := fc.Batch.All()
	if prims[0].Bounds.X != 105 || prims[0].Bounds.Y != 55 {
		t.Errorf("translated circle at (%g,%g), want (105,55)", prims[0].Bounds.X, prims[0].Bounds.Y)
	}
	if prims[1].Bounds.X != 5 {
		t.Errorf("popped transform still applies: %+v", prims[1].Bounds)
	}
}

func TestPaintClipIntersects(t *testing.T) {
	p, fc := newTestPaint()
	p.PushClip(blinc.ClipRect{Rect: blinc.Rect{Width: 100, Height: 100}})
	p.PushClip(blinc.ClipRect{Rect: blinc.Rect{X: 50, Y: 50, Width: 100, Height: 100}})
	p.FillRect(blinc.Rect{Width: 200, Height: 200}, blinc.CornerRadius{}, blinc.Solid(blinc.White))

	prim := fc.Batch.All()[0]
	if !prim.HasClip {
		t.Fatal("expected clip on primitive")
	}
	want := blinc.Rect{X: 50, Y: 50, Width: 50, Height: 50}
	if prim.Clip != want {
		t.Errorf("clip = %+v, want %+v", prim.Clip, want)
	}
}

func TestPaintOpacityStacks(t *testing.T) {
	p, fc := newTestPaint()
	p.PushOpacity(0.5)
	p.PushOpacity(0.5)
	p.FillRect(blinc.Rect{Width: 10, Height: 10}, blinc.CornerRadius{}, blinc.Solid(blinc.White))
	p.PopOpacity()
	p.PopOpacity()
	p.PopOpacity() // over-pop is a no-op

	if got := fc.Batch.All()[0].Color.A; got < 0.249 || got > 0.251 {
		t.Errorf("alpha = %g, want 0.25", got)
	}
	if p.CurrentOpacity() != 1 {
		t.Errorf("opacity after pops = %g, want 1", p.CurrentOpacity())
	}
}

func TestPaintGlassBrushClassifies(t *testing.T) {
	p, fc := newTestPaint()
	p.FillRect(blinc.Rect{Width: 80, Height: 40}, blinc.CornerRadiusAll(12), blinc.GlassThick())

	prim := fc.Batch.All()[0]
	if prim.Class != ClassGlass || prim.Glass == nil {
		t.Fatalf("glass brush must produce a glass primitive: %+v", prim)
	}
	if prim.Glass.BlurRadius != 30 {
		t.Errorf("blur = %g, want thick preset 30", prim.Glass.BlurRadius)
	}
}

func TestPaintImageBrushEmitsElement(t *testing.T) {
	p, fc := newTestPaint()
	p.FillRect(blinc.Rect{Width: 64, Height: 64}, blinc.CornerRadius{}, blinc.Image("bg.png"))

	if fc.Batch.Len() != 0 {
		t.Error("image brush must not emit a primitive")
	}
	if len(fc.Images) != 1 || fc.Images[0].Source != "bg.png" {
		t.Fatalf("images = %+v", fc.Images)
	}
}

func TestPaintDrawTextEmitsElement(t *testing.T) {
	p, fc := newTestPaint()
	style := blinc.DefaultTextStyle()
	p.DrawText("hello", blinc.Pt(20, 40), style)
	p.DrawText("", blinc.Pt(0, 0), style)

	if len(fc.Texts) != 1 {
		t.Fatalf("texts = %d, want 1 (empty draws are dropped)", len(fc.Texts))
	}
	if fc.Texts[0].Bounds.X != 20 {
		t.Errorf("text origin = %+v", fc.Texts[0].Bounds)
	}
}

func TestPaintSDFBuildLowers(t *testing.T) {
	p, fc := newTestPaint()
	p.SDFBuild(func(b draw.SdfBuilder) {
		id := b.Circle(blinc.Pt(50, 50), 20)
		b.Fill(id, blinc.Solid(blinc.White))
		r := b.Rect(blinc.Rect{Width: 10, Height: 10}, blinc.CornerRadius{})
		b.Stroke(r, blinc.StrokeWidth(2), blinc.Solid(blinc.Black))
	})

	if fc.Batch.Len() != 2 {
		t.Fatalf("prims = %d, want fill + stroke", fc.Batch.Len())
	}
	if fc.Batch.All()[0].Kind != PrimCircle {
		t.Errorf("fills lower before strokes, got %+v first", fc.Batch.All()[0])
	}
	if fc.Batch.All()[1].StrokeWidth != 2 {
		t.Errorf("stroke width = %g, want 2", fc.Batch.All()[1].StrokeWidth)
	}
}

func TestPaintReplayRecording(t *testing.T) {
	rec := draw.NewRecording(blinc.Size{Width: 800, Height: 600})
	rec.PushOpacity(0.5)
	rec.FillRect(blinc.Rect{X: 1, Y: 2, Width: 3, Height: 4}, blinc.CornerRadius{}, blinc.Solid(blinc.White))
	rec.PopOpacity()

	p, fc := newTestPaint()
	ReplayRecording(p, rec)

	if fc.Batch.Len() != 1 {
		t.Fatalf("prims = %d, want 1", fc.Batch.Len())
	}
	if got := fc.Batch.All()[0].Color.A; got < 0.499 || got > 0.501 {
		t.Errorf("replayed alpha = %g, want 0.5", got)
	}
}
