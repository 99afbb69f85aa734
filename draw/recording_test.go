package draw

import (
	"testing"

	"github.com/gogpu/blinc"
)

func newTestRecording() *Recording {
	return NewRecording(blinc.Size{Width: 800, Height: 600})
}

func TestRecordingRecordsInCallOrder(t *testing.T) {
	r := newTestRecording()

	r.PushTransform(blinc.AffineTranslate(10, 20))
	r.FillRect(blinc.Rect{0, 0, 100, 50}, blinc.CornerRadiusAll(8), blinc.Solid(blinc.Black))
	r.DrawText("Hello", blinc.Point{10, 30}, blinc.DefaultTextStyle())
	r.PopTransform()

	want := []CommandType{CmdPushTransform, CmdFillRect, CmdDrawText, CmdPopTransform}
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

func TestFillRectWithBorderLowersToFillAndStroke(t *testing.T) {
	r := newTestRecording()
	rect := blinc.Rect{0, 0, 100, 50}
	r.FillRectWithBorder(rect, blinc.CornerRadiusAll(4), blinc.Solid(blinc.White), [4]float32{1, 2, 3, 2}, blinc.Black)

	cmds := r.Commands()
	if len(cmds) != 2 {
		t.Fatalf("command count = %d, want 2", len(cmds))
	}
	if cmds[0].Type() != CmdFillRect || cmds[1].Type() != CmdStrokeRect {
		t.Fatalf("commands = %v, %v, want FillRect then StrokeRect", cmds[0].Type(), cmds[1].Type())
	}
	stroke := cmds[1].(StrokeRectCmd)
	if stroke.Stroke.Width != 3 {
		t.Errorf("border stroke width = %v, want widest side 3", stroke.Stroke.Width)
	}
}

func TestFillRectWithBorderZeroWidthsSkipsStroke(t *testing.T) {
	r := newTestRecording()
	r.FillRectWithBorder(blinc.Rect{0, 0, 10, 10}, blinc.CornerRadius{}, blinc.Solid(blinc.White), [4]float32{}, blinc.Black)
	if n := len(r.Commands()); n != 1 {
		t.Fatalf("command count = %d, want 1", n)
	}
}

func TestZLayerIsInertOnRecordings(t *testing.T) {
	r := newTestRecording()
	r.SetZLayer(3)
	if r.ZLayer() != 0 {
		t.Errorf("ZLayer = %d, want 0", r.ZLayer())
	}
	if len(r.Commands()) != 0 {
		t.Errorf("SetZLayer recorded %d commands, want none", len(r.Commands()))
	}
}

func TestTransformStackRootIdentity(t *testing.T) {
	r := newTestRecording()

	if !r.CurrentTransform().IsIdentity() {
		t.Error("fresh context transform is not identity")
	}

	r.PushTransform(blinc.AffineTranslate(10, 20))
	r.PushTransform(blinc.AffineScale(2, 2))
	r.PopTransform()
	r.PopTransform()

	// Popping past the root must be a silent no-op.
	r.PopTransform()
	if !r.CurrentTransform().IsIdentity() {
		t.Error("over-pop disturbed the root identity")
	}
}

func TestOpacityStackProduct(t *testing.T) {
	r := newTestRecording()

	if got := r.CurrentOpacity(); got != 1 {
		t.Fatalf("baseline opacity = %v, want 1", got)
	}

	pushes := []float32{0.5, 0.5, 0.8}
	r.PushOpacity(pushes[0])
	r.PushOpacity(pushes[1])
	r.PushOpacity(pushes[2])

	if got, want := r.CurrentOpacity(), float32(0.5*0.5*0.8); got != want {
		t.Errorf("stacked opacity = %v, want running product %v", got, want)
	}

	// Each pop restores the exact prior stacked value.
	r.PopOpacity()
	if got, want := r.CurrentOpacity(), float32(0.5*0.5); got != want {
		t.Errorf("after pop = %v, want %v", got, want)
	}
	r.PopOpacity()
	if got, want := r.CurrentOpacity(), float32(0.5); got != want {
		t.Errorf("after second pop = %v, want %v", got, want)
	}
	r.PopOpacity()
	if got := r.CurrentOpacity(); got != 1 {
		t.Errorf("after final pop = %v, want 1", got)
	}

	// Over-popping never changes the 1.0 baseline.
	r.PopOpacity()
	r.PopOpacity()
	if got := r.CurrentOpacity(); got != 1 {
		t.Errorf("after over-pop = %v, want 1", got)
	}
}

func TestOpacityNonIncreasing(t *testing.T) {
	r := newTestRecording()

	prev := r.CurrentOpacity()
	for _, o := range []float32{0.9, 1.0, 0.5, 0.99} {
		r.PushOpacity(o)
		cur := r.CurrentOpacity()
		if cur > prev {
			t.Errorf("opacity increased along push chain: %v -> %v", prev, cur)
		}
		prev = cur
	}
}

func TestBlendModeStack(t *testing.T) {
	r := newTestRecording()

	if got := r.CurrentBlendMode(); got != blinc.BlendNormal {
		t.Fatalf("baseline blend mode = %v", got)
	}

	r.PushBlendMode(blinc.BlendMultiply)
	r.PushBlendMode(blinc.BlendScreen)
	if got := r.CurrentBlendMode(); got != blinc.BlendScreen {
		t.Errorf("blend mode = %v, want Screen", got)
	}
	r.PopBlendMode()
	if got := r.CurrentBlendMode(); got != blinc.BlendMultiply {
		t.Errorf("blend mode = %v, want Multiply", got)
	}
	r.PopBlendMode()
	r.PopBlendMode() // over-pop
	if got := r.CurrentBlendMode(); got != blinc.BlendNormal {
		t.Errorf("blend mode after over-pop = %v, want Normal", got)
	}
}

func TestClipDepthNeverNegative(t *testing.T) {
	r := newTestRecording()

	r.PushClip(blinc.ClipRect{Rect: blinc.Rect{0, 0, 10, 10}})
	r.PopClip()
	r.PopClip()
	if got := r.ClipDepth(); got != 0 {
		t.Errorf("clip depth = %d, want 0", got)
	}
}

func TestViewport3DDrawSavesAndRestoresFlag(t *testing.T) {
	r := newTestRecording()
	cam := blinc.PerspectiveCamera(blinc.Vec3{Z: 5}, blinc.Vec3{}, 1.0)

	if r.Is3DContext() {
		t.Fatal("fresh context is 3D")
	}

	r.Viewport3DDraw(blinc.Rect{0, 0, 100, 100}, cam, func(ctx DrawContext) {
		if !ctx.Is3DContext() {
			t.Error("not 3D inside viewport closure")
		}
		// Nested viewports compose; the flag is restored to the
		// surrounding viewport's state, not reset.
		ctx.Viewport3DDraw(blinc.Rect{0, 0, 50, 50}, cam, func(inner DrawContext) {
			if !inner.Is3DContext() {
				t.Error("not 3D inside nested viewport")
			}
		})
		if !ctx.Is3DContext() {
			t.Error("nested viewport reset the outer 3D flag")
		}
	})

	if r.Is3DContext() {
		t.Error("3D flag not restored after viewport")
	}
}

func TestBillboardDrawSplicesOntoTail(t *testing.T) {
	r := newTestRecording()

	r.FillRect(blinc.Rect{0, 0, 10, 10}, blinc.CornerRadius{}, blinc.Solid(blinc.Black))
	r.BillboardDraw(blinc.Size{Width: 50, Height: 50}, blinc.Mat4Identity(), FaceCamera, func(ctx DrawContext) {
		ctx.FillCircle(blinc.Point{5, 5}, 3, blinc.Solid(blinc.White))
		ctx.DrawText("tag", blinc.Point{}, blinc.DefaultTextStyle())
	})

	want := []CommandType{CmdFillRect, CmdFillCircle, CmdDrawText}
	cmds := r.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("command count = %d, want %d (billboard content flattened onto tail)", len(cmds), len(want))
	}
	for i, cmd := range cmds {
		if cmd.Type() != want[i] {
			t.Errorf("command %d = %v, want %v", i, cmd.Type(), want[i])
		}
	}
}

func TestBillboardDrawIsolatesSubContext(t *testing.T) {
	r := newTestRecording()
	r.PushOpacity(0.5)

	r.BillboardDraw(blinc.Size{Width: 10, Height: 10}, blinc.Mat4Identity(), FaceCamera, func(ctx DrawContext) {
		// The sub-context starts from a fresh stack.
		if got := ctx.CurrentOpacity(); got != 1 {
			t.Errorf("sub-context opacity = %v, want 1", got)
		}
	})
}

func TestTakeCommandsEmptiesRecording(t *testing.T) {
	r := newTestRecording()
	r.FillCircle(blinc.Point{}, 1, blinc.Solid(blinc.Black))

	cmds := r.TakeCommands()
	if len(cmds) != 1 {
		t.Fatalf("taken = %d commands, want 1", len(cmds))
	}
	if len(r.Commands()) != 0 {
		t.Error("recording not empty after TakeCommands")
	}
}

func TestClearResetsStacks(t *testing.T) {
	r := newTestRecording()
	r.PushOpacity(0.25)
	r.PushTransform(blinc.AffineScale(3, 3))
	r.FillCircle(blinc.Point{}, 1, blinc.Solid(blinc.Black))

	r.Clear()

	if len(r.Commands()) != 0 {
		t.Error("commands survived Clear")
	}
	if r.CurrentOpacity() != 1 || !r.CurrentTransform().IsIdentity() {
		t.Error("stacks not reset to roots")
	}
}

// commandCounter is a CommandVisitor that counts dispatches per type.
type commandCounter struct {
	counts map[CommandType]int
	order  []CommandType
}

func newCommandCounter() *commandCounter {
	return &commandCounter{counts: make(map[CommandType]int)}
}

func (c *commandCounter) note(t CommandType) {
	c.counts[t]++
	c.order = append(c.order, t)
}

func (c *commandCounter) PushTransform(PushTransformCmd)                 { c.note(CmdPushTransform) }
func (c *commandCounter) PopTransform(PopTransformCmd)                   { c.note(CmdPopTransform) }
func (c *commandCounter) PushClip(PushClipCmd)                           { c.note(CmdPushClip) }
func (c *commandCounter) PopClip(PopClipCmd)                             { c.note(CmdPopClip) }
func (c *commandCounter) PushOpacity(PushOpacityCmd)                     { c.note(CmdPushOpacity) }
func (c *commandCounter) PopOpacity(PopOpacityCmd)                       { c.note(CmdPopOpacity) }
func (c *commandCounter) PushBlendMode(PushBlendModeCmd)                 { c.note(CmdPushBlendMode) }
func (c *commandCounter) PopBlendMode(PopBlendModeCmd)                   { c.note(CmdPopBlendMode) }
func (c *commandCounter) FillPath(FillPathCmd)                           { c.note(CmdFillPath) }
func (c *commandCounter) StrokePath(StrokePathCmd)                       { c.note(CmdStrokePath) }
func (c *commandCounter) FillRect(FillRectCmd)                           { c.note(CmdFillRect) }
func (c *commandCounter) StrokeRect(StrokeRectCmd)                       { c.note(CmdStrokeRect) }
func (c *commandCounter) FillCircle(FillCircleCmd)                       { c.note(CmdFillCircle) }
func (c *commandCounter) StrokeCircle(StrokeCircleCmd)                   { c.note(CmdStrokeCircle) }
func (c *commandCounter) DrawText(DrawTextCmd)                           { c.note(CmdDrawText) }
func (c *commandCounter) DrawImage(DrawImageCmd)                         { c.note(CmdDrawImage) }
func (c *commandCounter) DrawShadow(DrawShadowCmd)                       { c.note(CmdDrawShadow) }
func (c *commandCounter) DrawInnerShadow(DrawInnerShadowCmd)             { c.note(CmdDrawInnerShadow) }
func (c *commandCounter) DrawCircleShadow(DrawCircleShadowCmd)           { c.note(CmdDrawCircleShadow) }
func (c *commandCounter) DrawCircleInnerShadow(DrawCircleInnerShadowCmd) { c.note(CmdDrawCircleInnerShadow) }
func (c *commandCounter) SetCamera(SetCameraCmd)                         { c.note(CmdSetCamera) }
func (c *commandCounter) DrawMesh(DrawMeshCmd)                           { c.note(CmdDrawMesh) }
func (c *commandCounter) DrawMeshInstanced(DrawMeshInstancedCmd)         { c.note(CmdDrawMeshInstanced) }
func (c *commandCounter) AddLight(AddLightCmd)                           { c.note(CmdAddLight) }
func (c *commandCounter) SetEnvironment(SetEnvironmentCmd)               { c.note(CmdSetEnvironment) }
func (c *commandCounter) PushLayer(PushLayerCmd)                         { c.note(CmdPushLayer) }
func (c *commandCounter) PopLayer(PopLayerCmd)                           { c.note(CmdPopLayer) }
func (c *commandCounter) SampleLayer(SampleLayerCmd)                     { c.note(CmdSampleLayer) }

func TestReplayPreservesOrder(t *testing.T) {
	r := newTestRecording()
	r.PushOpacity(0.5)
	r.FillRect(blinc.Rect{0, 0, 5, 5}, blinc.CornerRadius{}, blinc.Solid(blinc.Black))
	r.DrawText("x", blinc.Point{}, blinc.DefaultTextStyle())
	r.PopOpacity()

	counter := newCommandCounter()
	r.Replay(counter)

	want := []CommandType{CmdPushOpacity, CmdFillRect, CmdDrawText, CmdPopOpacity}
	if len(counter.order) != len(want) {
		t.Fatalf("replayed %d commands, want %d", len(counter.order), len(want))
	}
	for i, got := range counter.order {
		if got != want[i] {
			t.Errorf("replay %d = %v, want %v", i, got, want[i])
		}
	}
}
