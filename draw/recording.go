package draw

import "github.com/gogpu/blinc"

// Recording is a DrawContext that records commands for later replay.
//
// The transform and opacity stacks always hold at least their root entry
// (identity, 1.0); popping below depth 1 is a silent no-op. State pushes and
// pops are themselves recorded so that replay reproduces the stack machine
// exactly.
type Recording struct {
	commands       []Command
	transformStack []blinc.Affine2D
	opacityStack   []float32
	blendModeStack []blinc.BlendMode
	clipDepth      int
	viewport       blinc.Size
	is3D           bool
}

var _ DrawContext = (*Recording)(nil)

// NewRecording creates a recording context for the given viewport size.
func NewRecording(viewport blinc.Size) *Recording {
	return &Recording{
		transformStack: []blinc.Affine2D{blinc.AffineIdentity()},
		opacityStack:   []float32{1},
		blendModeStack: []blinc.BlendMode{blinc.BlendNormal},
		viewport:       viewport,
	}
}

// Commands returns the recorded command sequence in call order.
// The slice is owned by the recording; callers must not modify it.
func (r *Recording) Commands() []Command { return r.commands }

// TakeCommands returns the recorded commands and leaves the recording empty.
func (r *Recording) TakeCommands() []Command {
	cmds := r.commands
	r.commands = nil
	return cmds
}

// Clear drops all recorded commands and resets the state stacks to their
// roots.
func (r *Recording) Clear() {
	r.commands = r.commands[:0]
	r.transformStack = append(r.transformStack[:0], blinc.AffineIdentity())
	r.opacityStack = append(r.opacityStack[:0], 1)
	r.blendModeStack = append(r.blendModeStack[:0], blinc.BlendNormal)
	r.clipDepth = 0
}

func (r *Recording) record(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// PushTransform implements DrawContext.
func (r *Recording) PushTransform(t blinc.Affine2D) {
	r.record(PushTransformCmd{Transform: t})
	r.transformStack = append(r.transformStack, t)
}

// PopTransform implements DrawContext. Popping below the root identity is a
// no-op on the stack, but the pop is still recorded for replay symmetry.
func (r *Recording) PopTransform() {
	r.record(PopTransformCmd{})
	if len(r.transformStack) > 1 {
		r.transformStack = r.transformStack[:len(r.transformStack)-1]
	}
}

// CurrentTransform implements DrawContext.
func (r *Recording) CurrentTransform() blinc.Affine2D {
	return r.transformStack[len(r.transformStack)-1]
}

// PushClip implements DrawContext.
func (r *Recording) PushClip(shape blinc.ClipShape) {
	r.record(PushClipCmd{Shape: shape})
	r.clipDepth++
}

// PopClip implements DrawContext.
func (r *Recording) PopClip() {
	r.record(PopClipCmd{})
	if r.clipDepth > 0 {
		r.clipDepth--
	}
}

// ClipDepth returns the current clip nesting depth.
func (r *Recording) ClipDepth() int { return r.clipDepth }

// PushOpacity implements DrawContext. The stacked value is the product of
// the current top and the pushed opacity, so visible opacity never
// increases along a push chain.
func (r *Recording) PushOpacity(opacity float32) {
	r.record(PushOpacityCmd{Opacity: opacity})
	current := r.opacityStack[len(r.opacityStack)-1]
	r.opacityStack = append(r.opacityStack, current*opacity)
}

// PopOpacity implements DrawContext. The exact prior stacked value is
// restored, never recomputed.
func (r *Recording) PopOpacity() {
	r.record(PopOpacityCmd{})
	if len(r.opacityStack) > 1 {
		r.opacityStack = r.opacityStack[:len(r.opacityStack)-1]
	}
}

// CurrentOpacity implements DrawContext.
func (r *Recording) CurrentOpacity() float32 {
	return r.opacityStack[len(r.opacityStack)-1]
}

// PushBlendMode implements DrawContext.
func (r *Recording) PushBlendMode(mode blinc.BlendMode) {
	r.record(PushBlendModeCmd{Mode: mode})
	r.blendModeStack = append(r.blendModeStack, mode)
}

// PopBlendMode implements DrawContext.
func (r *Recording) PopBlendMode() {
	r.record(PopBlendModeCmd{})
	if len(r.blendModeStack) > 1 {
		r.blendModeStack = r.blendModeStack[:len(r.blendModeStack)-1]
	}
}

// CurrentBlendMode implements DrawContext.
func (r *Recording) CurrentBlendMode() blinc.BlendMode {
	return r.blendModeStack[len(r.blendModeStack)-1]
}

// FillPath implements DrawContext.
func (r *Recording) FillPath(path *blinc.Path, brush blinc.Brush) {
	r.record(FillPathCmd{Path: path, Brush: brush})
}

// StrokePath implements DrawContext.
func (r *Recording) StrokePath(path *blinc.Path, stroke blinc.Stroke, brush blinc.Brush) {
	r.record(StrokePathCmd{Path: path, Stroke: stroke, Brush: brush})
}

// FillRect implements DrawContext.
func (r *Recording) FillRect(rect blinc.Rect, radius blinc.CornerRadius, brush blinc.Brush) {
	r.record(FillRectCmd{Rect: rect, Radius: radius, Brush: brush})
}

// StrokeRect implements DrawContext.
func (r *Recording) StrokeRect(rect blinc.Rect, radius blinc.CornerRadius, stroke blinc.Stroke, brush blinc.Brush) {
	r.record(StrokeRectCmd{Rect: rect, Radius: radius, Stroke: stroke, Brush: brush})
}

// FillRectWithBorder lowers to a fill followed by a stroke with the
// widest side, so the command set stays closed.
func (r *Recording) FillRectWithBorder(rect blinc.Rect, radius blinc.CornerRadius, brush blinc.Brush, widths [4]float32, borderColor blinc.Color) {
	r.FillRect(rect, radius, brush)
	var max float32
	for _, w := range widths {
		if w > max {
			max = w
		}
	}
	if max > 0 {
		r.StrokeRect(rect, radius, blinc.StrokeWidth(max), blinc.SolidBrush{Color: borderColor})
	}
}

// SetZLayer is a no-op; recordings carry no layering state. Stack
// ordering is decided where the recording is replayed.
func (r *Recording) SetZLayer(layer int) {}

// ZLayer implements DrawContext.
func (r *Recording) ZLayer() int { return 0 }

// FillCircle implements DrawContext.
func (r *Recording) FillCircle(center blinc.Point, radius float32, brush blinc.Brush) {
	r.record(FillCircleCmd{Center: center, Radius: radius, Brush: brush})
}

// StrokeCircle implements DrawContext.
func (r *Recording) StrokeCircle(center blinc.Point, radius float32, stroke blinc.Stroke, brush blinc.Brush) {
	r.record(StrokeCircleCmd{Center: center, Radius: radius, Stroke: stroke, Brush: brush})
}

// DrawText implements DrawContext.
func (r *Recording) DrawText(text string, origin blinc.Point, style blinc.TextStyle) {
	r.record(DrawTextCmd{Text: text, Origin: origin, Style: style})
}

// DrawImage implements DrawContext.
func (r *Recording) DrawImage(image ImageID, rect blinc.Rect, options ImageOptions) {
	r.record(DrawImageCmd{Image: image, Rect: rect, Options: options})
}

// DrawShadow implements DrawContext.
func (r *Recording) DrawShadow(rect blinc.Rect, radius blinc.CornerRadius, shadow blinc.Shadow) {
	r.record(DrawShadowCmd{Rect: rect, Radius: radius, Shadow: shadow})
}

// DrawInnerShadow implements DrawContext.
func (r *Recording) DrawInnerShadow(rect blinc.Rect, radius blinc.CornerRadius, shadow blinc.Shadow) {
	r.record(DrawInnerShadowCmd{Rect: rect, Radius: radius, Shadow: shadow})
}

// DrawCircleShadow implements DrawContext.
func (r *Recording) DrawCircleShadow(center blinc.Point, radius float32, shadow blinc.Shadow) {
	r.record(DrawCircleShadowCmd{Center: center, Radius: radius, Shadow: shadow})
}

// DrawCircleInnerShadow implements DrawContext.
func (r *Recording) DrawCircleInnerShadow(center blinc.Point, radius float32, shadow blinc.Shadow) {
	r.record(DrawCircleInnerShadowCmd{Center: center, Radius: radius, Shadow: shadow})
}

// SDFBuild implements DrawContext. See LowerSDF for the lowering rules.
func (r *Recording) SDFBuild(fn func(SdfBuilder)) {
	LowerSDF(r, fn)
}

// SetCamera implements DrawContext and marks the context 3D.
func (r *Recording) SetCamera(camera blinc.Camera) {
	r.record(SetCameraCmd{Camera: camera})
	r.is3D = true
}

// DrawMesh implements DrawContext.
func (r *Recording) DrawMesh(mesh blinc.MeshID, material blinc.MaterialID, transform blinc.Mat4) {
	r.record(DrawMeshCmd{Mesh: mesh, Material: material, Transform: transform})
}

// DrawMeshInstanced implements DrawContext.
func (r *Recording) DrawMeshInstanced(mesh blinc.MeshID, instances []blinc.MeshInstance) {
	copied := make([]blinc.MeshInstance, len(instances))
	copy(copied, instances)
	r.record(DrawMeshInstancedCmd{Mesh: mesh, Instances: copied})
}

// AddLight implements DrawContext.
func (r *Recording) AddLight(light blinc.Light) {
	r.record(AddLightCmd{Light: light})
}

// SetEnvironment implements DrawContext.
func (r *Recording) SetEnvironment(env blinc.Environment) {
	r.record(SetEnvironmentCmd{Environment: env})
}

// BillboardDraw implements DrawContext. The closure draws into an isolated
// sub-recording whose commands are then spliced onto this recording's tail.
func (r *Recording) BillboardDraw(size blinc.Size, transform blinc.Mat4, facing BillboardFacing, fn func(DrawContext)) {
	sub := NewRecording(r.viewport)
	fn(sub)
	r.commands = append(r.commands, sub.commands...)
}

// Viewport3DDraw implements DrawContext. The prior 3D flag is saved and
// restored, not reset, so nested viewports compose.
func (r *Recording) Viewport3DDraw(rect blinc.Rect, camera blinc.Camera, fn func(DrawContext)) {
	was3D := r.is3D
	r.SetCamera(camera)
	fn(r)
	r.is3D = was3D
}

// PushLayer implements DrawContext.
func (r *Recording) PushLayer(config LayerConfig) {
	r.record(PushLayerCmd{Config: config})
}

// PopLayer implements DrawContext.
func (r *Recording) PopLayer() {
	r.record(PopLayerCmd{})
}

// SampleLayer implements DrawContext.
func (r *Recording) SampleLayer(id blinc.LayerID, sourceRect, destRect blinc.Rect) {
	r.record(SampleLayerCmd{ID: id, SourceRect: sourceRect, DestRect: destRect})
}

// ViewportSize implements DrawContext.
func (r *Recording) ViewportSize() blinc.Size { return r.viewport }

// Is3DContext implements DrawContext.
func (r *Recording) Is3DContext() bool { return r.is3D }

// Replay dispatches every recorded command to the visitor in recorded
// order. It is the single replay point; backends implement CommandVisitor
// rather than type-switching on commands themselves.
func (r *Recording) Replay(v CommandVisitor) {
	for _, cmd := range r.commands {
		dispatch(cmd, v)
	}
}

// CommandVisitor receives replayed commands. One method per command type
// keeps additions compiler-enforced for all backends.
type CommandVisitor interface {
	PushTransform(PushTransformCmd)
	PopTransform(PopTransformCmd)
	PushClip(PushClipCmd)
	PopClip(PopClipCmd)
	PushOpacity(PushOpacityCmd)
	PopOpacity(PopOpacityCmd)
	PushBlendMode(PushBlendModeCmd)
	PopBlendMode(PopBlendModeCmd)
	FillPath(FillPathCmd)
	StrokePath(StrokePathCmd)
	FillRect(FillRectCmd)
	StrokeRect(StrokeRectCmd)
	FillCircle(FillCircleCmd)
	StrokeCircle(StrokeCircleCmd)
	DrawText(DrawTextCmd)
	DrawImage(DrawImageCmd)
	DrawShadow(DrawShadowCmd)
	DrawInnerShadow(DrawInnerShadowCmd)
	DrawCircleShadow(DrawCircleShadowCmd)
	DrawCircleInnerShadow(DrawCircleInnerShadowCmd)
	SetCamera(SetCameraCmd)
	DrawMesh(DrawMeshCmd)
	DrawMeshInstanced(DrawMeshInstancedCmd)
	AddLight(AddLightCmd)
	SetEnvironment(SetEnvironmentCmd)
	PushLayer(PushLayerCmd)
	PopLayer(PopLayerCmd)
	SampleLayer(SampleLayerCmd)
}

func dispatch(cmd Command, v CommandVisitor) {
	switch c := cmd.(type) {
	case PushTransformCmd:
		v.PushTransform(c)
	case PopTransformCmd:
		v.PopTransform(c)
	case PushClipCmd:
		v.PushClip(c)
	case PopClipCmd:
		v.PopClip(c)
	case PushOpacityCmd:
		v.PushOpacity(c)
	case PopOpacityCmd:
		v.PopOpacity(c)
	case PushBlendModeCmd:
		v.PushBlendMode(c)
	case PopBlendModeCmd:
		v.PopBlendMode(c)
	case FillPathCmd:
		v.FillPath(c)
	case StrokePathCmd:
		v.StrokePath(c)
	case FillRectCmd:
		v.FillRect(c)
	case StrokeRectCmd:
		v.StrokeRect(c)
	case FillCircleCmd:
		v.FillCircle(c)
	case StrokeCircleCmd:
		v.StrokeCircle(c)
	case DrawTextCmd:
		v.DrawText(c)
	case DrawImageCmd:
		v.DrawImage(c)
	case DrawShadowCmd:
		v.DrawShadow(c)
	case DrawInnerShadowCmd:
		v.DrawInnerShadow(c)
	case DrawCircleShadowCmd:
		v.DrawCircleShadow(c)
	case DrawCircleInnerShadowCmd:
		v.DrawCircleInnerShadow(c)
	case SetCameraCmd:
		v.SetCamera(c)
	case DrawMeshCmd:
		v.DrawMesh(c)
	case DrawMeshInstancedCmd:
		v.DrawMeshInstanced(c)
	case AddLightCmd:
		v.AddLight(c)
	case SetEnvironmentCmd:
		v.SetEnvironment(c)
	case PushLayerCmd:
		v.PushLayer(c)
	case PopLayerCmd:
		v.PopLayer(c)
	case SampleLayerCmd:
		v.SampleLayer(c)
	}
}
