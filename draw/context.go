package draw

import "github.com/gogpu/blinc"

// BillboardFacing controls how billboard content orients toward the camera.
type BillboardFacing uint8

const (
	// FaceCamera rotates the billboard to always face the camera.
	FaceCamera BillboardFacing = iota
	// FaceCameraY rotates only around the vertical axis.
	FaceCameraY
	// FaceFixed keeps the given transform's orientation.
	FaceFixed
)

// DrawContext is the drawing surface handed to layer draw callbacks.
//
// Exactly two implementations exist: the recording context in this package
// and the direct GPU paint context in the render package. All draw calls
// are deferred; the four state stacks nest independently of each other.
//
// Stack discipline is forgiving: popping an empty stack is a silent no-op,
// never a panic, because call sites do not self-track nesting depth.
type DrawContext interface {
	// PushTransform composes a transform for subsequent draws.
	PushTransform(t blinc.Affine2D)
	// PopTransform restores the previous transform. Popping below the
	// root identity is a no-op.
	PopTransform()
	// CurrentTransform returns the top of the transform stack.
	CurrentTransform() blinc.Affine2D

	// PushClip restricts subsequent draws to a shape.
	PushClip(shape blinc.ClipShape)
	// PopClip restores the previous clip.
	PopClip()

	// PushOpacity multiplies subsequent draws' opacity with the current
	// stacked value.
	PushOpacity(opacity float32)
	// PopOpacity restores the exact prior stacked value.
	PopOpacity()
	// CurrentOpacity returns the running opacity product.
	CurrentOpacity() float32

	// PushBlendMode sets the blend mode for subsequent draws.
	PushBlendMode(mode blinc.BlendMode)
	// PopBlendMode restores the previous blend mode.
	PopBlendMode()
	// CurrentBlendMode returns the top of the blend-mode stack.
	CurrentBlendMode() blinc.BlendMode

	// SetZLayer routes subsequent draws to a z-layer, so stacked
	// siblings interleave primitives and text correctly. Contexts
	// without layering ignore it.
	SetZLayer(layer int)
	// ZLayer returns the current z-layer, 0 when unsupported.
	ZLayer() int

	// 2D drawing.
	FillPath(path *blinc.Path, brush blinc.Brush)
	StrokePath(path *blinc.Path, stroke blinc.Stroke, brush blinc.Brush)
	FillRect(rect blinc.Rect, radius blinc.CornerRadius, brush blinc.Brush)
	StrokeRect(rect blinc.Rect, radius blinc.CornerRadius, stroke blinc.Stroke, brush blinc.Brush)
	// FillRectWithBorder fills a rectangle and strokes its border in one
	// call. Widths are per side in top, right, bottom, left order; the
	// stroke uses the widest side, so uneven borders render uniformly.
	FillRectWithBorder(rect blinc.Rect, radius blinc.CornerRadius, brush blinc.Brush, widths [4]float32, borderColor blinc.Color)
	FillCircle(center blinc.Point, radius float32, brush blinc.Brush)
	StrokeCircle(center blinc.Point, radius float32, stroke blinc.Stroke, brush blinc.Brush)
	DrawText(text string, origin blinc.Point, style blinc.TextStyle)
	DrawImage(image ImageID, rect blinc.Rect, options ImageOptions)
	DrawShadow(rect blinc.Rect, radius blinc.CornerRadius, shadow blinc.Shadow)
	DrawInnerShadow(rect blinc.Rect, radius blinc.CornerRadius, shadow blinc.Shadow)
	DrawCircleShadow(center blinc.Point, radius float32, shadow blinc.Shadow)
	DrawCircleInnerShadow(center blinc.Point, radius float32, shadow blinc.Shadow)

	// SDFBuild runs fn against a private shape table, then lowers the
	// recorded shapes to concrete fill/stroke calls in fixed group order:
	// shadows first, then fills, then strokes. Each group preserves its
	// own call order; unsupported shape/operation combinations are
	// silently skipped.
	SDFBuild(fn func(SdfBuilder))

	// 3D drawing.
	SetCamera(camera blinc.Camera)
	DrawMesh(mesh blinc.MeshID, material blinc.MaterialID, transform blinc.Mat4)
	DrawMeshInstanced(mesh blinc.MeshID, instances []blinc.MeshInstance)
	AddLight(light blinc.Light)
	SetEnvironment(env blinc.Environment)

	// BillboardDraw runs fn against an isolated sub-context, then splices
	// its recorded commands onto this context's tail. Billboard content is
	// flattened after everything already recorded, with no implicit
	// isolation boundary; a backend needing true isolation must wrap it in
	// its own layer push.
	BillboardDraw(size blinc.Size, transform blinc.Mat4, facing BillboardFacing, fn func(DrawContext))

	// Viewport3DDraw sets the camera and runs fn with the 3D-context flag
	// set, saving and restoring (not resetting) the prior flag so nested
	// viewports compose.
	Viewport3DDraw(rect blinc.Rect, camera blinc.Camera, fn func(DrawContext))

	// Layer operations.
	PushLayer(config LayerConfig)
	PopLayer()
	SampleLayer(id blinc.LayerID, sourceRect, destRect blinc.Rect)

	// ViewportSize returns the drawable size of the context.
	ViewportSize() blinc.Size
	// Is3DContext reports whether 3D drawing is active.
	Is3DContext() bool
}

// ShapeId is a dense index into a per-SDFBuild shape table, assigned in
// strict call order. References to out-of-range ids silently no-op.
type ShapeId uint32

// SdfBuilder accumulates signed-distance-field shapes and their render
// operations inside a DrawContext.SDFBuild call.
//
// Primitive and combinator methods return the new shape's id; Fill, Stroke
// and Shadow mark a shape for rendering when the build closure returns.
type SdfBuilder interface {
	// Primitives.
	Rect(rect blinc.Rect, radius blinc.CornerRadius) ShapeId
	Circle(center blinc.Point, radius float32) ShapeId
	Ellipse(center blinc.Point, radii blinc.Point) ShapeId
	Line(from, to blinc.Point, width float32) ShapeId
	Arc(center blinc.Point, radius, start, end, width float32) ShapeId
	QuadBezier(p0, p1, p2 blinc.Point, width float32) ShapeId

	// Boolean combination.
	Union(a, b ShapeId) ShapeId
	Subtract(a, b ShapeId) ShapeId
	Intersect(a, b ShapeId) ShapeId
	SmoothUnion(a, b ShapeId, radius float32) ShapeId
	SmoothSubtract(a, b ShapeId, radius float32) ShapeId
	SmoothIntersect(a, b ShapeId, radius float32) ShapeId

	// Modifiers.
	Round(shape ShapeId, radius float32) ShapeId
	Outline(shape ShapeId, width float32) ShapeId
	Offset(shape ShapeId, distance float32) ShapeId

	// Render operations.
	Fill(shape ShapeId, brush blinc.Brush)
	Stroke(shape ShapeId, stroke blinc.Stroke, brush blinc.Brush)
	Shadow(shape ShapeId, shadow blinc.Shadow)
}
