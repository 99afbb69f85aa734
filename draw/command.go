// Package draw provides the drawing-context abstraction used by layers and
// the compositor.
//
// A DrawContext is a stateful recorder with four independently nestable
// stacks (transform, clip, opacity, blend mode). Draw calls are recorded as
// typed commands, not executed against the current stack state: consumers
// apply stack state at replay time, which decouples call sites from deferred
// GPU submission.
//
// Commands capture all drawing operations:
//   - State commands (push/pop of transform, clip, opacity, blend mode)
//   - 2D drawing (fill/stroke of paths, rects and circles, text, images,
//     drop and inner shadows)
//   - 3D drawing (camera, meshes, lights, environment)
//   - Layer operations (push/pop/sample)
//
// The Recording implementation also hosts the SDF sub-builder, which lowers
// recorded distance-field shapes to concrete fill/stroke commands.
package draw

import "github.com/gogpu/blinc"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdPushTransform CommandType = iota
	CmdPopTransform
	CmdPushClip
	CmdPopClip
	CmdPushOpacity
	CmdPopOpacity
	CmdPushBlendMode
	CmdPopBlendMode

	// 2D drawing commands
	CmdFillPath
	CmdStrokePath
	CmdFillRect
	CmdStrokeRect
	CmdFillCircle
	CmdStrokeCircle
	CmdDrawText
	CmdDrawImage
	CmdDrawShadow
	CmdDrawInnerShadow
	CmdDrawCircleShadow
	CmdDrawCircleInnerShadow

	// 3D drawing commands
	CmdSetCamera
	CmdDrawMesh
	CmdDrawMeshInstanced
	CmdAddLight
	CmdSetEnvironment

	// Layer commands
	CmdPushLayer
	CmdPopLayer
	CmdSampleLayer
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdPushTransform:         "PushTransform",
	CmdPopTransform:          "PopTransform",
	CmdPushClip:              "PushClip",
	CmdPopClip:               "PopClip",
	CmdPushOpacity:           "PushOpacity",
	CmdPopOpacity:            "PopOpacity",
	CmdPushBlendMode:         "PushBlendMode",
	CmdPopBlendMode:          "PopBlendMode",
	CmdFillPath:              "FillPath",
	CmdStrokePath:            "StrokePath",
	CmdFillRect:              "FillRect",
	CmdStrokeRect:            "StrokeRect",
	CmdFillCircle:            "FillCircle",
	CmdStrokeCircle:          "StrokeCircle",
	CmdDrawText:              "DrawText",
	CmdDrawImage:             "DrawImage",
	CmdDrawShadow:            "DrawShadow",
	CmdDrawInnerShadow:       "DrawInnerShadow",
	CmdDrawCircleShadow:      "DrawCircleShadow",
	CmdDrawCircleInnerShadow: "DrawCircleInnerShadow",
	CmdSetCamera:             "SetCamera",
	CmdDrawMesh:              "DrawMesh",
	CmdDrawMeshInstanced:     "DrawMeshInstanced",
	CmdAddLight:              "AddLight",
	CmdSetEnvironment:        "SetEnvironment",
	CmdPushLayer:             "PushLayer",
	CmdPopLayer:              "PopLayer",
	CmdSampleLayer:           "SampleLayer",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded commands.
// Sequence order is significant: later commands may occlude or blend over
// earlier ones, and replay must preserve the exact recorded order.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// State commands
// --------------------------------------------------------------------------

// PushTransformCmd pushes a transform onto the transform stack.
type PushTransformCmd struct {
	Transform blinc.Affine2D
}

func (PushTransformCmd) Type() CommandType { return CmdPushTransform }

// PopTransformCmd pops the transform stack.
type PopTransformCmd struct{}

func (PopTransformCmd) Type() CommandType { return CmdPopTransform }

// PushClipCmd pushes a clip shape.
type PushClipCmd struct {
	Shape blinc.ClipShape
}

func (PushClipCmd) Type() CommandType { return CmdPushClip }

// PopClipCmd pops the clip stack.
type PopClipCmd struct{}

func (PopClipCmd) Type() CommandType { return CmdPopClip }

// PushOpacityCmd pushes an opacity multiplier.
type PushOpacityCmd struct {
	Opacity float32
}

func (PushOpacityCmd) Type() CommandType { return CmdPushOpacity }

// PopOpacityCmd pops the opacity stack.
type PopOpacityCmd struct{}

func (PopOpacityCmd) Type() CommandType { return CmdPopOpacity }

// PushBlendModeCmd pushes a blend mode.
type PushBlendModeCmd struct {
	Mode blinc.BlendMode
}

func (PushBlendModeCmd) Type() CommandType { return CmdPushBlendMode }

// PopBlendModeCmd pops the blend-mode stack.
type PopBlendModeCmd struct{}

func (PopBlendModeCmd) Type() CommandType { return CmdPopBlendMode }

// --------------------------------------------------------------------------
// 2D drawing commands
// --------------------------------------------------------------------------

// FillPathCmd fills a path with a brush.
type FillPathCmd struct {
	Path  *blinc.Path
	Brush blinc.Brush
}

func (FillPathCmd) Type() CommandType { return CmdFillPath }

// StrokePathCmd strokes a path.
type StrokePathCmd struct {
	Path   *blinc.Path
	Stroke blinc.Stroke
	Brush  blinc.Brush
}

func (StrokePathCmd) Type() CommandType { return CmdStrokePath }

// FillRectCmd fills a (possibly rounded) rectangle.
type FillRectCmd struct {
	Rect   blinc.Rect
	Radius blinc.CornerRadius
	Brush  blinc.Brush
}

func (FillRectCmd) Type() CommandType { return CmdFillRect }

// StrokeRectCmd strokes a (possibly rounded) rectangle.
type StrokeRectCmd struct {
	Rect   blinc.Rect
	Radius blinc.CornerRadius
	Stroke blinc.Stroke
	Brush  blinc.Brush
}

func (StrokeRectCmd) Type() CommandType { return CmdStrokeRect }

// FillCircleCmd fills a circle.
type FillCircleCmd struct {
	Center blinc.Point
	Radius float32
	Brush  blinc.Brush
}

func (FillCircleCmd) Type() CommandType { return CmdFillCircle }

// StrokeCircleCmd strokes a circle.
type StrokeCircleCmd struct {
	Center blinc.Point
	Radius float32
	Stroke blinc.Stroke
	Brush  blinc.Brush
}

func (StrokeCircleCmd) Type() CommandType { return CmdStrokeCircle }

// DrawTextCmd draws a text run at an origin.
type DrawTextCmd struct {
	Text   string
	Origin blinc.Point
	Style  blinc.TextStyle
}

func (DrawTextCmd) Type() CommandType { return CmdDrawText }

// ImageOptions modifies an image draw.
type ImageOptions struct {
	// SourceRect selects a sub-region of the image; nil draws all of it.
	SourceRect *blinc.Rect
	// Tint is multiplied with the image; nil means untinted.
	Tint *blinc.Color
	// Opacity of the draw (0-1).
	Opacity float32
}

// DefaultImageOptions returns fully opaque, untinted, whole-image options.
func DefaultImageOptions() ImageOptions { return ImageOptions{Opacity: 1} }

// ImageID is a handle to an image registered with the rendering backend.
type ImageID uint64

// DrawImageCmd draws an image into a destination rectangle.
type DrawImageCmd struct {
	Image   ImageID
	Rect    blinc.Rect
	Options ImageOptions
}

func (DrawImageCmd) Type() CommandType { return CmdDrawImage }

// DrawShadowCmd draws a drop shadow for a rounded rectangle.
type DrawShadowCmd struct {
	Rect   blinc.Rect
	Radius blinc.CornerRadius
	Shadow blinc.Shadow
}

func (DrawShadowCmd) Type() CommandType { return CmdDrawShadow }

// DrawInnerShadowCmd draws an inner shadow inside a rounded rectangle.
type DrawInnerShadowCmd struct {
	Rect   blinc.Rect
	Radius blinc.CornerRadius
	Shadow blinc.Shadow
}

func (DrawInnerShadowCmd) Type() CommandType { return CmdDrawInnerShadow }

// DrawCircleShadowCmd draws a radially symmetric drop shadow for a circle.
type DrawCircleShadowCmd struct {
	Center blinc.Point
	Radius float32
	Shadow blinc.Shadow
}

func (DrawCircleShadowCmd) Type() CommandType { return CmdDrawCircleShadow }

// DrawCircleInnerShadowCmd draws an inner shadow inside a circle.
type DrawCircleInnerShadowCmd struct {
	Center blinc.Point
	Radius float32
	Shadow blinc.Shadow
}

func (DrawCircleInnerShadowCmd) Type() CommandType { return CmdDrawCircleInnerShadow }

// --------------------------------------------------------------------------
// 3D drawing commands
// --------------------------------------------------------------------------

// SetCameraCmd sets the active 3D camera.
type SetCameraCmd struct {
	Camera blinc.Camera
}

func (SetCameraCmd) Type() CommandType { return CmdSetCamera }

// DrawMeshCmd draws one mesh with a material and transform.
type DrawMeshCmd struct {
	Mesh      blinc.MeshID
	Material  blinc.MaterialID
	Transform blinc.Mat4
}

func (DrawMeshCmd) Type() CommandType { return CmdDrawMesh }

// DrawMeshInstancedCmd draws many instances of one mesh.
type DrawMeshInstancedCmd struct {
	Mesh      blinc.MeshID
	Instances []blinc.MeshInstance
}

func (DrawMeshInstancedCmd) Type() CommandType { return CmdDrawMeshInstanced }

// AddLightCmd adds a light to the 3D scene.
type AddLightCmd struct {
	Light blinc.Light
}

func (AddLightCmd) Type() CommandType { return CmdAddLight }

// SetEnvironmentCmd sets image-based lighting for the 3D scene.
type SetEnvironmentCmd struct {
	Environment blinc.Environment
}

func (SetEnvironmentCmd) Type() CommandType { return CmdSetEnvironment }

// --------------------------------------------------------------------------
// Layer commands
// --------------------------------------------------------------------------

// LayerConfig configures an offscreen layer pushed by PushLayerCmd.
type LayerConfig struct {
	// ID tags the layer for later SampleLayer calls; zero means untagged.
	ID blinc.LayerID
	// Position in viewport coordinates; nil inherits the current origin.
	Position *blinc.Point
	// Size of the layer; nil inherits from the parent.
	Size *blinc.Size
	// BlendMode used when the layer is composited into its parent.
	BlendMode blinc.BlendMode
	// Opacity applied at composite time (0-1).
	Opacity float32
	// Depth enables a depth buffer for 3D content inside the layer.
	Depth bool
}

// PushLayerCmd begins an offscreen layer.
type PushLayerCmd struct {
	Config LayerConfig
}

func (PushLayerCmd) Type() CommandType { return CmdPushLayer }

// PopLayerCmd ends the current offscreen layer and composites it.
type PopLayerCmd struct{}

func (PopLayerCmd) Type() CommandType { return CmdPopLayer }

// SampleLayerCmd copies a region of a previously rendered layer.
type SampleLayerCmd struct {
	ID         blinc.LayerID
	SourceRect blinc.Rect
	DestRect   blinc.Rect
}

func (SampleLayerCmd) Type() CommandType { return CmdSampleLayer }
