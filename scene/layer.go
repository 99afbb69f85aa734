// Package scene provides the Layer tree and SceneGraph.
//
// All visual content is represented as a Layer: 2D UI primitives, vector
// canvas drawings, 3D scenes, or composition/transformation of other
// layers. Layer is a closed sum over LayerKind; every traversal (counting,
// 3D detection, ID lookup) routes through the single VisitChildren point so
// that adding a kind is a compiler-checked single-point change.
package scene

import (
	"github.com/gogpu/blinc"
	"github.com/gogpu/blinc/draw"
)

// LayerKind tags the variant of a Layer.
type LayerKind uint8

const (
	// KindEmpty is a placeholder layer with no content.
	KindEmpty LayerKind = iota
	// KindUi is an SDF-rendered UI node tree.
	KindUi
	// KindCanvas2D is a 2D canvas with recorded vector drawing.
	KindCanvas2D
	// KindScene3D is a 3D scene with meshes, materials and lighting.
	KindScene3D
	// KindStack composites child layers in order.
	KindStack
	// KindTransform2D applies a 2D transform to its child.
	KindTransform2D
	// KindTransform3D applies a 3D transform to its child.
	KindTransform3D
	// KindClip masks its child with a clip shape.
	KindClip
	// KindOpacity applies an opacity multiplier to its child.
	KindOpacity
	// KindOffscreen renders its child to an offscreen texture with
	// optional post effects.
	KindOffscreen
	// KindBillboard places 2D content in 3D space.
	KindBillboard
	// KindViewport3D embeds a 3D scene in 2D layout.
	KindViewport3D
	// KindPortal references another layer's render output.
	KindPortal
)

var layerKindNames = [...]string{
	KindEmpty:       "Empty",
	KindUi:          "Ui",
	KindCanvas2D:    "Canvas2D",
	KindScene3D:     "Scene3D",
	KindStack:       "Stack",
	KindTransform2D: "Transform2D",
	KindTransform3D: "Transform3D",
	KindClip:        "Clip",
	KindOpacity:     "Opacity",
	KindOffscreen:   "Offscreen",
	KindBillboard:   "Billboard",
	KindViewport3D:  "Viewport3D",
	KindPortal:      "Portal",
}

// String returns the kind name.
func (k LayerKind) String() string {
	if int(k) < len(layerKindNames) {
		return layerKindNames[k]
	}
	return "Unknown"
}

// PointerEvents selects hit-testing behavior for a layer.
type PointerEvents uint8

const (
	// PointerAuto hit-tests normally.
	PointerAuto PointerEvents = iota
	// PointerNone makes the layer transparent to pointer events.
	PointerNone
	// PointerOnly makes the layer hit-testable but not rendered.
	PointerOnly
)

// CachePolicy controls offscreen caching of a canvas layer.
type CachePolicy uint8

const (
	// CacheNone always re-renders.
	CacheNone CachePolicy = iota
	// CacheContent caches until the content changes.
	CacheContent
	// CacheManual caches until explicit invalidation.
	CacheManual
)

// TextureFormat of an offscreen layer's target.
type TextureFormat uint8

const (
	FormatBGRA8Unorm TextureFormat = iota
	FormatRGBA8Unorm
	FormatRGBA16Float
	FormatRGBA32Float
)

// PostEffectKind tags an Offscreen post-processing effect.
type PostEffectKind uint8

const (
	EffectBlur PostEffectKind = iota
	EffectSaturation
	EffectBrightness
	EffectContrast
	EffectGlassBlur
)

// PostEffect is applied when an offscreen layer is composited.
type PostEffect struct {
	Kind PostEffectKind
	// Radius applies to blur effects.
	Radius float32
	// Factor applies to saturation/brightness/contrast.
	Factor float32
	// Tint applies to glass blur.
	Tint blinc.Color
}

// UiNode references a node in the external widget tree.
type UiNode struct {
	ID uint64
}

// LayerProperties are common to all layers.
type LayerProperties struct {
	// ID identifies the layer for Portal/FindLayer lookups; zero means
	// unassigned.
	ID blinc.LayerID
	// Visible false skips rendering entirely.
	Visible bool
	// PointerEvents selects hit-test behavior.
	PointerEvents PointerEvents
	// Order is a render-order hint within the same Z level.
	Order int32
	// Name is an optional debug label.
	Name string
}

// NewLayerProperties returns visible default properties.
func NewLayerProperties() LayerProperties {
	return LayerProperties{Visible: true}
}

// Layer is one node of the scene tree. Kind selects the variant; only the
// fields that variant names are meaningful. Non-leaf variants exclusively
// own their children: Stack owns Children, the single-child variants
// (Transform2D/3D, Clip, Opacity, Offscreen, Billboard, Viewport3D) own
// Child.
type Layer struct {
	Kind  LayerKind
	Props LayerProperties

	// Node backs Ui layers.
	Node UiNode

	// Size backs Canvas2D and Offscreen layers.
	Size blinc.Size
	// Recording backs Canvas2D and Scene3D layers.
	Recording *draw.Recording
	// CachePolicy applies to Canvas2D layers.
	CachePolicy CachePolicy

	// Viewport backs Scene3D and Viewport3D layers.
	Viewport blinc.Rect
	// Camera backs Scene3D layers.
	Camera blinc.Camera
	// Environment backs Scene3D layers; nil means none.
	Environment *blinc.Environment

	// Children backs Stack layers.
	Children []*Layer
	// BlendMode applies to Stack layers.
	BlendMode blinc.BlendMode

	// Child backs all single-child variants.
	Child *Layer

	// Transform2D backs Transform2D layers.
	Transform2D blinc.Affine2D
	// Transform3D backs Transform3D and Billboard layers.
	Transform3D blinc.Mat4
	// Facing backs Billboard layers.
	Facing draw.BillboardFacing

	// Clip backs Clip layers.
	Clip blinc.ClipShape

	// Opacity backs Opacity layers.
	Opacity float32

	// Format and Effects back Offscreen layers.
	Format  TextureFormat
	Effects []PostEffect

	// Source, SampleRect and DestRect back Portal layers.
	Source     blinc.LayerID
	SampleRect blinc.Rect
	DestRect   blinc.Rect
}

// Empty returns a placeholder layer.
func Empty() *Layer {
	return &Layer{Kind: KindEmpty, Props: NewLayerProperties()}
}

// Ui returns an SDF-rendered UI layer for an external widget node.
func Ui(node UiNode) *Layer {
	return &Layer{Kind: KindUi, Props: NewLayerProperties(), Node: node}
}

// Canvas2D returns a vector canvas layer with recorded drawing.
func Canvas2D(size blinc.Size, rec *draw.Recording) *Layer {
	return &Layer{Kind: KindCanvas2D, Props: NewLayerProperties(), Size: size, Recording: rec}
}

// Scene3D returns a 3D scene layer.
func Scene3D(viewport blinc.Rect, rec *draw.Recording, camera blinc.Camera) *Layer {
	return &Layer{Kind: KindScene3D, Props: NewLayerProperties(), Viewport: viewport, Recording: rec, Camera: camera}
}

// Stack composites the given layers in order.
func Stack(children ...*Layer) *Layer {
	return &Layer{Kind: KindStack, Props: NewLayerProperties(), Children: children}
}

// Transform2D applies a 2D transform to child.
func Transform2D(t blinc.Affine2D, child *Layer) *Layer {
	return &Layer{Kind: KindTransform2D, Props: NewLayerProperties(), Transform2D: t, Child: child}
}

// Transform3D applies a 3D transform to child.
func Transform3D(t blinc.Mat4, child *Layer) *Layer {
	return &Layer{Kind: KindTransform3D, Props: NewLayerProperties(), Transform3D: t, Child: child}
}

// Clip masks child with shape.
func Clip(shape blinc.ClipShape, child *Layer) *Layer {
	return &Layer{Kind: KindClip, Props: NewLayerProperties(), Clip: shape, Child: child}
}

// Opacity applies an opacity multiplier to child.
func Opacity(value float32, child *Layer) *Layer {
	return &Layer{Kind: KindOpacity, Props: NewLayerProperties(), Opacity: value, Child: child}
}

// Offscreen renders child into an offscreen texture.
func Offscreen(size blinc.Size, format TextureFormat, child *Layer, effects ...PostEffect) *Layer {
	return &Layer{Kind: KindOffscreen, Props: NewLayerProperties(), Size: size, Format: format, Child: child, Effects: effects}
}

// Billboard places 2D content in 3D space.
func Billboard(child *Layer, transform blinc.Mat4, facing draw.BillboardFacing) *Layer {
	return &Layer{Kind: KindBillboard, Props: NewLayerProperties(), Child: child, Transform3D: transform, Facing: facing}
}

// Viewport3D embeds a 3D scene in 2D layout. The child should be a Scene3D
// layer.
func Viewport3D(rect blinc.Rect, sceneLayer *Layer) *Layer {
	return &Layer{Kind: KindViewport3D, Props: NewLayerProperties(), Viewport: rect, Child: sceneLayer}
}

// Portal references another layer's render output.
func Portal(source blinc.LayerID, sampleRect, destRect blinc.Rect) *Layer {
	return &Layer{Kind: KindPortal, Props: NewLayerProperties(), Source: source, SampleRect: sampleRect, DestRect: destRect}
}

// ID returns the layer's id, zero when unassigned.
func (l *Layer) ID() blinc.LayerID { return l.Props.ID }

// IsVisible reports whether the layer renders.
func (l *Layer) IsVisible() bool { return l.Props.Visible }

// Is3D reports whether this layer itself introduces 3D content. Viewport3D
// is not 3D by itself; its 3D-ness comes from the embedded scene found by
// traversal.
func (l *Layer) Is3D() bool {
	switch l.Kind {
	case KindScene3D, KindBillboard, KindTransform3D:
		return true
	default:
		return false
	}
}

// Is2D reports whether this layer is 2D content.
func (l *Layer) Is2D() bool {
	switch l.Kind {
	case KindUi, KindCanvas2D, KindTransform2D, KindViewport3D:
		return true
	default:
		return false
	}
}

// VisitChildren calls fn for each direct child, in order. This is the
// single traversal point for the layer sum: Walk, FindLayer, Has3D and
// every other tree operation route through it, so a new kind only needs
// handling here.
func (l *Layer) VisitChildren(fn func(*Layer)) {
	switch l.Kind {
	case KindStack:
		for _, child := range l.Children {
			fn(child)
		}
	case KindTransform2D, KindTransform3D, KindClip, KindOpacity,
		KindOffscreen, KindBillboard, KindViewport3D:
		if l.Child != nil {
			fn(l.Child)
		}
	case KindEmpty, KindUi, KindCanvas2D, KindScene3D, KindPortal:
		// Leaves.
	}
}

// Walk visits the layer and all descendants depth-first pre-order, with the
// depth of each layer (the receiver is depth 0).
func (l *Layer) Walk(fn func(layer *Layer, depth int)) {
	var walk func(layer *Layer, depth int)
	walk = func(layer *Layer, depth int) {
		fn(layer, depth)
		layer.VisitChildren(func(child *Layer) {
			walk(child, depth+1)
		})
	}
	walk(l, 0)
}
