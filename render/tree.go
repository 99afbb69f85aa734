package render

import (
	"github.com/gogpu/blinc"
	"github.com/gogpu/blinc/text"
)

// NodeID identifies a node in the host's layout tree.
type NodeID uint64

// Motion carries per-node animation state sampled for the current
// frame. The zero value is not the identity; use IdentityMotion.
type Motion struct {
	Translation blinc.Point
	Opacity     float32
}

// IdentityMotion returns a Motion that leaves a node unchanged.
func IdentityMotion() Motion {
	return Motion{Opacity: 1}
}

// RenderTree is the host-side view of a laid-out frame. The walker
// only reads it; positions are in layout units and get scaled to
// device pixels by ScaleFactor during collection.
type RenderTree interface {
	// Root returns the tree's root node.
	Root() NodeID

	// Children returns the node's children in paint order.
	Children(NodeID) []NodeID

	// Bounds returns the node's rectangle given its parent's
	// accumulated offset.
	Bounds(node NodeID, parentOffset blinc.Point) blinc.Rect

	// Node returns the visual description attached to the node.
	Node(NodeID) RenderNode

	// ScrollOffset returns the offset the node applies to its
	// children, typically from a scroll container.
	ScrollOffset(NodeID) blinc.Point

	// Motion returns the node's animation state for this frame.
	Motion(NodeID) Motion

	// ScaleFactor converts layout units to device pixels.
	ScaleFactor() float32
}

// LayerClass partitions primitives and images around glass: content
// behind glass is background, glass surfaces form their own class,
// and everything painted on top is foreground. The zero value is
// ClassBackground; frames without glass ignore the class entirely.
type LayerClass uint8

const (
	ClassBackground LayerClass = iota
	ClassGlass
	ClassForeground
)

// MaterialKind selects how a node's rectangle is filled.
type MaterialKind uint8

const (
	MaterialSolid MaterialKind = iota
	MaterialGlass
	MaterialBlur
)

// Material describes a node's fill and optional stroke.
type Material struct {
	Kind         MaterialKind
	Shape        PrimitiveKind
	Color        blinc.Color
	CornerRadius float32

	// StrokeWidth > 0 turns the fill into an outline.
	StrokeWidth float32

	// Glass is read when Kind is MaterialGlass.
	Glass blinc.GlassBrush

	// Blur is read when Kind is MaterialBlur.
	Blur blinc.BlurBrush
}

// TextSpec attaches text content to a node. The node's bounds give
// the line box; VAlign picks how the baseline is derived from it.
type TextSpec struct {
	Content       string
	FontSize      float32
	Color         blinc.Color
	VAlign        text.VerticalAlign
	Underline     bool
	Strikethrough bool
}

// ImageSpec attaches an image to a node. Source is an opaque key the
// configured ImageLoader understands.
type ImageSpec struct {
	Source   string
	Fit      blinc.ImageFit
	Position blinc.ImagePosition
	Opacity  float32
	Tint     *blinc.Color
	Class    LayerClass
}

// RenderNode is everything the walker reads off a single tree node.
// The zero value paints nothing and changes no walker state.
type RenderNode struct {
	Material *Material
	Text     *TextSpec
	Image    *ImageSpec

	// Clip, when set, clips the node and its subtree. The rect is
	// relative to the node's own origin.
	Clip *blinc.Rect

	// IsStack assigns each child its index as a z-layer, so later
	// siblings composite atomically above earlier ones.
	IsStack bool

	// ZLayer, when nonzero, moves the subtree to an explicit
	// z-layer.
	ZLayer int

	Class LayerClass
}

// RenderState supplies transient per-frame overlays drawn above all
// tree content in a final no-clear pass.
type RenderState interface {
	Overlays() []Overlay
}

// Overlay is a sealed union of overlay kinds.
type Overlay interface {
	isOverlay()
}

// CursorOverlay draws a text caret. A cursor with Opacity <= 0 is
// skipped, which is how blink animations hide it.
type CursorOverlay struct {
	Position blinc.Point
	Size     blinc.Size
	Color    blinc.Color
	Opacity  float32
}

// SelectionOverlay highlights a set of rectangles.
type SelectionOverlay struct {
	Rects []blinc.Rect
	Color blinc.Color
}

// FocusRingOverlay outlines the focused element.
type FocusRingOverlay struct {
	Position  blinc.Point
	Size      blinc.Size
	Radius    float32
	Color     blinc.Color
	Thickness float32
}

func (CursorOverlay) isOverlay()    {}
func (SelectionOverlay) isOverlay() {}
func (FocusRingOverlay) isOverlay() {}
