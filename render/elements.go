package render

import (
	"github.com/gogpu/blinc"
	"github.com/gogpu/blinc/text"
)

// TextElement is one text run ready for shaping. Bounds and FontSize
// are already in device pixels.
type TextElement struct {
	Content       string
	Bounds        blinc.Rect
	FontSize      float32
	Color         blinc.Color
	VAlign        text.VerticalAlign
	Underline     bool
	Strikethrough bool
	Opacity       float32
	ZLayer        int
	Clip          blinc.Rect
	HasClip       bool
}

// ImageElement is one image placement in device pixels.
type ImageElement struct {
	Source   string
	Bounds   blinc.Rect
	Fit      blinc.ImageFit
	Position blinc.ImagePosition
	Opacity  float32
	Tint     *blinc.Color
	Class    LayerClass
	ZLayer   int
	Clip     blinc.Rect
	HasClip  bool
}

// FrameContent is the flat result of one tree walk.
type FrameContent struct {
	Batch  PrimitiveBatch
	Texts  []TextElement
	Images []ImageElement
}
