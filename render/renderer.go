package render

import (
	"github.com/gogpu/blinc"
	"github.com/gogpu/blinc/text"
)

// ImageHandle is a backend-owned uploaded image.
type ImageHandle interface {
	Width() uint32
	Height() uint32
}

// PositionedGlyph is one glyph placed at its baseline pen position in
// device pixels. Rune keys the backend's rasterizer cache.
type PositionedGlyph struct {
	X, Y   float32
	Rune   rune
	Source *text.Source
	Size   float32
	Color  blinc.Color

	// Clip is {minX, minY, maxX, maxY} in device pixels.
	Clip [4]float32
}

// DecorationQuad is one underline or strikethrough bar.
type DecorationQuad struct {
	X, Y, W, H float32
	Color      blinc.Color
	Clip       [4]float32
}

// Renderer is the GPU backend driven by RenderContext. Calls between
// Begin and End record passes against the frame target in order; End
// submits them.
type Renderer interface {
	// Begin starts a frame against a target of the given size.
	Begin(width, height uint32) error

	// DrawPrimitives draws solid primitives, optionally clearing the
	// target first. An empty list with clear still clears.
	DrawPrimitives(prims []Primitive, clear bool) error

	// DrawForeground draws primitives with multisampling when the
	// backend has it, compositing over existing content.
	DrawForeground(prims []Primitive) error

	// CaptureBackdrop snapshots the target into a half-resolution
	// backdrop for glass sampling.
	CaptureBackdrop() error

	// DrawGlass draws glass primitives sampling the captured
	// backdrop.
	DrawGlass(prims []Primitive) error

	// DrawImage draws one uploaded image per the element's fit and
	// position.
	DrawImage(handle ImageHandle, elem ImageElement) error

	// DrawGlyphs draws positioned glyphs from the backend's atlas.
	DrawGlyphs(glyphs []PositionedGlyph) error

	// DrawDecorations draws underline and strikethrough bars.
	DrawDecorations(quads []DecorationQuad) error

	// End submits the frame and waits for completion.
	End() error

	// Poll gives the device a chance to run callbacks.
	Poll()

	// BackdropSize returns the current backdrop dimensions, zero
	// before the first capture.
	BackdropSize() (uint32, uint32)

	// UploadImage creates a GPU image from RGBA pixels.
	UploadImage(key string, pixels []byte, width, height uint32) (ImageHandle, error)

	// DestroyImage releases an uploaded image.
	DestroyImage(handle ImageHandle)
}
