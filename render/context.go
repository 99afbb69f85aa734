package render

import (
	"github.com/gogpu/blinc"
	"github.com/gogpu/blinc/text"
)

// RenderContext drives a Renderer through one frame at a time. It
// owns the image cache, the shaper, and the frame pass ordering; the
// Renderer only knows how to execute individual passes.
type RenderContext struct {
	renderer   Renderer
	images     *imageStore
	shaper     *text.Shaper
	fontSource *text.Source
	metrics    text.DecorationMetrics
	debug      DebugConfig
}

// New wires a RenderContext over a backend.
func New(renderer Renderer, opts ...Option) *RenderContext {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &RenderContext{
		renderer:   renderer,
		images:     newImageStore(cfg.imageCacheCapacity, cfg.imageLoader, renderer.DestroyImage),
		shaper:     text.NewShaper(),
		fontSource: cfg.fontSource,
		metrics:    cfg.metrics,
		debug:      cfg.debug,
	}
}

// Renderer returns the backend, mainly so hosts can reach upload and
// sizing entry points.
func (rc *RenderContext) Renderer() Renderer { return rc.renderer }

// Frame renders one tree snapshot. The pass ordering depends on the
// content: frames with glass take the backdrop path, frames using
// z-layers composite layer by layer, and everything else takes a flat
// single-clear path. State overlays always draw last, over whatever
// the content passes produced, and a failed image or text element
// never fails the frame.
func (rc *RenderContext) Frame(tree RenderTree, state RenderState, width, height uint32) error {
	content := Collect(tree)
	rc.images.preload(content.Images, rc.renderer.UploadImage)
	texts := rc.resolveTexts(content.Texts, width, height)

	if err := rc.renderer.Begin(width, height); err != nil {
		return err
	}

	var err error
	switch {
	case content.Batch.HasGlass():
		err = rc.glassFrame(content, texts)
	case maxZLayer(content, texts) > 0:
		err = rc.layeredFrame(content, texts)
	default:
		err = rc.flatFrame(content, texts)
	}
	if err != nil {
		return err
	}

	if err := rc.renderer.End(); err != nil {
		return err
	}
	rc.renderer.Poll()

	return rc.overlayFrame(state, texts, width, height)
}

// Destroy evicts all cached images, releasing their GPU resources.
func (rc *RenderContext) Destroy() {
	rc.images.close()
}

// glassFrame draws everything behind glass, captures it at half
// resolution, draws the glass surfaces sampling that capture, and
// then layers the remaining content on top.
func (rc *RenderContext) glassFrame(content *FrameContent, texts []shapedText) error {
	r := rc.renderer

	if err := r.DrawPrimitives(content.Batch.ByClass(ClassBackground), true); err != nil {
		return err
	}
	if err := r.CaptureBackdrop(); err != nil {
		return err
	}
	if err := r.DrawGlass(content.Batch.ByClass(ClassGlass)); err != nil {
		return err
	}

	// Background images were part of the capture conceptually but
	// draw after glass so they stay crisp outside glass regions.
	if err := rc.drawImages(content.Images, func(e *ImageElement) bool {
		return e.Class == ClassBackground
	}); err != nil {
		return err
	}
	if err := rc.drawImages(content.Images, func(e *ImageElement) bool {
		return e.Class != ClassBackground
	}); err != nil {
		return err
	}

	if err := r.DrawForeground(content.Batch.ByClass(ClassForeground)); err != nil {
		return err
	}

	if err := rc.drawTexts(texts, func(*shapedText) bool { return true }); err != nil {
		return err
	}
	return rc.drawDecorations(texts, func(*shapedText) bool { return true })
}

// layeredFrame composites z-layers bottom up. Layer zero clears the
// target; each layer draws its primitives, images, glyphs and
// decorations as one atomic group before the next layer starts.
func (rc *RenderContext) layeredFrame(content *FrameContent, texts []shapedText) error {
	max := maxZLayer(content, texts)
	for z := 0; z <= max; z++ {
		if err := rc.renderer.DrawPrimitives(content.Batch.ByZLayer(z), z == 0); err != nil {
			return err
		}
		if err := rc.drawImages(content.Images, func(e *ImageElement) bool {
			return e.ZLayer == z
		}); err != nil {
			return err
		}
		if err := rc.drawTexts(texts, func(t *shapedText) bool { return t.zLayer == z }); err != nil {
			return err
		}
		if err := rc.drawDecorations(texts, func(t *shapedText) bool { return t.zLayer == z }); err != nil {
			return err
		}
	}
	return nil
}

// flatFrame is the fast path for frames with no glass and a single
// z-layer: one clearing primitive pass, then images, glyphs and
// decorations.
func (rc *RenderContext) flatFrame(content *FrameContent, texts []shapedText) error {
	if err := rc.renderer.DrawPrimitives(content.Batch.All(), true); err != nil {
		return err
	}
	if err := rc.drawImages(content.Images, func(*ImageElement) bool { return true }); err != nil {
		return err
	}
	if err := rc.drawTexts(texts, func(*shapedText) bool { return true }); err != nil {
		return err
	}
	return rc.drawDecorations(texts, func(t *shapedText) bool { return t.zLayer == 0 })
}

// overlayFrame draws transient state and debug markers as a final
// no-clear submission over the finished frame.
func (rc *RenderContext) overlayFrame(state RenderState, texts []shapedText, width, height uint32) error {
	var prims []Primitive
	if state != nil {
		for _, ov := range state.Overlays() {
			prims = appendOverlay(prims, ov)
		}
	}
	if rc.debug.enabled() {
		prims = rc.appendDebug(prims, texts)
	}
	if len(prims) == 0 {
		return nil
	}

	if err := rc.renderer.Begin(width, height); err != nil {
		return err
	}
	if err := rc.renderer.DrawPrimitives(prims, false); err != nil {
		return err
	}
	if err := rc.renderer.End(); err != nil {
		return err
	}
	rc.renderer.Poll()
	return nil
}

func appendOverlay(prims []Primitive, ov Overlay) []Primitive {
	switch o := ov.(type) {
	case CursorOverlay:
		// A blinked-out cursor contributes nothing.
		if o.Opacity <= 0 {
			return prims
		}
		return append(prims, Primitive{
			Kind:   PrimRect,
			Bounds: blinc.Rect{X: o.Position.X, Y: o.Position.Y, Width: o.Size.Width, Height: o.Size.Height},
			Color:  o.Color.MulAlpha(o.Opacity),
		})
	case SelectionOverlay:
		for _, r := range o.Rects {
			prims = append(prims, Primitive{Kind: PrimRect, Bounds: r, Color: o.Color})
		}
		return prims
	case FocusRingOverlay:
		return append(prims, Primitive{
			Kind:         PrimRect,
			Bounds:       blinc.Rect{X: o.Position.X, Y: o.Position.Y, Width: o.Size.Width, Height: o.Size.Height},
			CornerRadius: o.Radius,
			Color:        o.Color,
			StrokeWidth:  o.Thickness,
		})
	default:
		return prims
	}
}

// appendDebug outlines each text box and marks baseline, ascender and
// approximate descender lines.
func (rc *RenderContext) appendDebug(prims []Primitive, texts []shapedText) []Primitive {
	if !rc.debug.TextBounds {
		return prims
	}
	for i := range texts {
		t := &texts[i]
		prims = append(prims,
			Primitive{Kind: PrimRect, Bounds: t.bounds, Color: debugBoxColor, StrokeWidth: 1},
			debugLine(t.bounds, t.baseline, debugBaselineColor),
			debugLine(t.bounds, t.baseline-t.ascender, debugAscenderColor),
			debugLine(t.bounds, t.baseline+t.ascender*rc.metrics.DescenderRatio, debugDescenderColor),
		)
	}
	return prims
}

func debugLine(bounds blinc.Rect, y float32, color blinc.Color) Primitive {
	return Primitive{
		Kind:   PrimRect,
		Bounds: blinc.Rect{X: bounds.X, Y: y, Width: bounds.Width, Height: 1},
		Color:  color,
	}
}

func (rc *RenderContext) drawImages(elems []ImageElement, keep func(*ImageElement) bool) error {
	for i := range elems {
		if !keep(&elems[i]) {
			continue
		}
		handle, ok := rc.images.get(elems[i].Source)
		if !ok {
			continue
		}
		if err := rc.renderer.DrawImage(handle, elems[i]); err != nil {
			return err
		}
	}
	return nil
}

func (rc *RenderContext) drawTexts(texts []shapedText, keep func(*shapedText) bool) error {
	var glyphs []PositionedGlyph
	for i := range texts {
		if keep(&texts[i]) {
			glyphs = append(glyphs, texts[i].glyphs...)
		}
	}
	if len(glyphs) == 0 {
		return nil
	}
	return rc.renderer.DrawGlyphs(glyphs)
}

func (rc *RenderContext) drawDecorations(texts []shapedText, keep func(*shapedText) bool) error {
	var quads []DecorationQuad
	for i := range texts {
		if keep(&texts[i]) {
			quads = append(quads, texts[i].decorations...)
		}
	}
	if len(quads) == 0 {
		return nil
	}
	return rc.renderer.DrawDecorations(quads)
}

// maxZLayer spans primitives, images and resolved text.
func maxZLayer(content *FrameContent, texts []shapedText) int {
	max := content.Batch.MaxZLayer()
	for i := range content.Images {
		if content.Images[i].ZLayer > max {
			max = content.Images[i].ZLayer
		}
	}
	for i := range texts {
		if texts[i].zLayer > max {
			max = texts[i].zLayer
		}
	}
	return max
}
