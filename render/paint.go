package render

import (
	"github.com/gogpu/blinc"
	"github.com/gogpu/blinc/draw"
	"github.com/gogpu/blinc/text"
)

// PaintContext is the direct-GPU implementation of draw.DrawContext.
// Draw calls lower immediately into a FrameContent batch instead of a
// command list, so layer draw callbacks and SVG content feed the same
// primitive path as the tree walk.
//
// Transforms support translation and scale exactly; rotated or skewed
// draws fall back to their transformed bounding box. Arbitrary paths
// lower to their bounds as well, since the GPU pass only evaluates
// rect, circle and ellipse fields.
type PaintContext struct {
	content *FrameContent
	size    blinc.Size

	transforms []blinc.Affine2D
	clips      []blinc.Rect
	opacities  []float32
	blends     []blinc.BlendMode

	// ResolveImage maps draw-side image handles to cache keys. Image
	// draws are dropped when nil.
	ResolveImage func(draw.ImageID) string

	class  LayerClass
	zLayer int
	is3D   bool
}

var _ draw.DrawContext = (*PaintContext)(nil)

// NewPaintContext returns a paint context writing into content.
func NewPaintContext(content *FrameContent, size blinc.Size) *PaintContext {
	return &PaintContext{content: content, size: size}
}

// SetClass routes subsequent draws to a layer class.
func (p *PaintContext) SetClass(c LayerClass) { p.class = c }

// SetZLayer routes subsequent draws to a z-layer.
func (p *PaintContext) SetZLayer(z int) { p.zLayer = z }

// ZLayer returns the z-layer subsequent draws target.
func (p *PaintContext) ZLayer() int { return p.zLayer }

func (p *PaintContext) PushTransform(t blinc.Affine2D) {
	p.transforms = append(p.transforms, p.CurrentTransform().Then(t))
}

func (p *PaintContext) PopTransform() {
	if len(p.transforms) > 0 {
		p.transforms = p.transforms[:len(p.transforms)-1]
	}
}

func (p *PaintContext) CurrentTransform() blinc.Affine2D {
	if len(p.transforms) == 0 {
		return blinc.AffineIdentity()
	}
	return p.transforms[len(p.transforms)-1]
}

func (p *PaintContext) PushClip(shape blinc.ClipShape) {
	r := p.CurrentTransform().ApplyRect(shape.Bounds())
	if cur, ok := p.currentClip(); ok {
		r, _ = cur.Intersection(r)
	}
	p.clips = append(p.clips, r)
}

func (p *PaintContext) PopClip() {
	if len(p.clips) > 0 {
		p.clips = p.clips[:len(p.clips)-1]
	}
}

func (p *PaintContext) currentClip() (blinc.Rect, bool) {
	if len(p.clips) == 0 {
		return blinc.Rect{}, false
	}
	return p.clips[len(p.clips)-1], true
}

func (p *PaintContext) PushOpacity(opacity float32) {
	p.opacities = append(p.opacities, p.CurrentOpacity()*opacity)
}

func (p *PaintContext) PopOpacity() {
	if len(p.opacities) > 0 {
		p.opacities = p.opacities[:len(p.opacities)-1]
	}
}

func (p *PaintContext) CurrentOpacity() float32 {
	if len(p.opacities) == 0 {
		return 1
	}
	return p.opacities[len(p.opacities)-1]
}

func (p *PaintContext) PushBlendMode(mode blinc.BlendMode) {
	p.blends = append(p.blends, mode)
}

func (p *PaintContext) PopBlendMode() {
	if len(p.blends) > 0 {
		p.blends = p.blends[:len(p.blends)-1]
	}
}

func (p *PaintContext) CurrentBlendMode() blinc.BlendMode {
	if len(p.blends) == 0 {
		return blinc.BlendNormal
	}
	return p.blends[len(p.blends)-1]
}

func (p *PaintContext) FillPath(path *blinc.Path, brush blinc.Brush) {
	p.fillShape(PrimRect, path.Bounds(), blinc.CornerRadius{}, 0, brush)
}

func (p *PaintContext) StrokePath(path *blinc.Path, stroke blinc.Stroke, brush blinc.Brush) {
	p.fillShape(PrimRect, path.Bounds(), blinc.CornerRadius{}, stroke.Width, brush)
}

func (p *PaintContext) FillRect(rect blinc.Rect, radius blinc.CornerRadius, brush blinc.Brush) {
	p.fillShape(PrimRect, rect, radius, 0, brush)
}

func (p *PaintContext) StrokeRect(rect blinc.Rect, radius blinc.CornerRadius, stroke blinc.Stroke, brush blinc.Brush) {
	p.fillShape(PrimRect, rect, radius, stroke.Width, brush)
}

// FillRectWithBorder fills then strokes with the widest side width.
func (p *PaintContext) FillRectWithBorder(rect blinc.Rect, radius blinc.CornerRadius, brush blinc.Brush, widths [4]float32, borderColor blinc.Color) {
	p.FillRect(rect, radius, brush)
	var max float32
	for _, w := range widths {
		if w > max {
			max = w
		}
	}
	if max > 0 {
		p.StrokeRect(rect, radius, blinc.StrokeWidth(max), blinc.SolidBrush{Color: borderColor})
	}
}

func (p *PaintContext) FillCircle(center blinc.Point, radius float32, brush blinc.Brush) {
	p.fillShape(PrimCircle, circleBounds(center, radius), blinc.CornerRadius{}, 0, brush)
}

func (p *PaintContext) StrokeCircle(center blinc.Point, radius float32, stroke blinc.Stroke, brush blinc.Brush) {
	p.fillShape(PrimCircle, circleBounds(center, radius), blinc.CornerRadius{}, stroke.Width, brush)
}

func (p *PaintContext) fillShape(kind PrimitiveKind, rect blinc.Rect, radius blinc.CornerRadius, strokeWidth float32, brush blinc.Brush) {
	rect = p.CurrentTransform().ApplyRect(rect)
	clip, hasClip := p.currentClip()
	opacity := p.CurrentOpacity()

	prim := Primitive{
		Kind:         kind,
		Bounds:       rect,
		CornerRadius: radius.Max(),
		StrokeWidth:  strokeWidth,
		Class:        p.class,
		ZLayer:       p.zLayer,
		Clip:         clip,
		HasClip:      hasClip,
	}

	switch b := brush.(type) {
	case blinc.SolidBrush:
		prim.Color = b.Color.MulAlpha(opacity)
	case blinc.GradientBrush:
		// Gradient ramps collapse to their midpoint color here; the
		// SDF pass has no per-pixel ramp input.
		prim.Color = b.Gradient.ColorAt(0.5).MulAlpha(opacity)
	case blinc.GlassBrush:
		prim.Class = ClassGlass
		prim.Color = b.Tint.MulAlpha(opacity)
		prim.Glass = &GlassParams{
			BlurRadius: b.Blur,
			Tint:       b.Tint,
			Saturation: b.Saturation,
			Brightness: b.Brightness,
			Noise:      b.Noise,
			Border:     b.BorderThickness,
		}
	case blinc.BlurBrush:
		tint := blinc.RGBA(1, 1, 1, 0)
		if b.Tint != nil {
			tint = *b.Tint
		}
		prim.Class = ClassGlass
		prim.Color = tint.MulAlpha(b.Opacity * opacity)
		prim.Glass = &GlassParams{
			BlurRadius: b.Radius,
			Tint:       tint,
			Saturation: 1,
			Brightness: 1,
		}
	case blinc.ImageBrush:
		tint := b.Tint
		p.content.Images = append(p.content.Images, ImageElement{
			Source:   b.Source,
			Bounds:   rect,
			Fit:      b.Fit,
			Position: b.Position,
			Opacity:  b.Opacity * opacity,
			Tint:     &tint,
			Class:    p.class,
			ZLayer:   p.zLayer,
			Clip:     clip,
			HasClip:  hasClip,
		})
		return
	default:
		return
	}
	p.content.Batch.Append(prim)
}

func (p *PaintContext) DrawText(content string, origin blinc.Point, style blinc.TextStyle) {
	if content == "" {
		return
	}
	origin = p.CurrentTransform().Apply(origin)
	clip, hasClip := p.currentClip()
	p.content.Texts = append(p.content.Texts, TextElement{
		Content:  content,
		Bounds:   blinc.Rect{X: origin.X, Y: origin.Y, Width: p.size.Width - origin.X},
		FontSize: style.Size,
		Color:    style.Color,
		VAlign:   mapBaseline(style.Baseline),
		Opacity:  p.CurrentOpacity(),
		ZLayer:   p.zLayer,
		Clip:     clip,
		HasClip:  hasClip,
	})
}

func mapBaseline(b blinc.TextBaseline) text.VerticalAlign {
	switch b {
	case blinc.BaselineTop:
		return text.AlignTop
	case blinc.BaselineMiddle:
		return text.AlignCenter
	default:
		return text.AlignBaseline
	}
}

func (p *PaintContext) DrawImage(image draw.ImageID, rect blinc.Rect, options draw.ImageOptions) {
	if p.ResolveImage == nil {
		return
	}
	source := p.ResolveImage(image)
	if source == "" {
		return
	}
	rect = p.CurrentTransform().ApplyRect(rect)
	clip, hasClip := p.currentClip()
	opacity := options.Opacity
	if opacity == 0 {
		opacity = 1
	}
	p.content.Images = append(p.content.Images, ImageElement{
		Source:   source,
		Bounds:   rect,
		Fit:      blinc.ImageFitFill,
		Position: blinc.ImageCenter,
		Opacity:  opacity * p.CurrentOpacity(),
		Tint:     options.Tint,
		Class:    p.class,
		ZLayer:   p.zLayer,
		Clip:     clip,
		HasClip:  hasClip,
	})
}

func (p *PaintContext) DrawShadow(rect blinc.Rect, radius blinc.CornerRadius, shadow blinc.Shadow) {
	p.drawShadowRect(rect, radius.Max(), shadow)
}

// DrawInnerShadow has no SDF lowering; inner shadows only render
// through the recording backend.
func (p *PaintContext) DrawInnerShadow(rect blinc.Rect, radius blinc.CornerRadius, shadow blinc.Shadow) {
}

func (p *PaintContext) DrawCircleShadow(center blinc.Point, radius float32, shadow blinc.Shadow) {
	r := radius + shadow.Spread
	b := circleBounds(blinc.Pt(center.X+shadow.OffsetX, center.Y+shadow.OffsetY), r+shadow.Blur)
	p.fillShape(PrimCircle, b, blinc.CornerRadius{}, 0, blinc.Solid(shadow.Color))
}

func (p *PaintContext) DrawCircleInnerShadow(center blinc.Point, radius float32, shadow blinc.Shadow) {
}

func (p *PaintContext) drawShadowRect(rect blinc.Rect, radius float32, shadow blinc.Shadow) {
	grown := blinc.Rect{
		X:      rect.X + shadow.OffsetX - shadow.Spread - shadow.Blur,
		Y:      rect.Y + shadow.OffsetY - shadow.Spread - shadow.Blur,
		Width:  rect.Width + 2*(shadow.Spread+shadow.Blur),
		Height: rect.Height + 2*(shadow.Spread+shadow.Blur),
	}
	p.fillShape(PrimRect, grown, blinc.CornerRadiusAll(radius+shadow.Blur), 0, blinc.Solid(shadow.Color))
}

func (p *PaintContext) SDFBuild(fn func(draw.SdfBuilder)) {
	draw.LowerSDF(p, fn)
}

// 3D draws have no meaning in the 2D compositor and record nothing.

func (p *PaintContext) SetCamera(camera blinc.Camera) {}

func (p *PaintContext) DrawMesh(mesh blinc.MeshID, material blinc.MaterialID, transform blinc.Mat4) {
}

func (p *PaintContext) DrawMeshInstanced(mesh blinc.MeshID, instances []blinc.MeshInstance) {}

func (p *PaintContext) AddLight(light blinc.Light) {}

func (p *PaintContext) SetEnvironment(env blinc.Environment) {}

func (p *PaintContext) BillboardDraw(size blinc.Size, transform blinc.Mat4, facing draw.BillboardFacing, fn func(draw.DrawContext)) {
	// Billboard content flattens onto the tail, same as the recorder.
	fn(p)
}

func (p *PaintContext) Viewport3DDraw(rect blinc.Rect, camera blinc.Camera, fn func(draw.DrawContext)) {
	prev := p.is3D
	p.is3D = true
	fn(p)
	p.is3D = prev
}

func (p *PaintContext) PushLayer(config draw.LayerConfig) {
	opacity := config.Opacity
	if opacity == 0 {
		opacity = 1
	}
	p.PushOpacity(opacity)
	if config.Position != nil && config.Size != nil {
		p.PushClip(blinc.ClipRect{Rect: blinc.Rect{
			X: config.Position.X, Y: config.Position.Y,
			Width: config.Size.Width, Height: config.Size.Height,
		}})
	} else {
		p.PushClip(blinc.ClipRect{Rect: blinc.Rect{Width: p.size.Width, Height: p.size.Height}})
	}
}

func (p *PaintContext) PopLayer() {
	p.PopClip()
	p.PopOpacity()
}

// SampleLayer needs retained layer textures, which the direct backend
// does not keep. Sampling only works through the recording backend.
func (p *PaintContext) SampleLayer(id blinc.LayerID, sourceRect, destRect blinc.Rect) {}

func (p *PaintContext) ViewportSize() blinc.Size { return p.size }

func (p *PaintContext) Is3DContext() bool { return p.is3D }

func circleBounds(center blinc.Point, radius float32) blinc.Rect {
	return blinc.Rect{X: center.X - radius, Y: center.Y - radius, Width: 2 * radius, Height: 2 * radius}
}
