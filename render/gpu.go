package render

import (
	"github.com/gogpu/blinc"
	"github.com/gogpu/blinc/internal/gpu"
	"github.com/gogpu/blinc/text"
	"github.com/gogpu/wgpu/hal"
)

// GPURenderer executes frame passes on a wgpu hal device. It owns the
// compositor, the glyph atlas, and the GPU copy of the atlas texture.
type GPURenderer struct {
	comp *gpu.Compositor

	atlas    *text.Atlas
	atlasTex *gpu.ImageTexture
	atlasGen uint64
}

var _ Renderer = (*GPURenderer)(nil)

// NewGPURenderer creates a backend over a device and queue. samples
// above 1 enables multisampling for foreground primitive passes.
func NewGPURenderer(device hal.Device, queue hal.Queue, samples uint32) *GPURenderer {
	return &GPURenderer{
		comp:  gpu.NewCompositor(device, queue, samples),
		atlas: text.NewAtlas(text.DefaultAtlasSize),
	}
}

// Compositor exposes the underlying pass executor for readback and
// surface presentation.
func (r *GPURenderer) Compositor() *gpu.Compositor { return r.comp }

// Atlas returns the glyph atlas, shared with any host-side text
// measurement.
func (r *GPURenderer) Atlas() *text.Atlas { return r.atlas }

func (r *GPURenderer) Begin(width, height uint32) error {
	return r.comp.BeginFrame(width, height)
}

func (r *GPURenderer) DrawPrimitives(prims []Primitive, clear bool) error {
	return r.comp.DrawShapes(convertShapes(prims), clear)
}

func (r *GPURenderer) DrawForeground(prims []Primitive) error {
	return r.comp.DrawShapesOverlay(convertShapes(prims))
}

func (r *GPURenderer) CaptureBackdrop() error {
	return r.comp.CaptureBackdrop()
}

func (r *GPURenderer) DrawGlass(prims []Primitive) error {
	shapes := make([]gpu.GlassShape, 0, len(prims))
	for i := range prims {
		p := &prims[i]
		if p.Glass == nil {
			continue
		}
		b := clippedBounds(p)
		if b.Width <= 0 || b.Height <= 0 {
			continue
		}
		shapes = append(shapes, gpu.GlassShape{
			CenterX:      b.X + b.Width/2,
			CenterY:      b.Y + b.Height/2,
			HalfW:        b.Width / 2,
			HalfH:        b.Height / 2,
			CornerRadius: p.CornerRadius,
			BlurRadius:   p.Glass.BlurRadius,
			Tint:         colorArray(p.Glass.Tint),
			Saturation:   p.Glass.Saturation,
			Brightness:   p.Glass.Brightness,
			Noise:        p.Glass.Noise,
			Border:       p.Glass.Border,
		})
	}
	return r.comp.DrawGlass(shapes)
}

func (r *GPURenderer) DrawImage(handle ImageHandle, elem ImageElement) error {
	tex, ok := handle.(*gpu.ImageTexture)
	if !ok {
		return nil
	}
	placements := imagePlacements(&elem, tex.Width(), tex.Height())
	if len(placements) == 0 {
		return nil
	}

	tint := blinc.RGBA(1, 1, 1, 1)
	if elem.Tint != nil {
		tint = *elem.Tint
	}
	tint = tint.MulAlpha(elem.Opacity)
	// The quad pipeline blends premultiplied, so opacity scales all
	// four components.
	tintArr := [4]float32{tint.R * tint.A, tint.G * tint.A, tint.B * tint.A, tint.A}

	quads := make([]gpu.TexQuad, len(placements))
	for i, p := range placements {
		quads[i] = gpu.TexQuad{
			X: p.dst.X, Y: p.dst.Y, W: p.dst.Width, H: p.dst.Height,
			U0: p.u0, V0: p.v0, U1: p.u1, V1: p.v1,
			Tint: tintArr,
		}
	}
	return r.comp.DrawImage(tex, quads)
}

func (r *GPURenderer) DrawGlyphs(glyphs []PositionedGlyph) error {
	quads := make([]gpu.GlyphQuad, 0, len(glyphs))
	for i := range glyphs {
		g := &glyphs[i]
		entry, ok := r.atlas.Entry(g.Source, g.Rune, g.Size)
		if !ok {
			continue
		}
		quads = append(quads, gpu.GlyphQuad{
			X: g.X + entry.Left, Y: g.Y + entry.Top,
			W: entry.W, H: entry.H,
			U0: entry.U0, V0: entry.V0, U1: entry.U1, V1: entry.V1,
			Color: colorArray(g.Color),
			Clip:  g.Clip,
		})
	}
	if len(quads) == 0 {
		return nil
	}
	if err := r.ensureAtlasTexture(); err != nil {
		return err
	}
	return r.comp.DrawGlyphs(r.atlasTex, quads)
}

func (r *GPURenderer) DrawDecorations(decors []DecorationQuad) error {
	if len(decors) == 0 {
		return nil
	}
	u, v := r.atlas.SolidUV()
	quads := make([]gpu.GlyphQuad, len(decors))
	for i, d := range decors {
		quads[i] = gpu.GlyphQuad{
			X: d.X, Y: d.Y, W: d.W, H: d.H,
			U0: u, V0: v, U1: u, V1: v,
			Color: colorArray(d.Color),
			Clip:  d.Clip,
		}
	}
	if err := r.ensureAtlasTexture(); err != nil {
		return err
	}
	return r.comp.DrawGlyphs(r.atlasTex, quads)
}

func (r *GPURenderer) End() error {
	return r.comp.EndFrame()
}

func (r *GPURenderer) Poll() {
	r.comp.Poll()
}

func (r *GPURenderer) BackdropSize() (uint32, uint32) {
	return r.comp.BackdropSize()
}

func (r *GPURenderer) UploadImage(key string, pixels []byte, width, height uint32) (ImageHandle, error) {
	return r.comp.UploadRGBA(key, pixels, width, height)
}

func (r *GPURenderer) DestroyImage(handle ImageHandle) {
	if tex, ok := handle.(*gpu.ImageTexture); ok {
		r.comp.DestroyImage(tex)
	}
}

// Readback copies the frame target into dst as RGBA, for tests and
// screenshots.
func (r *GPURenderer) Readback(dst []byte) error {
	return r.comp.Readback(dst)
}

// Destroy releases the compositor and the atlas texture. Cached
// images belong to the RenderContext and are destroyed via eviction.
func (r *GPURenderer) Destroy() {
	if r.atlasTex != nil {
		r.comp.DestroyImage(r.atlasTex)
		r.atlasTex = nil
	}
	r.comp.Destroy()
}

// ensureAtlasTexture re-uploads the atlas when rasterization grew it.
// The atlas is alpha-only; the sampled texture expands it to RGBA
// since the glyph shader reads the red channel as coverage.
func (r *GPURenderer) ensureAtlasTexture() error {
	gen := r.atlas.Generation()
	if r.atlasTex != nil && gen == r.atlasGen {
		return nil
	}
	alpha := r.atlas.Pixels()
	rgba := make([]byte, len(alpha)*4)
	for i, a := range alpha {
		rgba[i*4+0] = a
		rgba[i*4+1] = a
		rgba[i*4+2] = a
		rgba[i*4+3] = a
	}
	size := uint32(r.atlas.Size())
	tex, err := r.comp.UploadRGBA("glyph-atlas", rgba, size, size)
	if err != nil {
		return err
	}
	if r.atlasTex != nil {
		r.comp.DestroyImage(r.atlasTex)
	}
	r.atlasTex = tex
	r.atlasGen = gen
	return nil
}

func convertShapes(prims []Primitive) []gpu.Shape {
	shapes := make([]gpu.Shape, 0, len(prims))
	for i := range prims {
		p := &prims[i]
		if p.Glass != nil {
			continue
		}
		b := clippedBounds(p)
		if b.Width <= 0 || b.Height <= 0 {
			continue
		}
		s := gpu.Shape{
			CenterX:    b.X + b.Width/2,
			CenterY:    b.Y + b.Height/2,
			HalfStroke: p.StrokeWidth / 2,
			Color:      colorArray(p.Color),
		}
		switch p.Kind {
		case PrimCircle:
			s.Kind = gpu.ShapeCircle
			s.Param1 = min32(b.Width, b.Height) / 2
		case PrimEllipse:
			s.Kind = gpu.ShapeEllipse
			s.Param1 = b.Width / 2
			s.Param2 = b.Height / 2
		default:
			s.Kind = gpu.ShapeRoundedRect
			s.Param1 = b.Width / 2
			s.Param2 = b.Height / 2
			s.Param3 = p.CornerRadius
		}
		shapes = append(shapes, s)
	}
	return shapes
}

// clippedBounds intersects rect primitives with their clip; circles
// and ellipses cannot be cut by an axis-aligned rect in the SDF
// encoding, so they are only culled when fully outside.
func clippedBounds(p *Primitive) blinc.Rect {
	if !p.HasClip {
		return p.Bounds
	}
	inter, ok := p.Bounds.Intersection(p.Clip)
	if !ok {
		return blinc.Rect{}
	}
	if p.Kind == PrimRect && p.Glass == nil {
		return inter
	}
	return p.Bounds
}

func colorArray(c blinc.Color) [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
