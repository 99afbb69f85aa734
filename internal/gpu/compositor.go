// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// fenceTimeout bounds every GPU wait. A frame that takes longer than this
// indicates a hung device, not a slow one.
const fenceTimeout = 5 * time.Second

// Compositor executes blinc's render passes against a wgpu-hal device.
// One frame is bracketed by BeginFrame/EndFrame; in between the render
// package calls the pass methods in compositing order. All passes encode
// into a single command encoder and submit once.
//
// Compositor is not safe for concurrent use. Frames are sequential by
// contract.
type Compositor struct {
	device  hal.Device
	queue   hal.Queue
	samples uint32

	textures textureSet

	sdf     *renderPipeline
	glass   *renderPipeline
	quad    *renderPipeline
	glyph   *renderPipeline
	sampler hal.Sampler

	encoder hal.CommandEncoder

	// Per-frame resources destroyed after the frame's fence signals.
	frameBuffers    []hal.Buffer
	frameBindGroups []hal.BindGroup
}

// NewCompositor wraps a device and queue. samples is the MSAA sample
// count for the foreground overlay pass; 1 disables multisampling.
// Resources are allocated lazily on the first frame.
func NewCompositor(device hal.Device, queue hal.Queue, samples uint32) *Compositor {
	if samples == 0 {
		samples = 1
	}
	return &Compositor{device: device, queue: queue, samples: samples}
}

// Size returns the current target dimensions.
func (c *Compositor) Size() (uint32, uint32) {
	return c.textures.width, c.textures.height
}

// BackdropSize returns the current backdrop texture dimensions, zero
// before the first glass frame.
func (c *Compositor) BackdropSize() (uint32, uint32) {
	return c.textures.backdropW, c.textures.backdropH
}

// TargetView exposes the composited output texture view, for callers that
// present it or bind it elsewhere.
func (c *Compositor) TargetView() hal.TextureView {
	return c.textures.targetView
}

// BeginFrame sizes the target and opens the frame's command encoder.
func (c *Compositor) BeginFrame(w, h uint32) error {
	if c.encoder != nil {
		return fmt.Errorf("gpu: BeginFrame called twice without EndFrame")
	}
	if err := c.textures.ensureTarget(c.device, w, h); err != nil {
		return err
	}
	if err := c.ensurePipelines(); err != nil {
		return err
	}

	encoder, err := c.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "blinc_frame_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("blinc_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}
	c.encoder = encoder
	return nil
}

// DrawShapes renders SDF shapes into the target. clear selects a hard
// clear to transparent black versus loading the existing content.
func (c *Compositor) DrawShapes(shapes []Shape, clear bool) error {
	if len(shapes) == 0 {
		if clear {
			rp := c.beginTargetPass(clear)
			rp.End()
		}
		return nil
	}
	data := buildShapeVertices(shapes)
	uniform := makeViewportUniform(float32(c.textures.width), float32(c.textures.height), 0, 0)
	rp := c.beginTargetPass(clear)
	err := c.draw(rp, c.sdf, c.sdf.pipeline, data, uint32(len(shapes)*6), uniform, nil)
	rp.End()
	return err
}

// DrawShapesOverlay renders foreground shapes through the multisampled
// pipeline, resolving onto a transparent overlay that is then composited
// over the target. With sample count 1 it is a plain no-clear shape pass.
func (c *Compositor) DrawShapesOverlay(shapes []Shape) error {
	if len(shapes) == 0 {
		return nil
	}
	if c.samples <= 1 {
		return c.DrawShapes(shapes, false)
	}
	if err := c.textures.ensureMSAA(c.device, c.samples); err != nil {
		return err
	}
	if err := c.sdf.ensureMSAAVariant(c.device, sdfSpec(), c.samples); err != nil {
		return err
	}

	data := buildShapeVertices(shapes)
	uniform := makeViewportUniform(float32(c.textures.width), float32(c.textures.height), 0, 0)

	rp := c.encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "blinc_overlay_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:          c.textures.msaaView,
			ResolveTarget: c.textures.overlayView,
			LoadOp:        gputypes.LoadOpClear,
			StoreOp:       gputypes.StoreOpStore,
			ClearValue:    gputypes.Color{R: 0, G: 0, B: 0, A: 0},
		}},
	})
	err := c.draw(rp, c.sdf, c.sdf.msaaVariant, data, uint32(len(shapes)*6), uniform, nil)
	rp.End()
	if err != nil {
		return err
	}

	// Composite the resolved overlay over the target.
	c.transition(c.textures.overlayTex, gputypes.TextureUsageRenderAttachment, gputypes.TextureUsageTextureBinding)
	w, h := float32(c.textures.width), float32(c.textures.height)
	quads := []TexQuad{{X: 0, Y: 0, W: w, H: h, U1: 1, V1: 1, Tint: [4]float32{1, 1, 1, 1}}}
	err = c.drawQuadPass(c.textures.overlayView, quads)
	c.transition(c.textures.overlayTex, gputypes.TextureUsageTextureBinding, gputypes.TextureUsageRenderAttachment)
	return err
}

// CaptureBackdrop snapshots the target into the half-resolution backdrop
// texture for glass sampling. Each backdrop dimension is max(1, dim/2).
func (c *Compositor) CaptureBackdrop() error {
	if err := c.textures.ensureBackdrop(c.device); err != nil {
		return err
	}

	c.transition(c.textures.targetTex, gputypes.TextureUsageRenderAttachment, gputypes.TextureUsageTextureBinding)

	bw, bh := float32(c.textures.backdropW), float32(c.textures.backdropH)
	data := buildQuadVertices([]TexQuad{
		{X: 0, Y: 0, W: bw, H: bh, U1: 1, V1: 1, Tint: [4]float32{1, 1, 1, 1}},
	})
	uniform := makeViewportUniform(bw, bh, 0, 0)

	rp := c.encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "blinc_backdrop_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       c.textures.backdropView,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	err := c.draw(rp, c.quad, c.quad.pipeline, data, 6, uniform, c.textures.targetView)
	rp.End()

	c.transition(c.textures.targetTex, gputypes.TextureUsageTextureBinding, gputypes.TextureUsageRenderAttachment)
	return err
}

// DrawGlass renders glass panels over the target, sampling the backdrop
// captured by CaptureBackdrop.
func (c *Compositor) DrawGlass(shapes []GlassShape) error {
	if len(shapes) == 0 {
		return nil
	}
	if c.textures.backdropView == nil {
		return fmt.Errorf("gpu: DrawGlass before CaptureBackdrop")
	}

	c.transition(c.textures.backdropTex, gputypes.TextureUsageRenderAttachment, gputypes.TextureUsageTextureBinding)

	data := buildGlassVertices(shapes)
	uniform := makeViewportUniform(
		float32(c.textures.width), float32(c.textures.height),
		float32(c.textures.backdropW), float32(c.textures.backdropH),
	)
	rp := c.beginTargetPass(false)
	err := c.draw(rp, c.glass, c.glass.pipeline, data, uint32(len(shapes)*6), uniform, c.textures.backdropView)
	rp.End()

	c.transition(c.textures.backdropTex, gputypes.TextureUsageTextureBinding, gputypes.TextureUsageRenderAttachment)
	return err
}

// DrawImage renders quads sampling an uploaded image texture.
func (c *Compositor) DrawImage(tex *ImageTexture, quads []TexQuad) error {
	if tex == nil || len(quads) == 0 {
		return nil
	}
	return c.drawQuadPass(tex.view, quads)
}

// DrawGlyphs renders glyph quads sampling the caller's atlas texture.
// Decoration rules reuse this pass with a solid atlas region.
func (c *Compositor) DrawGlyphs(atlas *ImageTexture, quads []GlyphQuad) error {
	if atlas == nil || len(quads) == 0 {
		return nil
	}
	data := buildGlyphVertices(quads)
	uniform := makeViewportUniform(float32(c.textures.width), float32(c.textures.height), 0, 0)
	rp := c.beginTargetPass(false)
	err := c.draw(rp, c.glyph, c.glyph.pipeline, data, uint32(len(quads)*6), uniform, atlas.view)
	rp.End()
	return err
}

// EndFrame closes the encoder, submits, and blocks until the GPU fence
// signals. Per-frame buffers and bind groups are released afterwards.
func (c *Compositor) EndFrame() error {
	if c.encoder == nil {
		return fmt.Errorf("gpu: EndFrame without BeginFrame")
	}
	encoder := c.encoder
	c.encoder = nil
	defer c.releaseFrameResources()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer c.device.FreeCommandBuffer(cmdBuf)

	fence, err := c.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer c.device.DestroyFence(fence)

	if err := c.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	ok, err := c.device.Wait(fence, 1, fenceTimeout)
	if err != nil || !ok {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", ok, err)
	}
	return nil
}

// Poll gives the driver a chance to reclaim completed command buffers.
// Call once per frame; skipping it accumulates driver-side memory over a
// long session.
func (c *Compositor) Poll() {
	c.device.Poll(false)
}

// Readback copies the target into dst as RGBA8, dst length must be
// width*height*4. It submits its own copy commands and may be called
// after EndFrame.
func (c *Compositor) Readback(dst []byte) error {
	w, h := c.textures.width, c.textures.height
	if uint32(len(dst)) != w*h*4 {
		return fmt.Errorf("gpu: readback buffer is %d bytes, want %d", len(dst), w*h*4)
	}

	// Copy pitch must be 256-byte aligned.
	bytesPerRow := w * 4
	const copyPitchAlignment = 256
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	staging, err := c.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "blinc_readback",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer c.device.DestroyBuffer(staging)

	encoder, err := c.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "blinc_readback_encoder",
	})
	if err != nil {
		return fmt.Errorf("create readback encoder: %w", err)
	}
	if err := encoder.BeginEncoding("blinc_readback"); err != nil {
		return fmt.Errorf("begin readback encoding: %w", err)
	}

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: c.textures.targetTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})
	encoder.CopyTextureToBuffer(c.textures.targetTex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: c.textures.targetTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: c.textures.targetTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end readback encoding: %w", err)
	}
	defer c.device.FreeCommandBuffer(cmdBuf)

	fence, err := c.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer c.device.DestroyFence(fence)

	if err := c.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit readback: %w", err)
	}
	ok, err := c.device.Wait(fence, 1, fenceTimeout)
	if err != nil || !ok {
		return fmt.Errorf("wait for readback: ok=%v err=%w", ok, err)
	}

	raw := make([]byte, stagingSize)
	if err := c.queue.ReadBuffer(staging, 0, raw); err != nil {
		return fmt.Errorf("read staging buffer: %w", err)
	}

	for row := uint32(0); row < h; row++ {
		src := raw[row*alignedBytesPerRow:]
		dstRow := dst[row*bytesPerRow:]
		for x := uint32(0); x < w; x++ {
			// BGRA target, RGBA out.
			dstRow[x*4+0] = src[x*4+2]
			dstRow[x*4+1] = src[x*4+1]
			dstRow[x*4+2] = src[x*4+0]
			dstRow[x*4+3] = src[x*4+3]
		}
	}
	return nil
}

// Destroy releases every GPU resource. Safe to call more than once.
func (c *Compositor) Destroy() {
	c.releaseFrameResources()
	if c.sampler != nil {
		c.device.DestroySampler(c.sampler)
		c.sampler = nil
	}
	for _, p := range []*renderPipeline{c.sdf, c.glass, c.quad, c.glyph} {
		if p != nil {
			p.destroy(c.device)
		}
	}
	c.sdf, c.glass, c.quad, c.glyph = nil, nil, nil, nil
	c.textures.destroy(c.device)
}

func sdfSpec() pipelineSpec {
	return pipelineSpec{label: "blinc_sdf", wgsl: sdfShaderSource, vertex: shapeVertexLayout()}
}

func (c *Compositor) ensurePipelines() error {
	if c.sdf != nil {
		return nil
	}
	specs := []struct {
		spec pipelineSpec
		dst  **renderPipeline
	}{
		{sdfSpec(), &c.sdf},
		{pipelineSpec{label: "blinc_glass", wgsl: glassShaderSource, vertex: glassVertexLayout(), textured: true}, &c.glass},
		{pipelineSpec{label: "blinc_quad", wgsl: quadShaderSource, vertex: quadVertexLayout(), textured: true}, &c.quad},
		{pipelineSpec{label: "blinc_glyph", wgsl: glyphShaderSource, vertex: glyphVertexLayout(), textured: true}, &c.glyph},
	}
	for _, s := range specs {
		p, err := newRenderPipeline(c.device, s.spec)
		if err != nil {
			c.Destroy()
			return err
		}
		*s.dst = p
	}

	sampler, err := c.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "blinc_linear_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		c.Destroy()
		return fmt.Errorf("create sampler: %w", err)
	}
	c.sampler = sampler
	return nil
}

func (c *Compositor) beginTargetPass(clear bool) hal.RenderPassEncoder {
	loadOp := gputypes.LoadOpLoad
	if clear {
		loadOp = gputypes.LoadOpClear
	}
	return c.encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "blinc_target_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       c.textures.targetView,
			LoadOp:     loadOp,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 0},
		}},
	})
}

// draw uploads vertex and uniform data, builds the bind group (optionally
// with a sampled texture) and records one draw call.
func (c *Compositor) draw(
	rp hal.RenderPassEncoder,
	p *renderPipeline,
	pipeline hal.RenderPipeline,
	vertexData []byte,
	vertexCount uint32,
	uniformData []byte,
	texView hal.TextureView,
) error {
	vertBuf, err := c.createFrameBuffer("blinc_verts", vertexData,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}
	uniformBuf, err := c.createFrameBuffer("blinc_uniform", uniformData,
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}

	entries := []gputypes.BindGroupEntry{
		{Binding: 0, Resource: gputypes.BufferBinding{
			Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: uint64(len(uniformData)),
		}},
	}
	if texView != nil {
		entries = append(entries,
			gputypes.BindGroupEntry{Binding: 1, Resource: texView},
			gputypes.BindGroupEntry{Binding: 2, Resource: c.sampler},
		)
	}
	bindGroup, err := c.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:   "blinc_bind",
		Layout:  p.bindLayout,
		Entries: entries,
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}
	c.frameBindGroups = append(c.frameBindGroups, bindGroup)

	rp.SetPipeline(pipeline)
	rp.SetBindGroup(0, bindGroup, nil)
	rp.SetVertexBuffer(0, vertBuf, 0)
	rp.Draw(vertexCount, 1, 0, 0)
	return nil
}

func (c *Compositor) drawQuadPass(view hal.TextureView, quads []TexQuad) error {
	data := buildQuadVertices(quads)
	uniform := makeViewportUniform(float32(c.textures.width), float32(c.textures.height), 0, 0)
	rp := c.beginTargetPass(false)
	err := c.draw(rp, c.quad, c.quad.pipeline, data, uint32(len(quads)*6), uniform, view)
	rp.End()
	return err
}

func (c *Compositor) createFrameBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := c.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	c.queue.WriteBuffer(buf, 0, data)
	c.frameBuffers = append(c.frameBuffers, buf)
	return buf, nil
}

func (c *Compositor) transition(tex hal.Texture, from, to gputypes.TextureUsage) {
	c.encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage:   hal.TextureUsageTransition{OldUsage: from, NewUsage: to},
	}})
}

func (c *Compositor) releaseFrameResources() {
	for _, bg := range c.frameBindGroups {
		c.device.DestroyBindGroup(bg)
	}
	c.frameBindGroups = c.frameBindGroups[:0]
	for _, buf := range c.frameBuffers {
		c.device.DestroyBuffer(buf)
	}
	c.frameBuffers = c.frameBuffers[:0]
}
