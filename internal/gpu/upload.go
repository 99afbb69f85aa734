// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// ImageTexture is a sampled texture owned by the caller (the render
// package's image cache). Destroy it when the cache evicts the entry.
type ImageTexture struct {
	tex    hal.Texture
	view   hal.TextureView
	width  uint32
	height uint32
}

// Width returns the texture width in pixels.
func (t *ImageTexture) Width() uint32 { return t.width }

// Height returns the texture height in pixels.
func (t *ImageTexture) Height() uint32 { return t.height }

// UploadRGBA creates a sampled texture and uploads tightly packed RGBA8
// pixels. len(pixels) must be w*h*4.
func (c *Compositor) UploadRGBA(label string, pixels []byte, w, h uint32) (*ImageTexture, error) {
	if uint32(len(pixels)) != w*h*4 {
		return nil, fmt.Errorf("upload %s: got %d bytes, want %d", label, len(pixels), w*h*4)
	}

	tex, err := c.device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create texture %s: %w", label, err)
	}

	view, err := c.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		c.device.DestroyTexture(tex)
		return nil, fmt.Errorf("create texture view %s: %w", label, err)
	}

	c.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		pixels,
		&hal.ImageDataLayout{Offset: 0, BytesPerRow: w * 4, RowsPerImage: h},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)

	return &ImageTexture{tex: tex, view: view, width: w, height: h}, nil
}

// DestroyImage releases an uploaded texture. Safe on nil.
func (c *Compositor) DestroyImage(t *ImageTexture) {
	if t == nil {
		return
	}
	if t.view != nil {
		c.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.tex != nil {
		c.device.DestroyTexture(t.tex)
		t.tex = nil
	}
}
