// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// targetUsage covers every way a frame uses the main target: passes render
// into it, the backdrop and overlay passes sample it, readback copies it.
const targetUsage = gputypes.TextureUsageRenderAttachment |
	gputypes.TextureUsageTextureBinding |
	gputypes.TextureUsageCopySrc

// textureSet holds the frame textures owned by the Compositor:
//
//   - target: 1x BGRA8, the composited output of every pass
//   - backdrop: half-resolution BGRA8 snapshot for glass blur, allocated
//     lazily on the first glass frame
//   - msaa + overlay: N-sample color and its 1x resolve, allocated lazily
//     when the foreground overlay pass runs with sample count > 1
type textureSet struct {
	targetTex  hal.Texture
	targetView hal.TextureView

	backdropTex  hal.Texture
	backdropView hal.TextureView
	backdropW    uint32
	backdropH    uint32

	msaaTex     hal.Texture
	msaaView    hal.TextureView
	overlayTex  hal.Texture
	overlayView hal.TextureView

	width  uint32
	height uint32
}

// ensureTarget creates or recreates the main target. A size change drops
// every derived texture with it. Same dimensions are a no-op.
func (ts *textureSet) ensureTarget(device hal.Device, w, h uint32) error {
	if ts.width == w && ts.height == h && ts.targetTex != nil {
		return nil
	}
	ts.destroy(device)

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "blinc_target",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         targetUsage,
	})
	if err != nil {
		return fmt.Errorf("create target texture: %w", err)
	}
	ts.targetTex = tex

	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "blinc_target_view",
	})
	if err != nil {
		ts.destroy(device)
		return fmt.Errorf("create target view: %w", err)
	}
	ts.targetView = view
	ts.width = w
	ts.height = h
	return nil
}

// backdropDims halves each target dimension, clamped to at least 1.
func backdropDims(w, h uint32) (uint32, uint32) {
	return max(1, w/2), max(1, h/2)
}

// ensureBackdrop allocates the half-resolution backdrop texture.
func (ts *textureSet) ensureBackdrop(device hal.Device) error {
	w, h := backdropDims(ts.width, ts.height)
	if ts.backdropTex != nil && ts.backdropW == w && ts.backdropH == h {
		return nil
	}
	ts.destroyBackdrop(device)

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "blinc_backdrop",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding,
	})
	if err != nil {
		return fmt.Errorf("create backdrop texture: %w", err)
	}
	ts.backdropTex = tex

	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "blinc_backdrop_view",
	})
	if err != nil {
		ts.destroyBackdrop(device)
		return fmt.Errorf("create backdrop view: %w", err)
	}
	ts.backdropView = view
	ts.backdropW = w
	ts.backdropH = h
	return nil
}

// ensureMSAA allocates the N-sample color texture and its 1x overlay
// resolve target for the anti-aliased foreground pass.
func (ts *textureSet) ensureMSAA(device hal.Device, samples uint32) error {
	if ts.msaaTex != nil {
		return nil
	}
	size := hal.Extent3D{Width: ts.width, Height: ts.height, DepthOrArrayLayers: 1}

	msaaTex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "blinc_msaa_color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   samples,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create MSAA color texture: %w", err)
	}
	ts.msaaTex = msaaTex

	msaaView, err := device.CreateTextureView(msaaTex, &hal.TextureViewDescriptor{
		Label: "blinc_msaa_color_view",
	})
	if err != nil {
		ts.destroyMSAA(device)
		return fmt.Errorf("create MSAA color view: %w", err)
	}
	ts.msaaView = msaaView

	overlayTex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "blinc_overlay_resolve",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding,
	})
	if err != nil {
		ts.destroyMSAA(device)
		return fmt.Errorf("create overlay resolve texture: %w", err)
	}
	ts.overlayTex = overlayTex

	overlayView, err := device.CreateTextureView(overlayTex, &hal.TextureViewDescriptor{
		Label: "blinc_overlay_resolve_view",
	})
	if err != nil {
		ts.destroyMSAA(device)
		return fmt.Errorf("create overlay resolve view: %w", err)
	}
	ts.overlayView = overlayView
	return nil
}

func (ts *textureSet) destroyBackdrop(device hal.Device) {
	if ts.backdropView != nil {
		device.DestroyTextureView(ts.backdropView)
		ts.backdropView = nil
	}
	if ts.backdropTex != nil {
		device.DestroyTexture(ts.backdropTex)
		ts.backdropTex = nil
	}
	ts.backdropW = 0
	ts.backdropH = 0
}

func (ts *textureSet) destroyMSAA(device hal.Device) {
	if ts.overlayView != nil {
		device.DestroyTextureView(ts.overlayView)
		ts.overlayView = nil
	}
	if ts.overlayTex != nil {
		device.DestroyTexture(ts.overlayTex)
		ts.overlayTex = nil
	}
	if ts.msaaView != nil {
		device.DestroyTextureView(ts.msaaView)
		ts.msaaView = nil
	}
	if ts.msaaTex != nil {
		device.DestroyTexture(ts.msaaTex)
		ts.msaaTex = nil
	}
}

// destroy releases every texture and resets dimensions. Safe to call on a
// partially initialized set.
func (ts *textureSet) destroy(device hal.Device) {
	ts.destroyMSAA(device)
	ts.destroyBackdrop(device)
	if ts.targetView != nil {
		device.DestroyTextureView(ts.targetView)
		ts.targetView = nil
	}
	if ts.targetTex != nil {
		device.DestroyTexture(ts.targetTex)
		ts.targetTex = nil
	}
	ts.width = 0
	ts.height = 0
}
