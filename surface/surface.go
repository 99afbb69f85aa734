// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface renders frames to an offscreen GPU target and reads
// them back as images, for tests, screenshots and headless use.
package surface

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/gogpu/blinc/internal/native"
	"github.com/gogpu/blinc/render"
)

// Surface is an offscreen render target. New opens its own device;
// NewShared borrows one from the host.
type Surface struct {
	gpu      *native.GPU
	renderer *render.GPURenderer
	ctx      *render.RenderContext
	width    uint32
	height   uint32
}

// New opens a GPU device and creates a surface of the given size.
// Options are forwarded to the render context.
func New(width, height uint32, opts ...render.Option) (*Surface, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("surface: zero size %dx%d", width, height)
	}
	gpu, err := native.Open()
	if err != nil {
		return nil, err
	}
	renderer := render.NewGPURenderer(gpu.Device(), gpu.Queue(), 4)
	return &Surface{
		gpu:      gpu,
		renderer: renderer,
		ctx:      render.New(renderer, opts...),
		width:    width,
		height:   height,
	}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() uint32 { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() uint32 { return s.height }

// Context returns the render context, for hosts that drive frames
// directly.
func (s *Surface) Context() *render.RenderContext { return s.ctx }

// Render draws one frame of the tree, with optional overlay state.
func (s *Surface) Render(tree render.RenderTree, state render.RenderState) error {
	return s.ctx.Frame(tree, state, s.width, s.height)
}

// Snapshot reads the last rendered frame back as RGBA.
func (s *Surface) Snapshot() (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, int(s.width), int(s.height)))
	if err := s.renderer.Readback(img.Pix); err != nil {
		return nil, err
	}
	return img, nil
}

// SavePNG renders nothing; it snapshots the current target and writes
// it to path.
func (s *Surface) SavePNG(path string) error {
	img, err := s.Snapshot()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// Close releases the render context and the renderer. A device opened
// by New is destroyed too; a shared device from NewShared is left to
// its owner.
func (s *Surface) Close() {
	s.ctx.Destroy()
	s.renderer.Destroy()
	if s.gpu != nil {
		s.gpu.Close()
	}
}
