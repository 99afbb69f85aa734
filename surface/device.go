// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/blinc/render"
)

// DeviceProvider supplies a GPU device owned by the host application.
//
// A host that already runs a gogpu device (a windowed app, a game loop)
// implements this and hands it to NewShared, so the compositor submits
// on the host's queue instead of opening a second device.
//
// DeviceProvider is an alias for gpucontext.DeviceProvider so hosts
// built on the gpucontext ecosystem plug in without an adapter type.
type DeviceProvider = gpucontext.DeviceProvider

// Errors returned by NewShared.
var (
	// ErrNilProvider is returned when NewShared is given a nil provider.
	ErrNilProvider = errors.New("surface: nil DeviceProvider")

	// ErrNoHALAccess is returned when the provider does not expose the
	// underlying hal device and queue the compositor records against.
	ErrNoHALAccess = errors.New("surface: provider does not expose HAL types")
)

// NewShared creates a surface on a device owned by the host.
//
// The provider must also implement gpucontext.HalProvider, exposing
// HalDevice() and HalQueue() that return hal.Device and hal.Queue.
// The surface never destroys a shared device; Close releases only the
// compositor's own resources.
func NewShared(provider DeviceProvider, width, height uint32, opts ...render.Option) (*Surface, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("surface: zero size %dx%d", width, height)
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALAccess
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALAccess)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALAccess)
	}

	renderer := render.NewGPURenderer(device, queue, 4)
	return &Surface{
		renderer: renderer,
		ctx:      render.New(renderer, opts...),
		width:    width,
		height:   height,
	}, nil
}
