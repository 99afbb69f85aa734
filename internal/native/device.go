// Package native opens the wgpu hal device the compositor runs on.
package native

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/blinc"
)

// ErrNoGPU is returned when no usable adapter exists on this machine.
var ErrNoGPU = fmt.Errorf("native: no GPU adapter available")

// GPU bundles an opened device with the instance that owns it.
type GPU struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	name     string
}

// Open creates an instance on the Vulkan backend and opens the best
// available adapter, preferring discrete over integrated GPUs and
// integrated over software implementations.
func Open() (*GPU, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("%w: vulkan backend not compiled in", ErrNoGPU)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("native: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoGPU
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		for i := range adapters {
			if adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
				selected = &adapters[i]
				break
			}
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("native: open device: %w", err)
	}

	blinc.Logger().Info("device opened", "adapter", selected.Info.Name)
	return &GPU{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		name:     selected.Info.Name,
	}, nil
}

// Device returns the opened hal device.
func (g *GPU) Device() hal.Device { return g.device }

// Queue returns the device's submission queue.
func (g *GPU) Queue() hal.Queue { return g.queue }

// Name returns the adapter name, for logs.
func (g *GPU) Name() string { return g.name }

// Close destroys the device and instance. The GPU must not be used
// afterwards.
func (g *GPU) Close() {
	if g.device != nil {
		g.device.Destroy()
		g.device = nil
		g.queue = nil
	}
	if g.instance != nil {
		g.instance.Destroy()
		g.instance = nil
	}
}
