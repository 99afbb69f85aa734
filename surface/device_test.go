// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

type fakeDevice struct{}

func (fakeDevice) Poll(wait bool) {}
func (fakeDevice) Destroy()       {}

// fakeProvider implements DeviceProvider without HAL access.
type fakeProvider struct{}

func (fakeProvider) Device() gpucontext.Device   { return fakeDevice{} }
func (fakeProvider) Queue() gpucontext.Queue     { return nil }
func (fakeProvider) Adapter() gpucontext.Adapter { return nil }
func (fakeProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

// halFakeProvider claims HAL access but hands back the wrong types.
type halFakeProvider struct {
	fakeProvider
}

func (halFakeProvider) HalDevice() any { return "not a device" }
func (halFakeProvider) HalQueue() any  { return nil }

func TestNewSharedNilProvider(t *testing.T) {
	if _, err := NewShared(nil, 64, 64); !errors.Is(err, ErrNilProvider) {
		t.Fatalf("err = %v, want ErrNilProvider", err)
	}
}

func TestNewSharedZeroSize(t *testing.T) {
	if _, err := NewShared(fakeProvider{}, 0, 64); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestNewSharedRequiresHALAccess(t *testing.T) {
	if _, err := NewShared(fakeProvider{}, 64, 64); !errors.Is(err, ErrNoHALAccess) {
		t.Fatalf("err = %v, want ErrNoHALAccess", err)
	}
}

func TestNewSharedRejectsWrongHALTypes(t *testing.T) {
	if _, err := NewShared(halFakeProvider{}, 64, 64); !errors.Is(err, ErrNoHALAccess) {
		t.Fatalf("err = %v, want ErrNoHALAccess", err)
	}
}
