// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/sdf.wgsl
var sdfShaderSource string

//go:embed shaders/glass.wgsl
var glassShaderSource string

//go:embed shaders/quad.wgsl
var quadShaderSource string

//go:embed shaders/glyph.wgsl
var glyphShaderSource string

// compileShader compiles WGSL to SPIR-V through naga and creates the HAL
// shader module. SPIR-V is little-endian 32-bit words.
func compileShader(device hal.Device, label, wgsl string) (hal.ShaderModule, error) {
	if wgsl == "" {
		return nil, fmt.Errorf("%s shader source is empty", label)
	}
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("compile %s shader: %w", label, err)
	}
	spirv := make([]uint32, len(spirvBytes)/4)
	for i := range spirv {
		spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return nil, fmt.Errorf("create %s shader module: %w", label, err)
	}
	return module, nil
}
