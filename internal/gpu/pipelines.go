// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// renderPipeline bundles one shader's GPU objects. Pipelines are created
// lazily on first use and live until Destroy.
type renderPipeline struct {
	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline

	// msaaVariant is the same pipeline compiled with the compositor's
	// sample count, used only by the foreground overlay pass.
	msaaVariant hal.RenderPipeline
}

// pipelineSpec describes one pipeline to the shared constructor.
type pipelineSpec struct {
	label    string
	wgsl     string
	vertex   []gputypes.VertexBufferLayout
	textured bool
}

func shapeVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{{
		ArrayStride: shapeVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32, Offset: 16, ShaderLocation: 2},
			{Format: gputypes.VertexFormatFloat32, Offset: 20, ShaderLocation: 3},
			{Format: gputypes.VertexFormatFloat32, Offset: 24, ShaderLocation: 4},
			{Format: gputypes.VertexFormatFloat32, Offset: 28, ShaderLocation: 5},
			{Format: gputypes.VertexFormatFloat32, Offset: 32, ShaderLocation: 6},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 36, ShaderLocation: 7},
		},
	}}
}

func glassVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{{
		ArrayStride: glassVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 16, ShaderLocation: 2},
			{Format: gputypes.VertexFormatFloat32, Offset: 24, ShaderLocation: 3},
			{Format: gputypes.VertexFormatFloat32, Offset: 28, ShaderLocation: 4},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 5},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 6},
		},
	}}
}

func quadVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{{
		ArrayStride: quadVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},
		},
	}}
}

func glyphVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{{
		ArrayStride: glyphVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 3},
		},
	}}
}

// newRenderPipeline compiles the shader and builds the pipeline with
// premultiplied alpha blending against the BGRA8 target.
//
// Textured pipelines add a texture_2d + sampler pair at bindings 1 and 2
// after the 16-byte uniform at binding 0.
func newRenderPipeline(device hal.Device, spec pipelineSpec) (*renderPipeline, error) {
	p := &renderPipeline{}

	shader, err := compileShader(device, spec.label, spec.wgsl)
	if err != nil {
		return nil, err
	}
	p.shader = shader

	entries := []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
	}
	if spec.textured {
		entries = append(entries,
			gputypes.BindGroupLayoutEntry{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			gputypes.BindGroupLayoutEntry{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		)
	}

	bindLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   spec.label + "_bind_layout",
		Entries: entries,
	})
	if err != nil {
		p.destroy(device)
		return nil, fmt.Errorf("create %s bind layout: %w", spec.label, err)
	}
	p.bindLayout = bindLayout

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            spec.label + "_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		p.destroy(device)
		return nil, fmt.Errorf("create %s pipeline layout: %w", spec.label, err)
	}
	p.pipeLayout = pipeLayout

	pipeline, err := buildPipeline(device, spec, p, 1)
	if err != nil {
		p.destroy(device)
		return nil, err
	}
	p.pipeline = pipeline
	return p, nil
}

// ensureMSAAVariant compiles the multisampled variant of the pipeline for
// the foreground overlay pass.
func (p *renderPipeline) ensureMSAAVariant(device hal.Device, spec pipelineSpec, samples uint32) error {
	if p.msaaVariant != nil || samples <= 1 {
		return nil
	}
	pipeline, err := buildPipeline(device, spec, p, samples)
	if err != nil {
		return err
	}
	p.msaaVariant = pipeline
	return nil
}

func buildPipeline(device hal.Device, spec pipelineSpec, p *renderPipeline, samples uint32) (hal.RenderPipeline, error) {
	premulBlend := gputypes.BlendStatePremultiplied()
	label := spec.label + "_pipeline"
	if samples > 1 {
		label = fmt.Sprintf("%s_msaa%d", label, samples)
	}
	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label,
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers:    spec.vertex,
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{{
				Format:    gputypes.TextureFormatBGRA8Unorm,
				Blend:     &premulBlend,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: samples,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	return pipeline, nil
}

// destroy releases pipeline resources in reverse creation order.
func (p *renderPipeline) destroy(device hal.Device) {
	if p.msaaVariant != nil {
		device.DestroyRenderPipeline(p.msaaVariant)
		p.msaaVariant = nil
	}
	if p.pipeline != nil {
		device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.bindLayout != nil {
		device.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
	if p.shader != nil {
		device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
