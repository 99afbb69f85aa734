// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu holds the wgpu-hal backend of the blinc compositor.
//
// The package owns device-side resources only: the render-target texture
// set, the backdrop texture for glass effects, the four render pipelines
// (SDF shapes, glass, textured quads, glyphs) and per-frame vertex and
// uniform buffers. Frame orchestration, batching and caching live in the
// render package; this package executes passes in the order it is told.
//
// All shaders are WGSL, compiled to SPIR-V through naga at pipeline
// creation time.
package gpu
