// Package render turns a frame's layout tree into GPU passes.
//
// The pipeline is split in three stages. Collect walks the host's
// RenderTree once and produces flat, device-pixel lists: classified
// primitives, text elements, and image elements. RenderContext then
// resolves text into positioned glyphs and decorations, loads images
// through an LRU cache, and drives a Renderer through the pass order
// a frame needs (glass path, z-layered path, or the flat fast path).
// The Renderer interface isolates the GPU backend so the frame logic
// is testable without a device.
package render
