// Package blinc provides the GPU-accelerated compositing core beneath a
// declarative UI toolkit.
//
// The root package holds dependency-free value types: geometry (Point, Size,
// Rect, Affine2D, Mat4), Color and Gradient, the Brush sum type, vector
// Paths, clip shapes, stroke and text styling. Higher layers build on these:
//
//   - draw: the DrawContext abstraction and its recording implementation,
//     with stacked transform/clip/opacity/blend state and an SDF sub-builder.
//   - scene: the Layer tree and SceneGraph.
//   - render: the multi-pass GPU compositor consuming an externally built
//     RenderTree.
//   - text: element anchoring and decoration placement over go-text shaping.
//   - cache: the generic LRU used for GPU image caching.
//
// All types in this package are plain values. They are safe to copy and
// carry no GPU state.
package blinc
