// Package text provides the shaping and placement layer for blinc's
// compositor.
//
// The pipeline separates heavyweight and lightweight resources:
//
//   - Source: parsed font file, shared across the application
//   - Face: a Source at a specific pixel size, cheap to create
//   - Shaper: HarfBuzz shaping via go-text/typesetting, pooled and
//     safe for concurrent use
//
// On top of shaping, the package resolves vertical alignment into a
// baseline (Placement) and derives underline/strikethrough geometry
// (DecorationMetrics). Placement and decoration share one baseline
// formula; the renderer relies on that to keep decorations attached to
// their glyphs.
package text
