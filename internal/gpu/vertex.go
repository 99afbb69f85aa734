// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"encoding/binary"
	"math"
)

// ShapeKind selects the distance function evaluated in the SDF shader.
type ShapeKind uint8

const (
	ShapeRoundedRect ShapeKind = iota
	ShapeCircle
	ShapeEllipse
)

// Shape is one SDF primitive instance. Param meaning per kind:
//
//	RoundedRect: Param1/Param2 half extents, Param3 corner radius
//	Circle:      Param1 radius
//	Ellipse:     Param1/Param2 radii
//
// HalfStroke > 0 renders the outline band instead of the fill.
type Shape struct {
	Kind             ShapeKind
	CenterX, CenterY float32
	Param1           float32
	Param2           float32
	Param3           float32
	HalfStroke       float32
	Color            [4]float32
}

// GlassShape is one glass panel: a rounded rect that samples and blurs the
// backdrop texture underneath it.
type GlassShape struct {
	CenterX, CenterY float32
	HalfW, HalfH     float32
	CornerRadius     float32
	BlurRadius       float32
	Tint             [4]float32
	Saturation       float32
	Brightness       float32
	Noise            float32
	Border           float32
}

// TexQuad is one textured quad draw: a destination rect in pixels, a UV
// sub-rect, and a multiplicative tint.
type TexQuad struct {
	X, Y, W, H     float32
	U0, V0, U1, V1 float32
	Tint           [4]float32
}

// GlyphQuad is one glyph (or decoration rule) quad sampling the alpha
// atlas, clipped in the fragment shader to Clip = {minX, minY, maxX, maxY}.
type GlyphQuad struct {
	X, Y, W, H     float32
	U0, V0, U1, V1 float32
	Color          [4]float32
	Clip           [4]float32
}

// Bytes-per-vertex for each pipeline's layout.
const (
	shapeVertexStride = 52 // pos2 local2 kind p1 p2 p3 halfStroke color4
	glassVertexStride = 64 // pos2 local2 half2 corner blur tint4 params4
	quadVertexStride  = 32 // pos2 uv2 tint4
	glyphVertexStride = 48 // pos2 uv2 color4 clip4
)

// aaMargin pads shape quads so the smoothstep transition at the edge is
// fully covered.
const aaMargin = 1.5

type floatWriter struct {
	buf []byte
	off int
}

func (w *floatWriter) put(vals ...float32) {
	for _, v := range vals {
		binary.LittleEndian.PutUint32(w.buf[w.off:w.off+4], math.Float32bits(v))
		w.off += 4
	}
}

// quadCorners returns the six vertices (two triangles) of a quad centered
// at (cx, cy) with the given half extents, as center offsets.
func quadCorners(halfW, halfH float32) [6][2]float32 {
	return [6][2]float32{
		{-halfW, -halfH}, {halfW, -halfH}, {-halfW, halfH},
		{halfW, -halfH}, {halfW, halfH}, {-halfW, halfH},
	}
}

// shapeHalfExtents returns the bounding half extents of a shape including
// stroke and AA padding.
func shapeHalfExtents(s *Shape) (float32, float32) {
	halfW := s.Param1
	halfH := s.Param2
	if s.Kind == ShapeCircle {
		halfH = s.Param1
	}
	halfW += s.HalfStroke + aaMargin
	halfH += s.HalfStroke + aaMargin
	return halfW, halfH
}

// buildShapeVertices encodes shapes as screen-aligned quads, six vertices
// each, in the sdf pipeline's vertex layout.
func buildShapeVertices(shapes []Shape) []byte {
	w := &floatWriter{buf: make([]byte, len(shapes)*6*shapeVertexStride)}
	for i := range shapes {
		s := &shapes[i]
		halfW, halfH := shapeHalfExtents(s)
		for _, c := range quadCorners(halfW, halfH) {
			w.put(s.CenterX+c[0], s.CenterY+c[1], c[0], c[1],
				float32(s.Kind), s.Param1, s.Param2, s.Param3, s.HalfStroke,
				s.Color[0], s.Color[1], s.Color[2], s.Color[3])
		}
	}
	return w.buf
}

// buildGlassVertices encodes glass panels in the glass pipeline's layout.
func buildGlassVertices(shapes []GlassShape) []byte {
	w := &floatWriter{buf: make([]byte, len(shapes)*6*glassVertexStride)}
	for i := range shapes {
		g := &shapes[i]
		halfW := g.HalfW + aaMargin
		halfH := g.HalfH + aaMargin
		for _, c := range quadCorners(halfW, halfH) {
			w.put(g.CenterX+c[0], g.CenterY+c[1], c[0], c[1],
				g.HalfW, g.HalfH, g.CornerRadius, g.BlurRadius,
				g.Tint[0], g.Tint[1], g.Tint[2], g.Tint[3],
				g.Saturation, g.Brightness, g.Noise, g.Border)
		}
	}
	return w.buf
}

// buildQuadVertices encodes textured quads in the quad pipeline's layout.
func buildQuadVertices(quads []TexQuad) []byte {
	w := &floatWriter{buf: make([]byte, len(quads)*6*quadVertexStride)}
	for i := range quads {
		q := &quads[i]
		pos := [6][2]float32{
			{q.X, q.Y}, {q.X + q.W, q.Y}, {q.X, q.Y + q.H},
			{q.X + q.W, q.Y}, {q.X + q.W, q.Y + q.H}, {q.X, q.Y + q.H},
		}
		uv := [6][2]float32{
			{q.U0, q.V0}, {q.U1, q.V0}, {q.U0, q.V1},
			{q.U1, q.V0}, {q.U1, q.V1}, {q.U0, q.V1},
		}
		for v := 0; v < 6; v++ {
			w.put(pos[v][0], pos[v][1], uv[v][0], uv[v][1],
				q.Tint[0], q.Tint[1], q.Tint[2], q.Tint[3])
		}
	}
	return w.buf
}

// buildGlyphVertices encodes glyph quads in the glyph pipeline's layout.
func buildGlyphVertices(quads []GlyphQuad) []byte {
	w := &floatWriter{buf: make([]byte, len(quads)*6*glyphVertexStride)}
	for i := range quads {
		q := &quads[i]
		pos := [6][2]float32{
			{q.X, q.Y}, {q.X + q.W, q.Y}, {q.X, q.Y + q.H},
			{q.X + q.W, q.Y}, {q.X + q.W, q.Y + q.H}, {q.X, q.Y + q.H},
		}
		uv := [6][2]float32{
			{q.U0, q.V0}, {q.U1, q.V0}, {q.U0, q.V1},
			{q.U1, q.V0}, {q.U1, q.V1}, {q.U0, q.V1},
		}
		for v := 0; v < 6; v++ {
			w.put(pos[v][0], pos[v][1], uv[v][0], uv[v][1],
				q.Color[0], q.Color[1], q.Color[2], q.Color[3],
				q.Clip[0], q.Clip[1], q.Clip[2], q.Clip[3])
		}
	}
	return w.buf
}

// makeViewportUniform encodes the 16-byte uniform shared by all pipelines:
// viewport size plus padding, or backdrop size in the second pair for the
// glass pipeline.
func makeViewportUniform(w, h, pad0, pad1 float32) []byte {
	fw := &floatWriter{buf: make([]byte, 16)}
	fw.put(w, h, pad0, pad1)
	return fw.buf
}
