package draw

import "github.com/gogpu/blinc"

// sdfShapeKind tags entries of the sdf shape table.
type sdfShapeKind uint8

const (
	sdfRect sdfShapeKind = iota
	sdfCircle
	sdfEllipse
	sdfLine
	sdfArc
	sdfQuadBezier
	sdfUnion
	sdfSubtract
	sdfIntersect
	sdfSmoothUnion
	sdfSmoothSubtract
	sdfSmoothIntersect
	sdfRound
	sdfOutline
	sdfOffset
)

// sdfShape is one entry of the shape table. Combinators reference earlier
// entries by id; the table is append-only so ids stay dense and stable.
type sdfShape struct {
	kind   sdfShapeKind
	rect   blinc.Rect
	radius blinc.CornerRadius
	center blinc.Point
	radii  blinc.Point
	r      float32
	from   blinc.Point
	to     blinc.Point
	p0     blinc.Point
	p1     blinc.Point
	p2     blinc.Point
	width  float32
	start  float32
	end    float32
	a, b   ShapeId
	param  float32
}

type sdfFillOp struct {
	shape ShapeId
	brush blinc.Brush
}

type sdfStrokeOp struct {
	shape  ShapeId
	stroke blinc.Stroke
	brush  blinc.Brush
}

type sdfShadowOp struct {
	shape  ShapeId
	shadow blinc.Shadow
}

// sdfRecorder is the SdfBuilder used inside SDFBuild closures. It only
// accumulates; lowering happens after the closure returns.
type sdfRecorder struct {
	shapes  []sdfShape
	fills   []sdfFillOp
	strokes []sdfStrokeOp
	shadows []sdfShadowOp
}

var _ SdfBuilder = (*sdfRecorder)(nil)

func newSdfRecorder() *sdfRecorder { return &sdfRecorder{} }

func (s *sdfRecorder) add(shape sdfShape) ShapeId {
	id := ShapeId(len(s.shapes))
	s.shapes = append(s.shapes, shape)
	return id
}

// shape returns the table entry for id, or nil when id is out of range.
func (s *sdfRecorder) shape(id ShapeId) *sdfShape {
	if int(id) >= len(s.shapes) {
		return nil
	}
	return &s.shapes[id]
}

func (s *sdfRecorder) Rect(rect blinc.Rect, radius blinc.CornerRadius) ShapeId {
	return s.add(sdfShape{kind: sdfRect, rect: rect, radius: radius})
}

func (s *sdfRecorder) Circle(center blinc.Point, radius float32) ShapeId {
	return s.add(sdfShape{kind: sdfCircle, center: center, r: radius})
}

func (s *sdfRecorder) Ellipse(center blinc.Point, radii blinc.Point) ShapeId {
	return s.add(sdfShape{kind: sdfEllipse, center: center, radii: radii})
}

func (s *sdfRecorder) Line(from, to blinc.Point, width float32) ShapeId {
	return s.add(sdfShape{kind: sdfLine, from: from, to: to, width: width})
}

func (s *sdfRecorder) Arc(center blinc.Point, radius, start, end, width float32) ShapeId {
	return s.add(sdfShape{kind: sdfArc, center: center, r: radius, start: start, end: end, width: width})
}

func (s *sdfRecorder) QuadBezier(p0, p1, p2 blinc.Point, width float32) ShapeId {
	return s.add(sdfShape{kind: sdfQuadBezier, p0: p0, p1: p1, p2: p2, width: width})
}

func (s *sdfRecorder) Union(a, b ShapeId) ShapeId {
	return s.add(sdfShape{kind: sdfUnion, a: a, b: b})
}

func (s *sdfRecorder) Subtract(a, b ShapeId) ShapeId {
	return s.add(sdfShape{kind: sdfSubtract, a: a, b: b})
}

func (s *sdfRecorder) Intersect(a, b ShapeId) ShapeId {
	return s.add(sdfShape{kind: sdfIntersect, a: a, b: b})
}

func (s *sdfRecorder) SmoothUnion(a, b ShapeId, radius float32) ShapeId {
	return s.add(sdfShape{kind: sdfSmoothUnion, a: a, b: b, param: radius})
}

func (s *sdfRecorder) SmoothSubtract(a, b ShapeId, radius float32) ShapeId {
	return s.add(sdfShape{kind: sdfSmoothSubtract, a: a, b: b, param: radius})
}

func (s *sdfRecorder) SmoothIntersect(a, b ShapeId, radius float32) ShapeId {
	return s.add(sdfShape{kind: sdfSmoothIntersect, a: a, b: b, param: radius})
}

func (s *sdfRecorder) Round(shape ShapeId, radius float32) ShapeId {
	return s.add(sdfShape{kind: sdfRound, a: shape, param: radius})
}

func (s *sdfRecorder) Outline(shape ShapeId, width float32) ShapeId {
	return s.add(sdfShape{kind: sdfOutline, a: shape, param: width})
}

func (s *sdfRecorder) Offset(shape ShapeId, distance float32) ShapeId {
	return s.add(sdfShape{kind: sdfOffset, a: shape, param: distance})
}

func (s *sdfRecorder) Fill(shape ShapeId, brush blinc.Brush) {
	s.fills = append(s.fills, sdfFillOp{shape: shape, brush: brush})
}

func (s *sdfRecorder) Stroke(shape ShapeId, stroke blinc.Stroke, brush blinc.Brush) {
	s.strokes = append(s.strokes, sdfStrokeOp{shape: shape, stroke: stroke, brush: brush})
}

func (s *sdfRecorder) Shadow(shape ShapeId, shadow blinc.Shadow) {
	s.shadows = append(s.shadows, sdfShadowOp{shape: shape, shadow: shadow})
}

// LowerSDF runs fn against a fresh shape table, then lowers the recorded
// shapes onto dst. Recording.SDFBuild uses it, and the direct GPU paint
// context delegates its own SDFBuild here so both backends lower
// identically.
func LowerSDF(dst DrawContext, fn func(SdfBuilder)) {
	builder := newSdfRecorder()
	fn(builder)
	lowerSdf(dst, builder)
}

// lowerSdf emits the accumulated operations against dst in fixed group
// order: shadows first (shadows must render behind content regardless of
// call order), then fills, then strokes. Within each group the original
// call order is preserved. Shape/operation combinations the 2D pipeline
// cannot express are silently skipped; both backends share this lowering,
// so a shape drawn through recording or direct paint lands identically.
func lowerSdf(dst DrawContext, b *sdfRecorder) {
	for _, op := range b.shadows {
		shape := b.shape(op.shape)
		if shape == nil {
			continue
		}
		switch shape.kind {
		case sdfRect:
			dst.DrawShadow(shape.rect, shape.radius, op.shadow)
		case sdfCircle:
			// Radially symmetric blur needs the dedicated circle shadow.
			dst.DrawCircleShadow(shape.center, shape.r, op.shadow)
		case sdfEllipse:
			rect := blinc.Rect{
				X:      shape.center.X - shape.radii.X,
				Y:      shape.center.Y - shape.radii.Y,
				Width:  shape.radii.X * 2,
				Height: shape.radii.Y * 2,
			}
			radius := blinc.CornerRadiusAll(min(shape.radii.X, shape.radii.Y))
			dst.DrawShadow(rect, radius, op.shadow)
		}
	}

	for _, op := range b.fills {
		shape := b.shape(op.shape)
		if shape == nil {
			continue
		}
		switch shape.kind {
		case sdfRect:
			dst.FillRect(shape.rect, shape.radius, op.brush)
		case sdfCircle:
			dst.FillCircle(shape.center, shape.r, op.brush)
		case sdfEllipse:
			path := blinc.PathEllipse(shape.center, shape.radii.X, shape.radii.Y)
			dst.FillPath(path, op.brush)
		case sdfLine:
			path := blinc.PathLine(shape.from, shape.to)
			dst.StrokePath(path, blinc.StrokeWidth(shape.width), op.brush)
		}
	}

	for _, op := range b.strokes {
		shape := b.shape(op.shape)
		if shape == nil {
			continue
		}
		switch shape.kind {
		case sdfRect:
			dst.StrokeRect(shape.rect, shape.radius, op.stroke, op.brush)
		case sdfCircle:
			dst.StrokeCircle(shape.center, shape.r, op.stroke, op.brush)
		case sdfEllipse:
			path := blinc.PathEllipse(shape.center, shape.radii.X, shape.radii.Y)
			dst.StrokePath(path, op.stroke, op.brush)
		case sdfLine:
			path := blinc.PathLine(shape.from, shape.to)
			dst.StrokePath(path, op.stroke, op.brush)
		}
	}
}
