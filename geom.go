package blinc

import "math"

// Point is a position in 2D space. Coordinates are in logical pixels unless
// a context states otherwise.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point { return Point{X: x, Y: y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns the point scaled by s.
func (p Point) Mul(s float32) Point { return Point{p.X * s, p.Y * s} }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float32 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return float32(math.Hypot(dx, dy))
}

// Size is a width/height pair.
type Size struct {
	Width, Height float32
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool { return s.Width <= 0 || s.Height <= 0 }

// Rect is an axis-aligned rectangle defined by its top-left corner and size.
type Rect struct {
	X, Y, Width, Height float32
}

// RectFromPoints returns the smallest Rect containing both points.
func RectFromPoints(a, b Point) Rect {
	x0 := min(a.X, b.X)
	y0 := min(a.Y, b.Y)
	return Rect{X: x0, Y: y0, Width: max(a.X, b.X) - x0, Height: max(a.Y, b.Y) - y0}
}

// MinX returns the left edge.
func (r Rect) MinX() float32 { return r.X }

// MinY returns the top edge.
func (r Rect) MinY() float32 { return r.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float32 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float32 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{r.X + r.Width/2, r.Y + r.Height/2} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the point lies inside the rectangle.
// Points on the left/top edge are inside, right/bottom edge are outside,
// so adjacent rectangles never both contain a shared-edge point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// ContainsRect reports whether r fully encloses o.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.MaxX() <= r.MaxX() && o.MaxY() <= r.MaxY()
}

// Intersects reports whether r and o overlap with positive area.
// Rectangles that merely touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Intersection returns the overlapping region of r and o.
// The second return value is false when the rectangles do not overlap;
// touching edges count as no overlap.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	if !r.Intersects(o) {
		return Rect{}, false
	}
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.MaxX(), o.MaxX())
	y1 := min(r.MaxY(), o.MaxY())
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

// Union returns the smallest rectangle containing both r and o.
// An empty rectangle is treated as absent.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.MaxX(), o.MaxX())
	y1 := max(r.MaxY(), o.MaxY())
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Inset returns the rectangle shrunk by d on every side. A negative d grows
// the rectangle. Dimensions are clamped at zero.
func (r Rect) Inset(d float32) Rect {
	return Rect{
		X:      r.X + d,
		Y:      r.Y + d,
		Width:  max(r.Width-2*d, 0),
		Height: max(r.Height-2*d, 0),
	}
}

// Translate returns the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Scale returns the rectangle with origin and size multiplied by s.
func (r Rect) Scale(s float32) Rect {
	return Rect{X: r.X * s, Y: r.Y * s, Width: r.Width * s, Height: r.Height * s}
}
