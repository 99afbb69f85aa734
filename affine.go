package blinc

import "math"

// Affine2D is a 2D affine transform:
//
//	| XX  XY  TX |
//	| YX  YY  TY |
//
// applied to a point as (XX*x + XY*y + TX, YX*x + YY*y + TY).
type Affine2D struct {
	XX, XY, TX float32
	YX, YY, TY float32
}

// AffineIdentity returns the identity transform.
func AffineIdentity() Affine2D {
	return Affine2D{XX: 1, YY: 1}
}

// AffineTranslate returns a translation by (dx, dy).
func AffineTranslate(dx, dy float32) Affine2D {
	return Affine2D{XX: 1, YY: 1, TX: dx, TY: dy}
}

// AffineScale returns a scale by (sx, sy) about the origin.
func AffineScale(sx, sy float32) Affine2D {
	return Affine2D{XX: sx, YY: sy}
}

// AffineRotate returns a rotation by angle radians about the origin.
// Positive angles rotate the +X axis toward +Y (clockwise in screen space,
// where Y grows downward).
func AffineRotate(angle float32) Affine2D {
	s, c := math.Sincos(float64(angle))
	sf, cf := float32(s), float32(c)
	return Affine2D{XX: cf, XY: -sf, YX: sf, YY: cf}
}

// Then composes transforms so that applying the result equals first applying
// other, then a. Composition order matters: a.Then(b) and b.Then(a) differ
// unless the transforms commute.
func (a Affine2D) Then(other Affine2D) Affine2D {
	return Affine2D{
		XX: a.XX*other.XX + a.XY*other.YX,
		XY: a.XX*other.XY + a.XY*other.YY,
		TX: a.XX*other.TX + a.XY*other.TY + a.TX,
		YX: a.YX*other.XX + a.YY*other.YX,
		YY: a.YX*other.XY + a.YY*other.YY,
		TY: a.YX*other.TX + a.YY*other.TY + a.TY,
	}
}

// Apply transforms the point.
func (a Affine2D) Apply(p Point) Point {
	return Point{
		X: a.XX*p.X + a.XY*p.Y + a.TX,
		Y: a.YX*p.X + a.YY*p.Y + a.TY,
	}
}

// ApplyRect transforms the rectangle and returns the axis-aligned bounding
// box of the result. Under rotation the box is conservative.
func (a Affine2D) ApplyRect(r Rect) Rect {
	p0 := a.Apply(Point{r.X, r.Y})
	p1 := a.Apply(Point{r.MaxX(), r.Y})
	p2 := a.Apply(Point{r.X, r.MaxY()})
	p3 := a.Apply(Point{r.MaxX(), r.MaxY()})
	x0 := min(min(p0.X, p1.X), min(p2.X, p3.X))
	y0 := min(min(p0.Y, p1.Y), min(p2.Y, p3.Y))
	x1 := max(max(p0.X, p1.X), max(p2.X, p3.X))
	y1 := max(max(p0.Y, p1.Y), max(p2.Y, p3.Y))
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Determinant returns the determinant of the linear part.
func (a Affine2D) Determinant() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Invert returns the inverse transform. The second return value is false
// when the transform is singular; the identity is returned in that case.
func (a Affine2D) Invert() (Affine2D, bool) {
	det := a.Determinant()
	if det == 0 {
		return AffineIdentity(), false
	}
	inv := 1 / det
	out := Affine2D{
		XX: a.YY * inv,
		XY: -a.XY * inv,
		YX: -a.YX * inv,
		YY: a.XX * inv,
	}
	out.TX = -(out.XX*a.TX + out.XY*a.TY)
	out.TY = -(out.YX*a.TX + out.YY*a.TY)
	return out, true
}

// IsIdentity reports whether a is exactly the identity transform.
func (a Affine2D) IsIdentity() bool {
	return a == AffineIdentity()
}

// Translation returns the translation component as a point.
func (a Affine2D) Translation() Point { return Point{a.TX, a.TY} }

// Mat4 is a 4x4 matrix in column-major order, used for 3D layer transforms
// and camera parameters recorded by draw commands.
type Mat4 [16]float32

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Translate returns a translation matrix.
func Mat4Translate(x, y, z float32) Mat4 {
	m := Mat4Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Mat4Scale returns a scale matrix.
func Mat4Scale(x, y, z float32) Mat4 {
	m := Mat4Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

// Mul returns the matrix product m * o. Applying the result equals first
// applying o, then m, matching [Affine2D.Then] ordering.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * o[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// FromAffine lifts a 2D affine transform into a 4x4 matrix with Z untouched.
func (a Affine2D) Mat4() Mat4 {
	return Mat4{
		a.XX, a.YX, 0, 0,
		a.XY, a.YY, 0, 0,
		0, 0, 1, 0,
		a.TX, a.TY, 0, 1,
	}
}
