package blinc

import (
	"math"
	"testing"
)

func pointsClose(a, b Point, tol float32) bool {
	return float32(math.Abs(float64(a.X-b.X))) <= tol &&
		float32(math.Abs(float64(a.Y-b.Y))) <= tol
}

func TestAffineThenOrder(t *testing.T) {
	// a.Then(b) applies b first, then a.
	translate := AffineTranslate(10, 0)
	scale := AffineScale(2, 2)

	p := Point{1, 1}

	// Scale first, then translate: (1,1) -> (2,2) -> (12,2).
	got := translate.Then(scale).Apply(p)
	if want := (Point{12, 2}); !pointsClose(got, want, 1e-5) {
		t.Errorf("translate.Then(scale) = %v, want %v", got, want)
	}

	// Translate first, then scale: (1,1) -> (11,1) -> (22,2).
	got = scale.Then(translate).Apply(p)
	if want := (Point{22, 2}); !pointsClose(got, want, 1e-5) {
		t.Errorf("scale.Then(translate) = %v, want %v", got, want)
	}
}

func TestAffineThenAssociative(t *testing.T) {
	a := AffineRotate(0.7)
	b := AffineTranslate(3, -4)
	c := AffineScale(1.5, 0.5)

	points := []Point{{0, 0}, {1, 0}, {-2, 5}, {100, -37.5}}
	for _, p := range points {
		left := a.Then(b).Then(c).Apply(p)
		right := a.Then(b.Then(c)).Apply(p)
		if !pointsClose(left, right, 1e-3) {
			t.Errorf("associativity broken at %v: %v vs %v", p, left, right)
		}
	}
}

func TestAffineThenNonCommutative(t *testing.T) {
	a := AffineRotate(float32(math.Pi / 2))
	b := AffineTranslate(10, 0)
	p := Point{1, 0}

	ab := a.Then(b).Apply(p)
	ba := b.Then(a).Apply(p)
	if pointsClose(ab, ba, 1e-4) {
		t.Errorf("rotation and translation unexpectedly commute: %v == %v", ab, ba)
	}
}

func TestAffineInvertRoundTrip(t *testing.T) {
	a := AffineTranslate(5, -3).Then(AffineRotate(0.3)).Then(AffineScale(2, 4))
	inv, ok := a.Invert()
	if !ok {
		t.Fatal("invertible transform reported singular")
	}
	p := Point{7, 11}
	got := inv.Apply(a.Apply(p))
	if !pointsClose(got, p, 1e-3) {
		t.Errorf("invert round trip = %v, want %v", got, p)
	}
}

func TestAffineInvertSingular(t *testing.T) {
	_, ok := AffineScale(0, 1).Invert()
	if ok {
		t.Error("singular transform reported invertible")
	}
}

func TestAffineApplyRectRotated(t *testing.T) {
	// 90-degree rotation of a unit square at origin lands in x ∈ [-1, 0].
	a := AffineRotate(float32(math.Pi / 2))
	got := a.ApplyRect(Rect{0, 0, 1, 1})
	if math.Abs(float64(got.X+1)) > 1e-4 || math.Abs(float64(got.Width-1)) > 1e-4 {
		t.Errorf("rotated bounds = %v", got)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Mat4Translate(1, 2, 3).Mul(Mat4Scale(2, 2, 2))
	id := Mat4Identity()
	if m.Mul(id) != m || id.Mul(m) != m {
		t.Error("identity multiplication changed matrix")
	}
}
