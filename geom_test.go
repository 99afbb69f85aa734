package blinc

import "testing"

func TestRectIntersectionDisjoint(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
	}{
		{"separated horizontally", Rect{0, 0, 10, 10}, Rect{20, 0, 10, 10}},
		{"separated vertically", Rect{0, 0, 10, 10}, Rect{0, 20, 10, 10}},
		{"touching right edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}},
		{"touching bottom edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}},
		{"touching corner", Rect{0, 0, 10, 10}, Rect{10, 10, 10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.a.Intersection(tt.b); ok {
				t.Errorf("Intersection(%v, %v) = overlap, want none", tt.a, tt.b)
			}
			if _, ok := tt.b.Intersection(tt.a); ok {
				t.Errorf("Intersection(%v, %v) = overlap, want none (commuted)", tt.b, tt.a)
			}
		})
	}
}

func TestRectIntersectionContained(t *testing.T) {
	outer := Rect{0, 0, 100, 100}
	inner := Rect{25, 25, 50, 50}

	got, ok := outer.Intersection(inner)
	if !ok {
		t.Fatal("contained rect reported as disjoint")
	}
	if got != inner {
		t.Errorf("Intersection = %v, want inner %v", got, inner)
	}
}

func TestRectIntersectionCommutative(t *testing.T) {
	a := Rect{0, 0, 50, 50}
	b := Rect{25, 10, 60, 60}

	ab, okAB := a.Intersection(b)
	ba, okBA := b.Intersection(a)
	if okAB != okBA {
		t.Fatalf("overlap disagreement: %v vs %v", okAB, okBA)
	}
	if ab != ba {
		t.Errorf("Intersection not commutative: %v vs %v", ab, ba)
	}
	want := Rect{25, 10, 25, 40}
	if ab != want {
		t.Errorf("Intersection = %v, want %v", ab, want)
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{20, 20, 10, 10}
	want := Rect{0, 0, 30, 30}
	if got := a.Union(b); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}

	// Empty rects are absorbed.
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %v, want %v", got, a)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union = %v, want %v", got, b)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{5, 5}, true},
		{Point{0, 0}, true},   // top-left edge inside
		{Point{10, 5}, false}, // right edge outside
		{Point{5, 10}, false}, // bottom edge outside
		{Point{-1, 5}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectInsetClampsAtZero(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	got := r.Inset(20)
	if got.Width != 0 || got.Height != 0 {
		t.Errorf("Inset past degenerate = %v, want zero size", got)
	}
}
