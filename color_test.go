package blinc

import "testing"

func TestHex(t *testing.T) {
	c := Hex(0xFF8000)
	if c.A != 1 {
		t.Errorf("alpha = %v, want 1", c.A)
	}
	if c.R != 1 || c.B != 0 {
		t.Errorf("Hex(0xFF8000) = %+v", c)
	}
	// 0x80 / 255.
	if diff := c.G - 128.0/255.0; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("green = %v, want %v", c.G, 128.0/255.0)
	}
}

func TestColorLerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	want := Color{0.5, 0.5, 0.5, 1}
	if got != want {
		t.Errorf("Lerp = %+v, want %+v", got, want)
	}
	if Black.Lerp(White, 0) != Black || Black.Lerp(White, 1) != White {
		t.Error("Lerp endpoints not exact")
	}
}

func TestColorPremultiply(t *testing.T) {
	c := Color{1, 0.5, 0, 0.5}.Premultiply()
	want := Color{0.5, 0.25, 0, 0.5}
	if c != want {
		t.Errorf("Premultiply = %+v, want %+v", c, want)
	}
}

func TestGradientColorAt(t *testing.T) {
	g := LinearGradient(Point{}, Point{100, 0}, Black, White)

	if got := g.ColorAt(-1); got != Black {
		t.Errorf("below range = %+v, want clamp to first stop", got)
	}
	if got := g.ColorAt(2); got != White {
		t.Errorf("above range = %+v, want clamp to last stop", got)
	}
	mid := g.ColorAt(0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 {
		t.Errorf("midpoint = %+v, want mid gray", mid)
	}
}

func TestGradientColorAtEmpty(t *testing.T) {
	var g Gradient
	if got := g.ColorAt(0.5); got != Transparent {
		t.Errorf("empty gradient = %+v, want transparent", got)
	}
}
