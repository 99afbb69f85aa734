package render

import (
	"testing"

	"github.com/gogpu/blinc"
)

func almostEqual(a, b float32) bool {
	d := a - b
	return d < 0.0005 && d > -0.0005
}

func TestImagePlacementsFill(t *testing.T) {
	elem := &ImageElement{
		Bounds: blinc.Rect{X: 10, Y: 20, Width: 100, Height: 50},
		Fit:    blinc.ImageFitFill,
	}
	quads := imagePlacements(elem, 32, 32)
	if len(quads) != 1 {
		t.Fatalf("quads = %d, want 1", len(quads))
	}
	q := quads[0]
	if q.dst != elem.Bounds {
		t.Errorf("fill dst = %+v, want element bounds", q.dst)
	}
	if q.u0 != 0 || q.v0 != 0 || q.u1 != 1 || q.v1 != 1 {
		t.Errorf("fill uv = (%g,%g)-(%g,%g), want full texture", q.u0, q.v0, q.u1, q.v1)
	}
}

func TestImagePlacementsCoverCropsShorterAxis(t *testing.T) {
	// 200x100 box over a square texture: cover crops top and bottom.
	elem := &ImageElement{
		Bounds:   blinc.Rect{Width: 200, Height: 100},
		Fit:      blinc.ImageFitCover,
		Position: blinc.ImageCenter,
	}
	quads := imagePlacements(elem, 100, 100)
	q := quads[0]
	if q.dst != elem.Bounds {
		t.Errorf("cover dst = %+v, want element bounds", q.dst)
	}
	if !almostEqual(q.u0, 0) || !almostEqual(q.u1, 1) {
		t.Errorf("cover u = %g..%g, want full width", q.u0, q.u1)
	}
	if !almostEqual(q.v0, 0.25) || !almostEqual(q.v1, 0.75) {
		t.Errorf("cover v = %g..%g, want centered half", q.v0, q.v1)
	}
}

func TestImagePlacementsContainLetterboxes(t *testing.T) {
	elem := &ImageElement{
		Bounds:   blinc.Rect{Width: 200, Height: 100},
		Fit:      blinc.ImageFitContain,
		Position: blinc.ImageCenter,
	}
	quads := imagePlacements(elem, 100, 100)
	q := quads[0]
	want := blinc.Rect{X: 50, Y: 0, Width: 100, Height: 100}
	if q.dst != want {
		t.Errorf("contain dst = %+v, want %+v", q.dst, want)
	}
	if q.u1 != 1 || q.v1 != 1 {
		t.Errorf("contain must use the whole texture")
	}
}

func TestImagePlacementsTile(t *testing.T) {
	elem := &ImageElement{
		Bounds: blinc.Rect{Width: 100, Height: 70},
		Fit:    blinc.ImageFitTile,
	}
	quads := imagePlacements(elem, 40, 40)
	// 3 columns x 2 rows, edge tiles cropped.
	if len(quads) != 6 {
		t.Fatalf("tiles = %d, want 6", len(quads))
	}
	last := quads[len(quads)-1]
	if !almostEqual(last.dst.Width, 20) || !almostEqual(last.dst.Height, 30) {
		t.Errorf("edge tile = %gx%g, want 20x30", last.dst.Width, last.dst.Height)
	}
	if !almostEqual(last.u1, 0.5) || !almostEqual(last.v1, 0.75) {
		t.Errorf("edge tile uv ends = (%g,%g), want (0.5,0.75)", last.u1, last.v1)
	}
}

func TestImagePlacementsClipRemapsUV(t *testing.T) {
	elem := &ImageElement{
		Bounds:  blinc.Rect{Width: 100, Height: 100},
		Fit:     blinc.ImageFitFill,
		Clip:    blinc.Rect{X: 50, Y: 0, Width: 100, Height: 100},
		HasClip: true,
	}
	quads := imagePlacements(elem, 10, 10)
	if len(quads) != 1 {
		t.Fatalf("quads = %d, want 1", len(quads))
	}
	q := quads[0]
	if q.dst.X != 50 || q.dst.Width != 50 {
		t.Errorf("clipped dst = %+v, want right half", q.dst)
	}
	if !almostEqual(q.u0, 0.5) || !almostEqual(q.u1, 1) {
		t.Errorf("clipped u = %g..%g, want 0.5..1", q.u0, q.u1)
	}
}

func TestImagePlacementsFullyClippedVanishes(t *testing.T) {
	elem := &ImageElement{
		Bounds:  blinc.Rect{Width: 100, Height: 100},
		Fit:     blinc.ImageFitFill,
		Clip:    blinc.Rect{X: 500, Y: 500, Width: 10, Height: 10},
		HasClip: true,
	}
	if quads := imagePlacements(elem, 10, 10); len(quads) != 0 {
		t.Errorf("quads = %d, want none outside the clip", len(quads))
	}
}

func TestImagePlacementsDegenerate(t *testing.T) {
	elem := &ImageElement{Bounds: blinc.Rect{Width: 100, Height: 100}}
	if quads := imagePlacements(elem, 0, 10); quads != nil {
		t.Error("zero-size texture must yield nothing")
	}
	elem.Bounds.Width = 0
	if quads := imagePlacements(elem, 10, 10); quads != nil {
		t.Error("zero-size bounds must yield nothing")
	}
}
