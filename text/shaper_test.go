package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testSource(t *testing.T) *Source {
	t.Helper()
	source, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	return source
}

func TestNewSourceEmpty(t *testing.T) {
	if _, err := NewSource(nil); err != ErrEmptyFontData {
		t.Fatalf("err = %v, want ErrEmptyFontData", err)
	}
}

func TestNewSourceInvalid(t *testing.T) {
	if _, err := NewSource([]byte("not a font")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFaceMetrics(t *testing.T) {
	source := testSource(t)
	face := source.Face(24)

	if face.Size() != 24 {
		t.Errorf("Size() = %v, want 24", face.Size())
	}
	if face.Ascender() <= 0 {
		t.Errorf("Ascender() = %v, want > 0", face.Ascender())
	}
	if face.Descender() <= 0 {
		t.Errorf("Descender() = %v, want > 0", face.Descender())
	}
	if lh := face.LineHeight(); lh < face.Ascender()+face.Descender() {
		t.Errorf("LineHeight() = %v, want >= ascender+descender", lh)
	}

	// Metrics scale linearly with size.
	double := source.Face(48)
	if got, want := double.Ascender(), face.Ascender()*2; !closeEnough(got, want) {
		t.Errorf("48px ascender = %v, want %v", got, want)
	}
}

func TestShapeBasic(t *testing.T) {
	source := testSource(t)
	face := source.Face(16)
	shaper := NewShaper()

	run := shaper.Shape("Hello", face)
	if len(run.Glyphs) != 5 {
		t.Fatalf("got %d glyphs, want 5", len(run.Glyphs))
	}
	if run.Advance <= 0 {
		t.Errorf("advance = %v, want > 0", run.Advance)
	}
	if run.Ascent <= 0 || run.Descent <= 0 {
		t.Errorf("line extents = %v/%v, want positive", run.Ascent, run.Descent)
	}

	// X positions are non-decreasing for LTR text.
	for i := 1; i < len(run.Glyphs); i++ {
		if run.Glyphs[i].X < run.Glyphs[i-1].X {
			t.Errorf("glyph %d X %v < previous %v", i, run.Glyphs[i].X, run.Glyphs[i-1].X)
		}
	}
}

func TestShapeEmpty(t *testing.T) {
	shaper := NewShaper()
	run := shaper.Shape("", testSource(t).Face(16))
	if len(run.Glyphs) != 0 || run.Advance != 0 {
		t.Fatalf("empty input shaped to %d glyphs, advance %v", len(run.Glyphs), run.Advance)
	}
	run = shaper.Shape("x", nil)
	if len(run.Glyphs) != 0 {
		t.Fatal("nil face shaped glyphs")
	}
}

func TestShapeKerning(t *testing.T) {
	source := testSource(t)
	face := source.Face(32)
	shaper := NewShaper()

	// "AV" kerns tighter than the sum of isolated advances.
	kerned := shaper.Measure("AV", face)
	isolated := shaper.Measure("A", face) + shaper.Measure("V", face)
	if kerned >= isolated {
		t.Errorf("kerned AV = %v, want < %v", kerned, isolated)
	}
}

func TestMeasureMonotonic(t *testing.T) {
	source := testSource(t)
	face := source.Face(16)
	shaper := NewShaper()

	short := shaper.Measure("abc", face)
	long := shaper.Measure("abcdef", face)
	if long <= short {
		t.Errorf("Measure(abcdef) = %v, want > Measure(abc) = %v", long, short)
	}
}

func TestSegmentText(t *testing.T) {
	segs := SegmentText("hello world")
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if segs[0].Direction != DirectionLTR || segs[0].Text != "hello world" {
		t.Fatalf("segment = %+v", segs[0])
	}
}

func TestSegmentTextMixed(t *testing.T) {
	mixed := "abc אבג def"
	segs := SegmentText(mixed)
	if len(segs) < 2 {
		t.Fatalf("got %d segments, want >= 2", len(segs))
	}

	sawRTL := false
	end := 0
	for _, seg := range segs {
		if seg.Start != end {
			t.Errorf("segment gap: start %d, want %d", seg.Start, end)
		}
		end = seg.End
		if seg.Direction == DirectionRTL {
			sawRTL = true
		}
	}
	if end != len(mixed) {
		t.Errorf("segments cover %d bytes, want %d", end, len(mixed))
	}
	if !sawRTL {
		t.Error("no RTL segment detected")
	}
}

func TestSegmentTextEmpty(t *testing.T) {
	if segs := SegmentText(""); segs != nil {
		t.Fatalf("empty input produced segments: %v", segs)
	}
}

func closeEnough(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0.01
}
