package text

import "testing"

func TestResolvePlacement(t *testing.T) {
	tests := []struct {
		name      string
		align     VerticalAlign
		y, height float32
		ascender  float32
		want      Placement
	}{
		{
			name:  "center anchors at box midpoint without height hint",
			align: AlignCenter, y: 100, height: 40, ascender: 10,
			want: Placement{Anchor: AnchorCenter, Y: 120},
		},
		{
			name:  "top anchors at y and passes height through",
			align: AlignTop, y: 100, height: 40, ascender: 10,
			want: Placement{Anchor: AnchorTop, Y: 100, Height: 40, HasHeight: true},
		},
		{
			name:  "baseline anchors at y plus ascender",
			align: AlignBaseline, y: 50, height: 40, ascender: 10,
			want: Placement{Anchor: AnchorBaseline, Y: 60},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePlacement(tt.align, tt.y, tt.height, tt.ascender)
			if got != tt.want {
				t.Errorf("ResolvePlacement() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBaselineYBaselineAnchor(t *testing.T) {
	m := DefaultDecorationMetrics()
	p := ResolvePlacement(AlignBaseline, 50, 0, 10)
	if got := m.BaselineY(p, 10); got != 60 {
		t.Fatalf("baseline = %v, want 60", got)
	}
}

func TestBaselineYCenterAnchor(t *testing.T) {
	m := DefaultDecorationMetrics()
	// ascender 10, descender approx -2; the baseline sits 4 below the
	// extent center.
	p := ResolvePlacement(AlignCenter, 100, 40, 10)
	if got := m.BaselineY(p, 10); got != 124 {
		t.Fatalf("baseline = %v, want 124", got)
	}
}

func TestBaselineYTopAnchorCentersInBox(t *testing.T) {
	m := DefaultDecorationMetrics()
	// extent = 12, box = 40: 14px of slack above, baseline at
	// 100 + 14 + 10 = 124. Top and Center agree for the same box.
	p := ResolvePlacement(AlignTop, 100, 40, 10)
	if got := m.BaselineY(p, 10); got != 124 {
		t.Fatalf("baseline = %v, want 124", got)
	}
}

func TestBaselineYTopAnchorNoHeight(t *testing.T) {
	m := DefaultDecorationMetrics()
	p := Placement{Anchor: AnchorTop, Y: 100}
	if got := m.BaselineY(p, 10); got != 110 {
		t.Fatalf("baseline = %v, want 110", got)
	}
}
