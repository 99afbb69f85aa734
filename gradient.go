package blinc

// GradientKind selects the gradient geometry.
type GradientKind uint8

const (
	// GradientLinear interpolates along the segment Start..End.
	GradientLinear GradientKind = iota
	// GradientRadial interpolates outward from Center to Radius.
	GradientRadial
)

// GradientStop is a color at a normalized offset in [0, 1].
type GradientStop struct {
	Offset float32
	Color  Color
}

// Gradient describes a linear or radial color ramp. Stops are expected in
// ascending offset order; consumers sample with clamp-to-edge semantics
// outside [0, 1].
type Gradient struct {
	Kind  GradientKind
	Stops []GradientStop

	// Linear geometry, in the same coordinate space as the shape being
	// filled.
	Start, End Point

	// Radial geometry.
	Center Point
	Radius float32
}

// LinearGradient returns a two-stop linear gradient from start to end.
func LinearGradient(start, end Point, from, to Color) Gradient {
	return Gradient{
		Kind:  GradientLinear,
		Start: start,
		End:   end,
		Stops: []GradientStop{{Offset: 0, Color: from}, {Offset: 1, Color: to}},
	}
}

// RadialGradient returns a two-stop radial gradient.
func RadialGradient(center Point, radius float32, from, to Color) Gradient {
	return Gradient{
		Kind:   GradientRadial,
		Center: center,
		Radius: radius,
		Stops:  []GradientStop{{Offset: 0, Color: from}, {Offset: 1, Color: to}},
	}
}

// ColorAt samples the gradient ramp at offset t, clamping outside [0, 1].
// Geometry is ignored; this is the 1D ramp used by CPU-side previews and
// tests.
func (g Gradient) ColorAt(t float32) Color {
	if len(g.Stops) == 0 {
		return Transparent
	}
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	last := g.Stops[len(g.Stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		if t <= g.Stops[i].Offset {
			prev := g.Stops[i-1]
			span := g.Stops[i].Offset - prev.Offset
			if span <= 0 {
				return g.Stops[i].Color
			}
			return prev.Color.Lerp(g.Stops[i].Color, (t-prev.Offset)/span)
		}
	}
	return last.Color
}
