package text

// DecorationKind selects which decoration line to derive.
type DecorationKind uint8

const (
	Underline DecorationKind = iota
	Strikethrough
)

// DecorationMetrics holds the empirical ratios used to place decoration
// lines relative to the baseline. The ratios are fractions of the
// ascender, not per-font measurements; fonts whose true descender
// deviates far from DescenderRatio×ascender may want custom values.
type DecorationMetrics struct {
	// DescenderRatio approximates the descender as ratio×ascender below
	// the baseline.
	DescenderRatio float32

	// StrikethroughRatio places the strikethrough center at
	// baseline - ratio×ascender.
	StrikethroughRatio float32

	// UnderlineRatio places the underline center at
	// baseline + ratio×ascender.
	UnderlineRatio float32
}

// DefaultDecorationMetrics returns the stock ratios.
func DefaultDecorationMetrics() DecorationMetrics {
	return DecorationMetrics{
		DescenderRatio:     0.2,
		StrikethroughRatio: 0.35,
		UnderlineRatio:     0.05,
	}
}

// DecorationLine is a resolved horizontal rule. Y is the center of the
// rule; the renderer subtracts half the thickness when emitting the quad.
type DecorationLine struct {
	Kind      DecorationKind
	Y         float32
	Thickness float32
	Width     float32
}

// descenderApprox returns the approximated descender, negative below the
// baseline.
func (m DecorationMetrics) descenderApprox(ascender float32) float32 {
	return -ascender * m.DescenderRatio
}

// GlyphExtent returns the approximated vertical extent of glyphs,
// ascender - descenderApprox.
func (m DecorationMetrics) GlyphExtent(ascender float32) float32 {
	return ascender - m.descenderApprox(ascender)
}

// BaselineY derives the baseline from a Placement. This is the same
// formula the renderer anchors glyphs with; decorations computed from it
// stay attached to their glyphs.
func (m DecorationMetrics) BaselineY(p Placement, ascender float32) float32 {
	extent := m.GlyphExtent(ascender)
	switch p.Anchor {
	case AnchorBaseline:
		return p.Y
	case AnchorCenter:
		// Anchor at extent center; the baseline sits
		// (ascender + descenderApprox)/2 below it.
		return p.Y + (ascender+m.descenderApprox(ascender))/2
	default:
		height := extent
		if p.HasHeight {
			height = p.Height
		}
		return p.Y + (height-extent)/2 + ascender
	}
}

// Line derives a decoration rule for a run. measuredWidth is the shaped
// advance; layoutWidth is the element's layout width. The rule never
// exceeds either.
func (m DecorationMetrics) Line(kind DecorationKind, baseline, fontSize, ascender, measuredWidth, layoutWidth float32) DecorationLine {
	y := baseline + ascender*m.UnderlineRatio
	if kind == Strikethrough {
		y = baseline - ascender*m.StrikethroughRatio
	}
	return DecorationLine{
		Kind:      kind,
		Y:         y,
		Thickness: decorationThickness(fontSize),
		Width:     min(measuredWidth, layoutWidth),
	}
}

// decorationThickness scales with font size, clamped to [1, 3] px.
func decorationThickness(fontSize float32) float32 {
	t := fontSize / 14
	if t < 1 {
		return 1
	}
	if t > 3 {
		return 3
	}
	return t
}
