package text

// VerticalAlign is the layout-level vertical alignment of a text element
// within its box.
type VerticalAlign uint8

const (
	// AlignTop places text at the top of the box, centered within the
	// layout height.
	AlignTop VerticalAlign = iota
	// AlignCenter centers text on the box's vertical midpoint.
	AlignCenter
	// AlignBaseline places the text baseline at y + ascender.
	AlignBaseline
)

// Anchor is the vertical reference the renderer positions glyphs against.
type Anchor uint8

const (
	// AnchorTop anchors at the top of the text box.
	AnchorTop Anchor = iota
	// AnchorCenter anchors at the vertical center of the glyph extent.
	AnchorCenter
	// AnchorBaseline anchors at the text baseline.
	AnchorBaseline
)

// Placement is a resolved vertical position: an anchor mode, the Y it
// anchors at, and an optional layout-height hint.
type Placement struct {
	Anchor Anchor
	Y      float32

	// Height is the layout box height, valid only when HasHeight is set.
	// Top-anchored text centers within it.
	Height    float32
	HasHeight bool
}

// ResolvePlacement converts a layout alignment into a Placement.
//
//   - AlignCenter anchors at y + height/2 with no height hint; the
//     renderer centers by glyph extent.
//   - AlignTop anchors at y and passes the layout height through, so the
//     renderer centers within the box.
//   - AlignBaseline anchors at y + ascender using the face's true
//     ascender metric.
func ResolvePlacement(align VerticalAlign, y, height, ascender float32) Placement {
	switch align {
	case AlignCenter:
		return Placement{Anchor: AnchorCenter, Y: y + height/2}
	case AlignBaseline:
		return Placement{Anchor: AnchorBaseline, Y: y + ascender}
	default:
		return Placement{Anchor: AnchorTop, Y: y, Height: height, HasHeight: true}
	}
}
