package blinc

// TextAlign is the horizontal alignment of shaped text within its layout
// width.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextBaseline selects how a draw call's Y coordinate maps to the glyphs.
type TextBaseline uint8

const (
	// BaselineAlphabetic places Y on the alphabetic baseline.
	BaselineAlphabetic TextBaseline = iota
	// BaselineTop places Y at the top of the line box.
	BaselineTop
	// BaselineMiddle centers the line box on Y.
	BaselineMiddle
	// BaselineBottom places Y at the bottom of the line box.
	BaselineBottom
)

// FontWeight in increasing thickness order.
type FontWeight uint8

const (
	WeightThin FontWeight = iota
	WeightLight
	WeightRegular
	WeightMedium
	WeightBold
	WeightBlack
)

// TextStyle configures text draw calls.
type TextStyle struct {
	// Family is the font family name; empty selects the default face.
	Family string
	// Size in pixels.
	Size   float32
	Weight FontWeight
	Color  Color
	Align  TextAlign

	Baseline TextBaseline
	// LetterSpacing is added between glyph advances, in pixels.
	LetterSpacing float32
	// LineHeight is a multiplier over the font's natural line height.
	LineHeight float32
}

// DefaultTextStyle returns a 14px regular black style with natural spacing.
func DefaultTextStyle() TextStyle {
	return TextStyle{Size: 14, Weight: WeightRegular, Color: Black, LineHeight: 1}
}
