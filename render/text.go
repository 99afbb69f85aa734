package render

import (
	"github.com/gogpu/blinc"
	"github.com/gogpu/blinc/text"
)

// shapedText is one text element resolved to glyphs and decoration
// quads, retaining its z-layer for bucketing.
type shapedText struct {
	glyphs      []PositionedGlyph
	decorations []DecorationQuad
	zLayer      int

	// Kept for the debug overlay.
	bounds   blinc.Rect
	baseline float32
	ascender float32
}

// resolveTexts shapes each element and anchors it per its vertical
// alignment. Elements that shape to nothing are omitted; a missing
// font source omits all text.
func (rc *RenderContext) resolveTexts(elems []TextElement, width, height uint32) []shapedText {
	if rc.fontSource == nil {
		return nil
	}
	var out []shapedText
	for i := range elems {
		if st, ok := rc.resolveText(&elems[i], width, height); ok {
			out = append(out, st)
		}
	}
	return out
}

func (rc *RenderContext) resolveText(elem *TextElement, width, height uint32) (shapedText, bool) {
	face := rc.fontSource.Face(elem.FontSize)
	run := rc.shaper.Shape(elem.Content, face)
	if len(run.Glyphs) == 0 {
		return shapedText{}, false
	}

	ascender := face.Ascender()
	placement := text.ResolvePlacement(elem.VAlign, elem.Bounds.Y, elem.Bounds.Height, ascender)
	baseline := rc.metrics.BaselineY(placement, ascender)

	clip := [4]float32{0, 0, float32(width), float32(height)}
	if elem.HasClip {
		clip = [4]float32{
			elem.Clip.X, elem.Clip.Y,
			elem.Clip.X + elem.Clip.Width, elem.Clip.Y + elem.Clip.Height,
		}
	}
	color := elem.Color.MulAlpha(elem.Opacity)

	st := shapedText{
		zLayer:   elem.ZLayer,
		bounds:   elem.Bounds,
		baseline: baseline,
		ascender: ascender,
	}
	runes := []rune(elem.Content)
	for _, g := range run.Glyphs {
		if g.Cluster < 0 || g.Cluster >= len(runes) {
			continue
		}
		st.glyphs = append(st.glyphs, PositionedGlyph{
			X:      elem.Bounds.X + g.X,
			Y:      baseline + g.Y,
			Rune:   runes[g.Cluster],
			Source: rc.fontSource,
			Size:   elem.FontSize,
			Color:  color,
			Clip:   clip,
		})
	}

	if elem.Underline {
		st.decorations = append(st.decorations,
			rc.decorationQuad(text.Underline, baseline, elem, run.Advance, color, clip))
	}
	if elem.Strikethrough {
		st.decorations = append(st.decorations,
			rc.decorationQuad(text.Strikethrough, baseline, elem, run.Advance, color, clip))
	}
	return st, true
}

func (rc *RenderContext) decorationQuad(kind text.DecorationKind, baseline float32, elem *TextElement, measured float32, color blinc.Color, clip [4]float32) DecorationQuad {
	face := rc.fontSource.Face(elem.FontSize)
	line := rc.metrics.Line(kind, baseline, elem.FontSize, face.Ascender(), measured, elem.Bounds.Width)
	return DecorationQuad{
		X:     elem.Bounds.X,
		Y:     line.Y - line.Thickness/2,
		W:     line.Width,
		H:     line.Thickness,
		Color: color,
		Clip:  clip,
	}
}
