package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GlyphID is a glyph index within a font.
type GlyphID uint16

// Glyph is one positioned glyph, relative to the run origin at the
// baseline of the first character.
type Glyph struct {
	GID     GlyphID
	Cluster int

	// X, Y position the glyph relative to the run origin.
	X, Y float32

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float32
}

// Run is the output of shaping one directionally uniform piece of text.
type Run struct {
	Glyphs []Glyph

	// Advance is the total horizontal advance of the run.
	Advance float32

	// Ascent and Descent are the line extents above and below the
	// baseline, both positive.
	Ascent  float32
	Descent float32

	Direction Direction
	Face      *Face
}

// Width returns the measured width of the run.
func (r *Run) Width() float32 { return r.Advance }

// Shaper shapes text using go-text/typesetting's HarfBuzz implementation,
// with support for kerning, ligatures, RTL scripts and complex shaping.
//
// Shaper is safe for concurrent use. HarfbuzzShaper instances carry
// mutable buffers so they are pooled, and each Shape call wraps the
// thread-safe *font.Font in a fresh font.Face.
type Shaper struct {
	pool sync.Pool
}

// NewShaper returns a ready-to-use shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape shapes text at the face's size. Empty input, a nil face or a
// shaping failure yields an empty run; the caller omits the element.
func (s *Shaper) Shape(textStr string, face *Face) Run {
	return s.ShapeDirection(textStr, face, DirectionLTR)
}

// ShapeDirection shapes text with an explicit direction, used for RTL
// segments produced by Segment.
func (s *Shaper) ShapeDirection(textStr string, face *Face, dir Direction) Run {
	run := Run{Direction: dir, Face: face}
	if textStr == "" || face == nil || face.source == nil {
		return run
	}

	runes := []rune(textStr)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      font.NewFace(face.source.font),
		Size:      floatToFixed(face.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	run.Ascent = fixedToFloat(output.LineBounds.Ascent)
	run.Descent = -fixedToFloat(output.LineBounds.Descent)
	run.Glyphs = make([]Glyph, len(output.Glyphs))

	var x float32
	for i, g := range output.Glyphs {
		adv := fixedToFloat(g.Advance)
		run.Glyphs[i] = Glyph{
			GID:      GlyphID(uint16(g.GlyphID)),
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat(g.XOffset),
			Y:        fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}
	run.Advance = x
	return run
}

// Measure returns the advance width of text at the face's size.
func (s *Shaper) Measure(textStr string, face *Face) float32 {
	run := s.Shape(textStr, face)
	return run.Advance
}

func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune. Mixed
// script text should be split with Segment before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64.0
}
