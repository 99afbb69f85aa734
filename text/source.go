package text

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
)

// Source is a parsed font file. It is the heavyweight, shared resource:
// parse once, share across the application, derive Faces from it.
//
// The underlying go-text font.Font is read-only and safe for concurrent
// use. Per-call font.Face instances are created by the Shaper because
// font.Face is not concurrent-safe.
type Source struct {
	data []byte
	font *font.Font
	upem float32

	// font-unit extents, scaled per Face
	ascender  float32
	descender float32
	lineGap   float32
}

// NewSource parses TTF/OTF font data.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}

	s := &Source{
		data: data,
		font: face.Font,
		upem: float32(face.Upem()),
	}
	if ext, ok := face.FontHExtents(); ok {
		s.ascender = ext.Ascender
		s.descender = ext.Descender
		s.lineGap = ext.LineGap
	} else {
		// Fonts without hhea extents are rare; fall back to the usual
		// em-square split.
		s.ascender = s.upem * 0.8
		s.descender = -s.upem * 0.2
	}
	return s, nil
}

// NewSourceFromFile reads and parses a font file from disk.
func NewSourceFromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewSource(data)
}

// Face returns a lightweight face of this source at the given pixel size.
func (s *Source) Face(size float32) *Face {
	return &Face{source: s, size: size}
}

// Face is a Source at a specific pixel size. Faces are cheap value-like
// handles; create as many as needed.
type Face struct {
	source *Source
	size   float32
}

// Source returns the parsed font this face derives from.
func (f *Face) Source() *Source { return f.source }

// Size returns the pixel size of the face.
func (f *Face) Size() float32 { return f.size }

// scale converts font units to pixels at this face's size.
func (f *Face) scale() float32 {
	if f.source.upem == 0 {
		return 0
	}
	return f.size / f.source.upem
}

// Ascender returns the distance from the baseline to the font's top,
// in pixels, positive.
func (f *Face) Ascender() float32 {
	return f.source.ascender * f.scale()
}

// Descender returns the distance from the baseline to the font's bottom,
// in pixels, positive.
func (f *Face) Descender() float32 {
	return -f.source.descender * f.scale()
}

// LineHeight returns ascender + descender + line gap in pixels.
func (f *Face) LineHeight() float32 {
	return (f.source.ascender - f.source.descender + f.source.lineGap) * f.scale()
}
