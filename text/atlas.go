package text

import (
	"image"
	"image/color"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// AtlasEntry describes where a rasterized glyph lives in the atlas and
// how to place its quad relative to the pen position on the baseline.
type AtlasEntry struct {
	// U0, V0, U1, V1 are normalized atlas coordinates.
	U0, V0, U1, V1 float32

	// Left and Top offset the quad from the pen position; Top is
	// negative for glyphs extending above the baseline.
	Left, Top float32

	// W and H are the quad size in pixels.
	W, H float32
}

// Atlas is a shelf-packed alpha-mask glyph atlas. Glyphs are rasterized
// on demand with x/image font rendering and cached by rune and size.
//
// Pixel (0,0) is reserved as solid white so decoration rules can reuse
// the glyph pipeline by sampling a single opaque texel.
//
// Atlas is safe for concurrent use.
type Atlas struct {
	mu sync.Mutex

	size    int
	pixels  *image.Alpha
	shelves []shelf
	entries map[atlasKey]atlasSlot
	fonts   map[*Source]*sfnt.Font
	faces   map[faceKey]xfont.Face

	// generation increments whenever pixels change, so the renderer
	// knows when to re-upload.
	generation uint64
}

type atlasKey struct {
	source *Source
	r      rune
	size   int32 // size in 1/64 px
}

type faceKey struct {
	source *Source
	size   int32
}

type atlasSlot struct {
	entry AtlasEntry
	ok    bool
}

type shelf struct {
	y      int
	height int
	x      int
}

const atlasPadding = 1

// DefaultAtlasSize is the atlas texture dimension in pixels.
const DefaultAtlasSize = 1024

// NewAtlas creates an empty atlas of size x size pixels.
func NewAtlas(size int) *Atlas {
	if size <= 0 {
		size = DefaultAtlasSize
	}
	a := &Atlas{
		size:    size,
		pixels:  image.NewAlpha(image.Rect(0, 0, size, size)),
		entries: make(map[atlasKey]atlasSlot),
		fonts:   make(map[*Source]*sfnt.Font),
		faces:   make(map[faceKey]xfont.Face),
	}
	// Solid white texel for decoration rules.
	a.pixels.SetAlpha(0, 0, color.Alpha{A: 0xff})
	return a
}

// Size returns the atlas dimension in pixels.
func (a *Atlas) Size() int { return a.size }

// Generation returns the current pixel generation. It changes whenever a
// new glyph is rasterized into the atlas.
func (a *Atlas) Generation() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generation
}

// Pixels returns the atlas alpha mask. The slice is owned by the atlas;
// callers copy or upload it before the next Entry call.
func (a *Atlas) Pixels() []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pixels.Pix
}

// SolidUV returns the atlas coordinate of the reserved opaque texel.
func (a *Atlas) SolidUV() (float32, float32) {
	half := 0.5 / float32(a.size)
	return half, half
}

// Entry returns the atlas entry for a rune at a pixel size, rasterizing
// it on first use. ok is false when the glyph cannot be rasterized or no
// atlas space remains; the caller omits that glyph.
func (a *Atlas) Entry(source *Source, r rune, size float32) (AtlasEntry, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := atlasKey{source: source, r: r, size: int32(size * 64)}
	if slot, cached := a.entries[key]; cached {
		return slot.entry, slot.ok
	}

	entry, ok := a.rasterize(source, r, size)
	a.entries[key] = atlasSlot{entry: entry, ok: ok}
	return entry, ok
}

func (a *Atlas) rasterize(source *Source, r rune, size float32) (AtlasEntry, bool) {
	face, err := a.face(source, size)
	if err != nil {
		return AtlasEntry{}, false
	}

	bounds, _, ok := face.GlyphBounds(r)
	if !ok {
		return AtlasEntry{}, false
	}

	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	maxX := bounds.Max.X.Ceil()
	maxY := bounds.Max.Y.Ceil()
	w := maxX - minX
	h := maxY - minY
	if w <= 0 || h <= 0 {
		// Whitespace glyphs carry advance but no ink.
		return AtlasEntry{}, false
	}

	x, y, fit := a.allocate(w, h)
	if !fit {
		return AtlasEntry{}, false
	}

	mask := a.pixels.SubImage(image.Rect(x, y, x+w, y+h)).(*image.Alpha)
	drawer := &xfont.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x) - bounds.Min.X,
			Y: fixed.I(y) - bounds.Min.Y,
		},
	}
	drawer.DrawString(string(r))
	a.generation++

	inv := 1 / float32(a.size)
	return AtlasEntry{
		U0:   float32(x) * inv,
		V0:   float32(y) * inv,
		U1:   float32(x+w) * inv,
		V1:   float32(y+h) * inv,
		Left: float32(minX),
		Top:  float32(minY),
		W:    float32(w),
		H:    float32(h),
	}, true
}

func (a *Atlas) face(source *Source, size float32) (xfont.Face, error) {
	fk := faceKey{source: source, size: int32(size * 64)}
	if face, ok := a.faces[fk]; ok {
		return face, nil
	}

	parsed, ok := a.fonts[source]
	if !ok {
		var err error
		parsed, err = opentype.Parse(source.data)
		if err != nil {
			return nil, err
		}
		a.fonts[source] = parsed
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	a.faces[fk] = face
	return face, nil
}

// allocate finds space for a w x h rect using shelf packing. The first
// shelf starts below the reserved solid texel row.
func (a *Atlas) allocate(w, h int) (int, int, bool) {
	paddedW := w + atlasPadding
	paddedH := h + atlasPadding

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+paddedW > a.size {
			continue
		}
		if h > s.height {
			// Extend only the bottom shelf.
			if i == len(a.shelves)-1 && s.y+paddedH <= a.size {
				s.height = h
				x, y := s.x, s.y
				s.x += paddedW
				return x, y, true
			}
			continue
		}
		x, y := s.x, s.y
		s.x += paddedW
		return x, y, true
	}

	// New shelf below the last one, or below the reserved texel row.
	y := 2
	if n := len(a.shelves); n > 0 {
		y = a.shelves[n-1].y + a.shelves[n-1].height + atlasPadding
	}
	if y+paddedH > a.size || paddedW > a.size {
		return 0, 0, false
	}
	a.shelves = append(a.shelves, shelf{y: y, height: h, x: paddedW})
	return 0, y, true
}
