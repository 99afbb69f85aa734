package blinc

// Brush represents what to paint a shape with.
// This is a sealed interface; only types in this package implement it.
//
// The closed set of brushes:
//   - SolidBrush: a single solid color
//   - GradientBrush: a linear or radial color ramp
//   - GlassBrush: backdrop blur with glass styling (tint, border, lighting)
//   - BlurBrush: pure backdrop blur without glass styling
//   - ImageBrush: image fill with fit/position/tint
type Brush interface {
	// brushMarker seals the interface. Only types in this package can
	// implement Brush.
	brushMarker()
}

// SolidBrush paints a single color.
type SolidBrush struct {
	Color Color
}

func (SolidBrush) brushMarker() {}

// Solid returns a solid-color brush.
func Solid(c Color) SolidBrush { return SolidBrush{Color: c} }

// GradientBrush paints a gradient.
type GradientBrush struct {
	Gradient Gradient
}

func (GradientBrush) brushMarker() {}

// Shadow describes a drop shadow.
type Shadow struct {
	OffsetX float32
	OffsetY float32
	Blur    float32
	Spread  float32
	Color   Color
}

// GlassBrush blurs the content behind the shape before drawing tint, border
// highlight and lighting effects atop it. The zero value is not useful; use
// [Glass] or one of the presets.
type GlassBrush struct {
	// Blur intensity in pixels (0-50).
	Blur float32
	// Tint color applied over the blur.
	Tint Color
	// Saturation of the blurred backdrop (1 = unchanged, 0 = grayscale).
	Saturation float32
	// Brightness multiplier (1 = unchanged).
	Brightness float32
	// Noise adds grain for a frosted texture (0-0.1).
	Noise float32
	// BorderThickness of the edge highlight.
	BorderThickness float32
	// Shadow is an optional drop shadow behind the glass panel.
	Shadow *Shadow
	// Simple renders pure frosted glass without edge refraction, light
	// reflections or bevel effects.
	Simple bool
}

func (GlassBrush) brushMarker() {}

// Glass returns the default glass style: 20px blur, 10% white tint,
// 0.8px border highlight.
func Glass() GlassBrush {
	return GlassBrush{
		Blur:            20,
		Tint:            Color{R: 1, G: 1, B: 1, A: 0.1},
		Saturation:      1,
		Brightness:      1,
		BorderThickness: 0.8,
	}
}

// GlassUltraThin is the lightest glass preset (10px blur).
func GlassUltraThin() GlassBrush { g := Glass(); g.Blur = 10; return g }

// GlassThin is a light glass preset (15px blur).
func GlassThin() GlassBrush { g := Glass(); g.Blur = 15; return g }

// GlassThick is a heavy glass preset (30px blur).
func GlassThick() GlassBrush { g := Glass(); g.Blur = 30; return g }

// GlassFrosted adds grain to the default glass.
func GlassFrosted() GlassBrush { g := Glass(); g.Noise = 0.03; return g }

// GlassSimple is pure frosted blur without refraction or lighting,
// cheaper to render and suited to subtle backgrounds.
func GlassSimple() GlassBrush {
	return GlassBrush{
		Blur:            15,
		Tint:            Color{R: 1, G: 1, B: 1, A: 0.15},
		Saturation:      1.1,
		Brightness:      1,
		Simple:          true,
	}
}

// WithTint returns the brush with its tint replaced.
func (g GlassBrush) WithTint(c Color) GlassBrush { g.Tint = c; return g }

// WithBlur returns the brush with its blur intensity replaced.
func (g GlassBrush) WithBlur(blur float32) GlassBrush { g.Blur = blur; return g }

// BlurQuality selects the sample count of the backdrop blur kernel.
type BlurQuality uint8

const (
	BlurQualityLow BlurQuality = iota
	BlurQualityMedium
	BlurQualityHigh
)

// BlurBrush blurs the content behind the shape without glass styling.
type BlurBrush struct {
	// Radius of the blur in pixels (0-50).
	Radius  float32
	Quality BlurQuality
	// Tint is an optional color applied after the blur; nil means none.
	Tint *Color
	// Opacity of the whole effect (0-1).
	Opacity float32
}

func (BlurBrush) brushMarker() {}

// Blur returns the default backdrop blur: 10px radius, medium quality,
// full opacity.
func Blur(radius float32) BlurBrush {
	return BlurBrush{Radius: radius, Quality: BlurQualityMedium, Opacity: 1}
}

// ImageFit controls how an image is scaled into its container.
type ImageFit uint8

const (
	// ImageFitCover scales the image to fill the container, cropping if
	// necessary (CSS: cover).
	ImageFitCover ImageFit = iota
	// ImageFitContain scales the image to fit within the container
	// (CSS: contain).
	ImageFitContain
	// ImageFitFill stretches the image to fill the container exactly.
	ImageFitFill
	// ImageFitTile repeats the image to fill the container.
	ImageFitTile
)

// ImagePosition aligns an image within its container. Components are
// normalized: 0 = left/top, 0.5 = center, 1 = right/bottom.
type ImagePosition struct {
	X, Y float32
}

// ImageCenter centers the image in both axes.
var ImageCenter = ImagePosition{X: 0.5, Y: 0.5}

// ImageBrush fills a shape with an image addressed by source URI.
type ImageBrush struct {
	// Source is the image path or URI; it keys the renderer's LRU cache.
	Source   string
	Fit      ImageFit
	Position ImagePosition
	// Opacity of the image fill (0-1).
	Opacity float32
	// Tint is multiplied with the image; white leaves it unchanged.
	Tint Color
}

func (ImageBrush) brushMarker() {}

// Image returns an image brush with cover fit, centered, opaque, untinted.
func Image(source string) ImageBrush {
	return ImageBrush{
		Source:   source,
		Fit:      ImageFitCover,
		Position: ImageCenter,
		Opacity:  1,
		Tint:     White,
	}
}
