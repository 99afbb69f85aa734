package blinc

// Color is a non-premultiplied RGBA color with float32 components in [0, 1].
// Values outside the range are passed through unchanged; the GPU pipeline
// clamps at rasterization time.
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
)

// RGBA returns a color from individual components.
func RGBA(r, g, b, a float32) Color { return Color{R: r, G: g, B: b, A: a} }

// RGB returns an opaque color.
func RGB(r, g, b float32) Color { return Color{R: r, G: g, B: b, A: 1} }

// Hex returns an opaque color from a 0xRRGGBB value.
func Hex(rgb uint32) Color {
	return Color{
		R: float32((rgb>>16)&0xff) / 255,
		G: float32((rgb>>8)&0xff) / 255,
		B: float32(rgb&0xff) / 255,
		A: 1,
	}
}

// WithAlpha returns the color with its alpha replaced by a.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// MulAlpha returns the color with its alpha multiplied by a.
func (c Color) MulAlpha(a float32) Color {
	c.A *= a
	return c
}

// Premultiply returns the color with RGB scaled by alpha.
func (c Color) Premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Lerp linearly interpolates between c and other by t in [0, 1],
// component-wise on non-premultiplied values.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// IsTransparent reports whether the color would contribute no pixels.
func (c Color) IsTransparent() bool { return c.A <= 0 }
