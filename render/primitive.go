package render

import "github.com/gogpu/blinc"

// PrimitiveKind selects the SDF evaluated for a primitive.
type PrimitiveKind uint8

const (
	PrimRect PrimitiveKind = iota
	PrimCircle
	PrimEllipse
)

// GlassParams hold the backdrop sampling parameters of a glass
// primitive.
type GlassParams struct {
	BlurRadius float32
	Tint       blinc.Color
	Saturation float32
	Brightness float32
	Noise      float32
	Border     float32
}

// Primitive is one resolved shape in device pixels. Fills have
// StrokeWidth zero; strokes keep their fill color.
type Primitive struct {
	Kind         PrimitiveKind
	Bounds       blinc.Rect
	CornerRadius float32
	Color        blinc.Color
	StrokeWidth  float32

	// Glass is set only for ClassGlass primitives.
	Glass *GlassParams

	Class   LayerClass
	ZLayer  int
	Clip    blinc.Rect
	HasClip bool
}

// PrimitiveBatch accumulates a frame's primitives in paint order.
type PrimitiveBatch struct {
	prims []Primitive
}

func (b *PrimitiveBatch) Append(p Primitive) {
	b.prims = append(b.prims, p)
}

func (b *PrimitiveBatch) Len() int {
	return len(b.prims)
}

// All returns the primitives in paint order. The slice is shared,
// not copied.
func (b *PrimitiveBatch) All() []Primitive {
	return b.prims
}

// HasGlass reports whether any primitive needs a backdrop capture.
func (b *PrimitiveBatch) HasGlass() bool {
	for i := range b.prims {
		if b.prims[i].Class == ClassGlass {
			return true
		}
	}
	return false
}

// MaxZLayer returns the highest z-layer used by any primitive.
func (b *PrimitiveBatch) MaxZLayer() int {
	max := 0
	for i := range b.prims {
		if b.prims[i].ZLayer > max {
			max = b.prims[i].ZLayer
		}
	}
	return max
}

// ByClass returns the primitives of one class, preserving order.
func (b *PrimitiveBatch) ByClass(c LayerClass) []Primitive {
	var out []Primitive
	for i := range b.prims {
		if b.prims[i].Class == c {
			out = append(out, b.prims[i])
		}
	}
	return out
}

// ByZLayer returns the primitives on one z-layer, preserving order.
func (b *PrimitiveBatch) ByZLayer(z int) []Primitive {
	var out []Primitive
	for i := range b.prims {
		if b.prims[i].ZLayer == z {
			out = append(out, b.prims[i])
		}
	}
	return out
}
