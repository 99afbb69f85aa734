package blinc

// LineCap is the endpoint style of a stroked line.
type LineCap uint8

const (
	// LineCapButt ends flat at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends with a semicircle past the endpoint.
	LineCapRound
	// LineCapSquare ends with a half-square past the endpoint.
	LineCapSquare
)

// LineJoin is the corner style where stroked segments meet.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// Stroke describes how paths are stroked.
type Stroke struct {
	// Width of the line in pixels.
	Width float32
	Cap   LineCap
	Join  LineJoin
	// MiterLimit applies to miter joins.
	MiterLimit float32
	// Dash is the on/off pattern in pixels; empty means solid.
	Dash []float32
	// DashOffset shifts the start of the dash pattern.
	DashOffset float32
}

// DefaultStroke returns a 1px solid stroke with butt caps and miter joins.
func DefaultStroke() Stroke {
	return Stroke{Width: 1, MiterLimit: 4}
}

// StrokeWidth returns a solid stroke of the given width.
func StrokeWidth(w float32) Stroke {
	s := DefaultStroke()
	s.Width = w
	return s
}

// IsDashed reports whether the stroke has a dash pattern.
func (s Stroke) IsDashed() bool { return len(s.Dash) > 0 }
