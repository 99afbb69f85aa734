package blinc

// ClipShape restricts drawing to a region. This is a sealed interface; the
// closed set of shapes is rect, rounded rect, circle, ellipse and path.
type ClipShape interface {
	clipMarker()

	// Bounds returns the axis-aligned bounding box of the clip region.
	Bounds() Rect
}

// ClipRect clips to an axis-aligned rectangle.
type ClipRect struct {
	Rect Rect
}

func (ClipRect) clipMarker() {}

// Bounds returns the rectangle itself.
func (c ClipRect) Bounds() Rect { return c.Rect }

// ClipRoundedRect clips to a rounded rectangle.
type ClipRoundedRect struct {
	Rect   Rect
	Radius CornerRadius
}

func (ClipRoundedRect) clipMarker() {}

// Bounds returns the enclosing rectangle, ignoring corner rounding.
func (c ClipRoundedRect) Bounds() Rect { return c.Rect }

// ClipCircle clips to a circle.
type ClipCircle struct {
	Center Point
	Radius float32
}

func (ClipCircle) clipMarker() {}

// Bounds returns the circle's enclosing square.
func (c ClipCircle) Bounds() Rect {
	return Rect{
		X:      c.Center.X - c.Radius,
		Y:      c.Center.Y - c.Radius,
		Width:  2 * c.Radius,
		Height: 2 * c.Radius,
	}
}

// ClipEllipse clips to an axis-aligned ellipse.
type ClipEllipse struct {
	Center Point
	// Radii holds the semi-axes: X horizontal, Y vertical.
	Radii Point
}

func (ClipEllipse) clipMarker() {}

// Bounds returns the ellipse's enclosing rectangle.
func (c ClipEllipse) Bounds() Rect {
	return Rect{
		X:      c.Center.X - c.Radii.X,
		Y:      c.Center.Y - c.Radii.Y,
		Width:  2 * c.Radii.X,
		Height: 2 * c.Radii.Y,
	}
}

// ClipPath clips to an arbitrary path. Backends without stencil support may
// fall back to the path's bounding box.
type ClipPath struct {
	Path *Path
}

func (ClipPath) clipMarker() {}

// Bounds returns the path's conservative bounding box.
func (c ClipPath) Bounds() Rect {
	if c.Path == nil {
		return Rect{}
	}
	return c.Path.Bounds()
}
