package blinc

import "math"

// PathVerb identifies a path command.
type PathVerb uint8

const (
	VerbMoveTo PathVerb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbArcTo
	VerbClose
)

// PathCommand is one step of a vector path. Fields beyond the verb's arity
// are zero: LineTo/MoveTo use End only; QuadTo uses Control1 and End;
// CubicTo uses Control1, Control2 and End; ArcTo uses Radii, Rotation,
// LargeArc, Sweep and End; Close uses nothing.
type PathCommand struct {
	Verb               PathVerb
	Control1, Control2 Point
	End                Point
	Radii              Point
	Rotation           float32
	LargeArc, Sweep    bool
}

// kappa is the cubic Bezier approximation constant for a quarter circle.
const kappa = 0.5522847498

// Path is an immutable-by-convention sequence of path commands. Builder
// methods append and return the receiver pointer for chaining.
type Path struct {
	commands []PathCommand
}

// NewPath returns an empty path.
func NewPath() *Path { return &Path{} }

// Commands returns the recorded command sequence. The slice is owned by the
// path; callers must not modify it.
func (p *Path) Commands() []PathCommand { return p.commands }

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool { return len(p.commands) == 0 }

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float32) *Path {
	p.commands = append(p.commands, PathCommand{Verb: VerbMoveTo, End: Point{x, y}})
	return p
}

// LineTo adds a line to (x, y).
func (p *Path) LineTo(x, y float32) *Path {
	p.commands = append(p.commands, PathCommand{Verb: VerbLineTo, End: Point{x, y}})
	return p
}

// QuadTo adds a quadratic Bezier through the control point to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float32) *Path {
	p.commands = append(p.commands, PathCommand{
		Verb: VerbQuadTo, Control1: Point{cx, cy}, End: Point{x, y},
	})
	return p
}

// CubicTo adds a cubic Bezier through two control points to (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *Path {
	p.commands = append(p.commands, PathCommand{
		Verb: VerbCubicTo, Control1: Point{c1x, c1y}, Control2: Point{c2x, c2y}, End: Point{x, y},
	})
	return p
}

// ArcTo adds an elliptical arc to (x, y) using SVG arc semantics.
func (p *Path) ArcTo(rx, ry, rotation float32, largeArc, sweep bool, x, y float32) *Path {
	p.commands = append(p.commands, PathCommand{
		Verb: VerbArcTo, Radii: Point{rx, ry}, Rotation: rotation,
		LargeArc: largeArc, Sweep: sweep, End: Point{x, y},
	})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.commands = append(p.commands, PathCommand{Verb: VerbClose})
	return p
}

// PathRect returns a closed rectangle path.
func PathRect(r Rect) *Path {
	return NewPath().
		MoveTo(r.X, r.Y).
		LineTo(r.MaxX(), r.Y).
		LineTo(r.MaxX(), r.MaxY()).
		LineTo(r.X, r.MaxY()).
		Close()
}

// PathLine returns an open two-point path.
func PathLine(from, to Point) *Path {
	return NewPath().MoveTo(from.X, from.Y).LineTo(to.X, to.Y)
}

// PathCircle approximates a circle with four cubic Bezier quarters.
func PathCircle(center Point, radius float32) *Path {
	k := float32(kappa)
	r := radius
	cx, cy := center.X, center.Y
	return NewPath().
		MoveTo(cx+r, cy).
		CubicTo(cx+r, cy+r*k, cx+r*k, cy+r, cx, cy+r).
		CubicTo(cx-r*k, cy+r, cx-r, cy+r*k, cx-r, cy).
		CubicTo(cx-r, cy-r*k, cx-r*k, cy-r, cx, cy-r).
		CubicTo(cx+r*k, cy-r, cx+r, cy-r*k, cx+r, cy).
		Close()
}

// PathEllipse approximates an axis-aligned ellipse with four cubic Bezier
// quarters.
func PathEllipse(center Point, rx, ry float32) *Path {
	k := float32(kappa)
	cx, cy := center.X, center.Y
	return NewPath().
		MoveTo(cx+rx, cy).
		CubicTo(cx+rx, cy+ry*k, cx+rx*k, cy+ry, cx, cy+ry).
		CubicTo(cx-rx*k, cy+ry, cx-rx, cy+ry*k, cx-rx, cy).
		CubicTo(cx-rx, cy-ry*k, cx-rx*k, cy-ry, cx, cy-ry).
		CubicTo(cx+rx*k, cy-ry, cx+rx, cy-ry*k, cx+rx, cy).
		Close()
}

// PathRoundedRect returns a closed rounded-rectangle path. Each radius is
// clamped to half the shorter dimension. Each rounded corner is one cubic
// Bezier scaled by that corner's radius; a zero radius is a straight join.
// With all radii zero the result is identical to [PathRect].
func PathRoundedRect(r Rect, radius CornerRadius) *Path {
	rad := radius.Clamp(r.Size())
	if rad.IsZero() {
		return PathRect(r)
	}

	x, y, w, h := r.X, r.Y, r.Width, r.Height
	k := float32(kappa)
	tl, tr, br, bl := rad.TopLeft, rad.TopRight, rad.BottomRight, rad.BottomLeft

	p := NewPath().MoveTo(x+tl, y)

	// Top edge and top-right corner.
	p.LineTo(x+w-tr, y)
	if tr > 0 {
		p.CubicTo(x+w-tr*(1-k), y, x+w, y+tr*(1-k), x+w, y+tr)
	}

	// Right edge and bottom-right corner.
	p.LineTo(x+w, y+h-br)
	if br > 0 {
		p.CubicTo(x+w, y+h-br*(1-k), x+w-br*(1-k), y+h, x+w-br, y+h)
	}

	// Bottom edge and bottom-left corner.
	p.LineTo(x+bl, y+h)
	if bl > 0 {
		p.CubicTo(x+bl*(1-k), y+h, x, y+h-bl*(1-k), x, y+h-bl)
	}

	// Left edge and top-left corner.
	p.LineTo(x, y+tl)
	if tl > 0 {
		p.CubicTo(x, y+tl*(1-k), x+tl*(1-k), y, x+tl, y)
	}

	return p.Close()
}

// Bounds returns a conservative bounding box: curve control points are
// included, so the box may exceed the tight curve extent. Arc bounds include
// the endpoint extended by the radii.
func (p *Path) Bounds() Rect {
	if len(p.commands) == 0 {
		return Rect{}
	}

	minX := float32(math.Inf(1))
	minY := float32(math.Inf(1))
	maxX := float32(math.Inf(-1))
	maxY := float32(math.Inf(-1))

	include := func(pt Point) {
		minX = min(minX, pt.X)
		minY = min(minY, pt.Y)
		maxX = max(maxX, pt.X)
		maxY = max(maxY, pt.Y)
	}

	for _, cmd := range p.commands {
		switch cmd.Verb {
		case VerbMoveTo, VerbLineTo:
			include(cmd.End)
		case VerbQuadTo:
			include(cmd.Control1)
			include(cmd.End)
		case VerbCubicTo:
			include(cmd.Control1)
			include(cmd.Control2)
			include(cmd.End)
		case VerbArcTo:
			include(Point{cmd.End.X - cmd.Radii.X, cmd.End.Y - cmd.Radii.Y})
			include(Point{cmd.End.X + cmd.Radii.X, cmd.End.Y + cmd.Radii.Y})
		case VerbClose:
		}
	}

	if minX > maxX || minY > maxY {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Transform returns a copy of the path with every coordinate transformed.
// Arc radii are scaled by the transform's average absolute scale.
func (p *Path) Transform(a Affine2D) *Path {
	out := &Path{commands: make([]PathCommand, len(p.commands))}
	sx := float32(math.Hypot(float64(a.XX), float64(a.YX)))
	sy := float32(math.Hypot(float64(a.XY), float64(a.YY)))
	for i, cmd := range p.commands {
		cmd.Control1 = a.Apply(cmd.Control1)
		cmd.Control2 = a.Apply(cmd.Control2)
		cmd.End = a.Apply(cmd.End)
		cmd.Radii = Point{cmd.Radii.X * sx, cmd.Radii.Y * sy}
		out.commands[i] = cmd
	}
	return out
}
