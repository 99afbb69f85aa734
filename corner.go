package blinc

// CornerRadius holds the radius of each rounded-rectangle corner, clockwise
// from top-left.
type CornerRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float32
}

// CornerRadiusAll returns the same radius on all four corners.
func CornerRadiusAll(r float32) CornerRadius {
	return CornerRadius{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// IsZero reports whether all corners are square.
func (c CornerRadius) IsZero() bool {
	return c.TopLeft == 0 && c.TopRight == 0 && c.BottomRight == 0 && c.BottomLeft == 0
}

// Max returns the largest corner radius.
func (c CornerRadius) Max() float32 {
	return max(max(c.TopLeft, c.TopRight), max(c.BottomRight, c.BottomLeft))
}

// Clamp limits every radius to half the shorter dimension of the given
// size, preventing adjacent corner curves from overlapping. Negative radii
// are clamped to zero.
func (c CornerRadius) Clamp(s Size) CornerRadius {
	maxR := max(min(s.Width, s.Height)/2, 0)
	clamp := func(r float32) float32 {
		if r < 0 {
			return 0
		}
		return min(r, maxR)
	}
	return CornerRadius{
		TopLeft:     clamp(c.TopLeft),
		TopRight:    clamp(c.TopRight),
		BottomRight: clamp(c.BottomRight),
		BottomLeft:  clamp(c.BottomLeft),
	}
}
