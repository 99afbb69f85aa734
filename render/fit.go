package render

import "github.com/gogpu/blinc"

// quadPlacement is one textured quad: a destination rect in device
// pixels and normalized source coordinates.
type quadPlacement struct {
	dst            blinc.Rect
	u0, v0, u1, v1 float32
}

// imagePlacements resolves an element's fit mode against the texture
// size. Cover crops, contain letterboxes, fill stretches, and tile
// repeats the image at native size. Results are already clipped.
func imagePlacements(elem *ImageElement, texW, texH uint32) []quadPlacement {
	if texW == 0 || texH == 0 || elem.Bounds.Width <= 0 || elem.Bounds.Height <= 0 {
		return nil
	}
	tw, th := float32(texW), float32(texH)
	b := elem.Bounds

	var quads []quadPlacement
	switch elem.Fit {
	case blinc.ImageFitCover:
		scale := max32(b.Width/tw, b.Height/th)
		srcW, srcH := b.Width/scale, b.Height/scale
		sx := (tw - srcW) * elem.Position.X
		sy := (th - srcH) * elem.Position.Y
		quads = []quadPlacement{{
			dst: b,
			u0:  sx / tw, v0: sy / th,
			u1: (sx + srcW) / tw, v1: (sy + srcH) / th,
		}}
	case blinc.ImageFitContain:
		scale := min32(b.Width/tw, b.Height/th)
		dstW, dstH := tw*scale, th*scale
		quads = []quadPlacement{{
			dst: blinc.Rect{
				X:     b.X + (b.Width-dstW)*elem.Position.X,
				Y:     b.Y + (b.Height-dstH)*elem.Position.Y,
				Width: dstW, Height: dstH,
			},
			u1: 1, v1: 1,
		}}
	case blinc.ImageFitTile:
		for y := b.Y; y < b.Y+b.Height; y += th {
			for x := b.X; x < b.X+b.Width; x += tw {
				w := min32(tw, b.X+b.Width-x)
				h := min32(th, b.Y+b.Height-y)
				quads = append(quads, quadPlacement{
					dst: blinc.Rect{X: x, Y: y, Width: w, Height: h},
					u1:  w / tw, v1: h / th,
				})
			}
		}
	default: // ImageFitFill
		quads = []quadPlacement{{dst: b, u1: 1, v1: 1}}
	}

	if !elem.HasClip {
		return quads
	}
	out := quads[:0]
	for _, q := range quads {
		if cq, ok := clipPlacement(q, elem.Clip); ok {
			out = append(out, cq)
		}
	}
	return out
}

// clipPlacement intersects the destination with the clip rect and
// remaps the source coordinates proportionally.
func clipPlacement(q quadPlacement, clip blinc.Rect) (quadPlacement, bool) {
	inter, ok := q.dst.Intersection(clip)
	if !ok || inter.Width <= 0 || inter.Height <= 0 {
		return quadPlacement{}, false
	}
	fx0 := (inter.X - q.dst.X) / q.dst.Width
	fy0 := (inter.Y - q.dst.Y) / q.dst.Height
	fx1 := (inter.X + inter.Width - q.dst.X) / q.dst.Width
	fy1 := (inter.Y + inter.Height - q.dst.Y) / q.dst.Height
	return quadPlacement{
		dst: inter,
		u0:  q.u0 + (q.u1-q.u0)*fx0,
		v0:  q.v0 + (q.v1-q.v0)*fy0,
		u1:  q.u0 + (q.u1-q.u0)*fx1,
		v1:  q.v0 + (q.v1-q.v0)*fy1,
	}, true
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
