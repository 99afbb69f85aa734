package render

import "github.com/gogpu/blinc"

// walkState is the accumulator threaded down the tree. It is a value
// type on purpose: siblings never see each other's mutations.
type walkState struct {
	offset  blinc.Point
	clip    blinc.Rect
	hasClip bool
	opacity float32
	zLayer  int
}

// Collect walks the tree once and flattens it into device-pixel
// primitives, text elements, and image elements. A nil tree yields
// empty content.
func Collect(tree RenderTree) *FrameContent {
	fc := &FrameContent{}
	if tree == nil {
		return fc
	}
	scale := tree.ScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	collectNode(tree, tree.Root(), walkState{opacity: 1}, fc, scale)
	return fc
}

func collectNode(tree RenderTree, id NodeID, st walkState, fc *FrameContent, scale float32) {
	motion := tree.Motion(id)
	st.opacity *= motion.Opacity
	if st.opacity <= 0 {
		return
	}

	bounds := tree.Bounds(id, st.offset)
	bounds = bounds.Translate(motion.Translation.X, motion.Translation.Y)

	node := tree.Node(id)
	if node.ZLayer != 0 {
		st.zLayer = node.ZLayer
	}
	if node.Clip != nil {
		abs := node.Clip.Translate(bounds.X, bounds.Y)
		if st.hasClip {
			st.clip, _ = st.clip.Intersection(abs)
		} else {
			st.clip = abs
			st.hasClip = true
		}
	}

	emitNode(node, bounds, st, fc, scale)

	child := st
	child.offset = blinc.Pt(bounds.X, bounds.Y)
	scroll := tree.ScrollOffset(id)
	child.offset.X += scroll.X
	child.offset.Y += scroll.Y

	for i, c := range tree.Children(id) {
		cs := child
		if node.IsStack {
			cs.zLayer = st.zLayer + i
		}
		collectNode(tree, c, cs, fc, scale)
	}
}

func emitNode(node RenderNode, bounds blinc.Rect, st walkState, fc *FrameContent, scale float32) {
	clip := scaleRect(st.clip, scale)
	dev := scaleRect(bounds, scale)

	if m := node.Material; m != nil {
		p := Primitive{
			Kind:         m.Shape,
			Bounds:       dev,
			CornerRadius: m.CornerRadius * scale,
			Color:        m.Color.MulAlpha(st.opacity),
			StrokeWidth:  m.StrokeWidth * scale,
			Class:        node.Class,
			ZLayer:       st.zLayer,
			Clip:         clip,
			HasClip:      st.hasClip,
		}
		switch m.Kind {
		case MaterialGlass:
			g := m.Glass
			p.Class = ClassGlass
			p.Color = g.Tint.MulAlpha(st.opacity)
			p.Glass = &GlassParams{
				BlurRadius: g.Blur * scale,
				Tint:       g.Tint,
				Saturation: g.Saturation,
				Brightness: g.Brightness,
				Noise:      g.Noise,
				Border:     g.BorderThickness,
			}
		case MaterialBlur:
			b := m.Blur
			p.Class = ClassGlass
			tint := blinc.RGBA(1, 1, 1, 0)
			if b.Tint != nil {
				tint = *b.Tint
			}
			p.Color = tint.MulAlpha(b.Opacity * st.opacity)
			p.Glass = &GlassParams{
				BlurRadius: b.Radius * scale,
				Tint:       tint,
				Saturation: 1,
				Brightness: 1,
			}
		}
		fc.Batch.Append(p)
	}

	if t := node.Text; t != nil && t.Content != "" {
		fc.Texts = append(fc.Texts, TextElement{
			Content:       t.Content,
			Bounds:        dev,
			FontSize:      t.FontSize * scale,
			Color:         t.Color,
			VAlign:        t.VAlign,
			Underline:     t.Underline,
			Strikethrough: t.Strikethrough,
			Opacity:       st.opacity,
			ZLayer:        st.zLayer,
			Clip:          clip,
			HasClip:       st.hasClip,
		})
	}

	if img := node.Image; img != nil && img.Source != "" {
		op := img.Opacity
		if op == 0 {
			op = 1
		}
		fc.Images = append(fc.Images, ImageElement{
			Source:   img.Source,
			Bounds:   dev,
			Fit:      img.Fit,
			Position: img.Position,
			Opacity:  op * st.opacity,
			Tint:     img.Tint,
			Class:    img.Class,
			ZLayer:   st.zLayer,
			Clip:     clip,
			HasClip:  st.hasClip,
		})
	}
}

func scaleRect(r blinc.Rect, s float32) blinc.Rect {
	return blinc.Rect{X: r.X * s, Y: r.Y * s, Width: r.Width * s, Height: r.Height * s}
}
