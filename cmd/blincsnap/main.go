// Command blincsnap renders a demo frame offscreen and saves it as a
// PNG, exercising primitives, glass and text end to end.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/blinc"
	"github.com/gogpu/blinc/render"
	"github.com/gogpu/blinc/surface"
	"github.com/gogpu/blinc/text"
)

func main() {
	var (
		width  = flag.Uint("width", 800, "image width")
		height = flag.Uint("height", 600, "image height")
		output = flag.String("output", "snap.png", "output file")
		font   = flag.String("font", "", "TTF file for the text demo")
	)
	flag.Parse()

	var opts []render.Option
	if *font != "" {
		src, err := text.NewSourceFromFile(*font)
		if err != nil {
			log.Fatalf("load font: %v", err)
		}
		opts = append(opts, render.WithFontSource(src))
	}

	s, err := surface.New(uint32(*width), uint32(*height), opts...)
	if err != nil {
		log.Fatalf("create surface: %v", err)
	}
	defer s.Close()

	tree := buildDemoTree(float32(*width), float32(*height), *font != "")
	if err := s.Render(tree, nil); err != nil {
		log.Fatalf("render: %v", err)
	}
	if err := s.SavePNG(*output); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("saved %s (%dx%d)", *output, *width, *height)
}

// demoTree is a hand-rolled RenderTree. Hosts normally adapt their
// layout engine; for a demo a slice of nodes is enough.
type demoTree struct {
	nodes    []demoNode
	children map[render.NodeID][]render.NodeID
}

type demoNode struct {
	bounds blinc.Rect
	node   render.RenderNode
}

func (t *demoTree) Root() render.NodeID { return 1 }

func (t *demoTree) Children(id render.NodeID) []render.NodeID {
	return t.children[id]
}

func (t *demoTree) Bounds(id render.NodeID, parentOffset blinc.Point) blinc.Rect {
	return t.nodes[id-1].bounds.Translate(parentOffset.X, parentOffset.Y)
}

func (t *demoTree) Node(id render.NodeID) render.RenderNode { return t.nodes[id-1].node }

func (t *demoTree) ScrollOffset(render.NodeID) blinc.Point { return blinc.Point{} }

func (t *demoTree) Motion(render.NodeID) render.Motion { return render.IdentityMotion() }

func (t *demoTree) ScaleFactor() float32 { return 1 }

func (t *demoTree) add(parent render.NodeID, bounds blinc.Rect, node render.RenderNode) render.NodeID {
	t.nodes = append(t.nodes, demoNode{bounds: bounds, node: node})
	id := render.NodeID(len(t.nodes))
	if parent != 0 {
		t.children[parent] = append(t.children[parent], id)
	}
	return id
}

func buildDemoTree(w, h float32, withText bool) *demoTree {
	t := &demoTree{children: map[render.NodeID][]render.NodeID{}}

	root := t.add(0, blinc.Rect{Width: w, Height: h}, render.RenderNode{
		Material: &render.Material{Kind: render.MaterialSolid, Color: blinc.RGBA(0.12, 0.14, 0.2, 1)},
	})

	// Colored circles behind the glass panel.
	t.add(root, blinc.Rect{X: w * 0.2, Y: h * 0.25, Width: 180, Height: 180}, render.RenderNode{
		Material: &render.Material{
			Kind:  render.MaterialSolid,
			Shape: render.PrimCircle,
			Color: blinc.RGBA(0.9, 0.35, 0.3, 1),
		},
	})
	t.add(root, blinc.Rect{X: w * 0.45, Y: h * 0.35, Width: 220, Height: 140}, render.RenderNode{
		Material: &render.Material{
			Kind:         render.MaterialSolid,
			Color:        blinc.RGBA(0.25, 0.6, 0.9, 1),
			CornerRadius: 24,
		},
	})

	t.add(root, blinc.Rect{X: w*0.5 - 160, Y: h*0.5 - 90, Width: 320, Height: 180}, render.RenderNode{
		Material: &render.Material{
			Kind:         render.MaterialGlass,
			Glass:        blinc.GlassFrosted(),
			CornerRadius: 20,
		},
	})

	card := render.RenderNode{
		Material: &render.Material{
			Kind:         render.MaterialSolid,
			Color:        blinc.RGBA(1, 1, 1, 0.9),
			CornerRadius: 12,
		},
		Class: render.ClassForeground,
	}
	cardID := t.add(root, blinc.Rect{X: 40, Y: h - 120, Width: 280, Height: 80}, card)

	if withText {
		t.add(cardID, blinc.Rect{X: 20, Y: 0, Width: 240, Height: 80}, render.RenderNode{
			Text: &render.TextSpec{
				Content:   "blinc compositor",
				FontSize:  22,
				Color:     blinc.RGBA(0.1, 0.1, 0.12, 1),
				VAlign:    text.AlignCenter,
				Underline: true,
			},
			Class: render.ClassForeground,
		})
	}
	return t
}
