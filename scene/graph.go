package scene

import "github.com/gogpu/blinc"

// IDGenerator issues layer ids, starting at 1 so the zero LayerID stays
// available as "unassigned". Ids are never reused within a generator's
// lifetime.
type IDGenerator struct {
	next uint64
}

// NewIDGenerator returns a generator whose first id is 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{next: 1}
}

// Next returns a fresh unique id.
func (g *IDGenerator) Next() blinc.LayerID {
	id := blinc.LayerID(g.next)
	g.next++
	return id
}

// SceneGraph owns a layer tree and the id generator for its layers.
// Trees are rebuilt per UI rebuild; the graph itself persists so issued
// ids stay unique across rebuilds.
type SceneGraph struct {
	root *Layer
	gen  *IDGenerator
}

// NewSceneGraph returns an empty graph.
func NewSceneGraph() *SceneGraph {
	return &SceneGraph{gen: NewIDGenerator()}
}

// Root returns the root layer, nil when unset.
func (g *SceneGraph) Root() *Layer { return g.root }

// SetRoot replaces the root layer.
func (g *SceneGraph) SetRoot(root *Layer) { g.root = root }

// NewLayerID issues a fresh unique id for a layer of this graph.
func (g *SceneGraph) NewLayerID() blinc.LayerID { return g.gen.Next() }

// FindLayer returns the first layer with the given id in depth-first
// pre-order, or nil. Duplicate ids (possible only in externally constructed
// trees; the generator contract prevents them) resolve to the first match.
func (g *SceneGraph) FindLayer(id blinc.LayerID) *Layer {
	if g.root == nil || id == 0 {
		return nil
	}
	return findLayer(g.root, id)
}

func findLayer(layer *Layer, id blinc.LayerID) *Layer {
	if layer.ID() == id {
		return layer
	}
	var found *Layer
	layer.VisitChildren(func(child *Layer) {
		if found == nil {
			found = findLayer(child, id)
		}
	})
	return found
}

// Traverse visits every layer depth-first pre-order with its depth.
func (g *SceneGraph) Traverse(fn func(layer *Layer, depth int)) {
	if g.root == nil {
		return
	}
	g.root.Walk(fn)
}

// LayerCount returns the total number of layers in the tree.
func (g *SceneGraph) LayerCount() int {
	count := 0
	g.Traverse(func(*Layer, int) { count++ })
	return count
}

// VisibleLayerCount returns the number of visible layers.
func (g *SceneGraph) VisibleLayerCount() int {
	count := 0
	g.Traverse(func(l *Layer, _ int) {
		if l.IsVisible() {
			count++
		}
	})
	return count
}

// Has3D reports whether any Scene3D, Billboard or Transform3D layer exists
// in the tree. A Viewport3D alone does not count; traversal into its
// embedded scene finds the Scene3D that does.
func (g *SceneGraph) Has3D() bool {
	has3D := false
	g.Traverse(func(l *Layer, _ int) {
		if l.Is3D() {
			has3D = true
		}
	})
	return has3D
}
