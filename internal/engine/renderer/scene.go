package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubeforge/internal/engine/graphics"
)

// Node places a model in the world.
type Node struct {
	Name  string
	Model *graphics.Model
	World mgl32.Mat4
	Color mgl32.Vec3
	Grid  bool // draw the procedural ground grid on this node
}

// WorldBounds returns the axis-aligned box around the transformed model bounds.
func (n Node) WorldBounds() graphics.BoundingBox {
	local := n.Model.BoundingBox()
	var out graphics.BoundingBox
	for i := 0; i < 8; i++ {
		p := local.Min
		if i&1 != 0 {
			p[0] = local.Max[0]
		}
		if i&2 != 0 {
			p[1] = local.Max[1]
		}
		if i&4 != 0 {
			p[2] = local.Max[2]
		}
		w := mgl32.TransformCoordinate(p, n.World)
		if i == 0 {
			out = graphics.BoundingBox{Min: w, Max: w}
			continue
		}
		out = out.Merge(graphics.BoundingBox{Min: w, Max: w})
	}
	return out
}

// TriangleCount sums the draw ranges of LOD 0 of every geometry.
func (n Node) TriangleCount() int {
	total := 0
	for i := 0; i < n.Model.NumGeometries(); i++ {
		if g := n.Model.Geometry(i, 0); g != nil {
			total += g.PrimitiveCount()
		}
	}
	return total
}

// Scene is what one frame draws.
type Scene struct {
	Nodes    []Node
	LightDir mgl32.Vec3 // direction the light travels
}

// Bounds is the union of every node's world bounds.
func (s Scene) Bounds() graphics.BoundingBox {
	var out graphics.BoundingBox
	for i, n := range s.Nodes {
		if i == 0 {
			out = n.WorldBounds()
			continue
		}
		out = out.Merge(n.WorldBounds())
	}
	return out
}
