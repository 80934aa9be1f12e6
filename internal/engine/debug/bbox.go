// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubeforge/internal/engine/graphics"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges x 2).
const BBoxWireframeVertexCount = 24

// boxEdges indexes the corners produced by boxCorners; bit 0 selects max X,
// bit 1 max Y, bit 2 max Z.
var boxEdges = [12][2]int{
	// Bottom
	{0, 1}, {1, 5}, {5, 4}, {4, 0},
	// Top
	{2, 3}, {3, 7}, {7, 6}, {6, 2},
	// Vertical
	{0, 2}, {1, 3}, {5, 7}, {4, 6},
}

func boxCorners(b graphics.BoundingBox) [8]mgl32.Vec3 {
	var c [8]mgl32.Vec3
	for i := range c {
		p := b.Min
		if i&1 != 0 {
			p[0] = b.Max[0]
		}
		if i&2 != 0 {
			p[1] = b.Max[1]
		}
		if i&4 != 0 {
			p[2] = b.Max[2]
		}
		c[i] = p
	}
	return c
}

// BBoxWireframe creates line-list vertices, [x, y, z] each, for the edges of
// box after transforming its corners by world.
func BBoxWireframe(box graphics.BoundingBox, world mgl32.Mat4) []float32 {
	corners := boxCorners(box)
	for i, c := range corners {
		corners[i] = mgl32.TransformCoordinate(c, world)
	}

	out := make([]float32, 0, BBoxWireframeVertexCount*3)
	for _, e := range boxEdges {
		a, b := corners[e[0]], corners[e[1]]
		out = append(out, a[0], a[1], a[2], b[0], b[1], b[2])
	}
	return out
}
