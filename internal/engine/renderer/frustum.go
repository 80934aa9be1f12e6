package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubeforge/internal/engine/graphics"
)

// Frustum holds the six clip planes of a view-projection as (n, d) with
// n.p + d >= 0 inside.
type Frustum [6]mgl32.Vec4

// NewFrustum extracts the planes of viewProj.
func NewFrustum(viewProj mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := viewProj.Row(0), viewProj.Row(1), viewProj.Row(2), viewProj.Row(3)
	f := Frustum{
		r3.Add(r0), // left
		r3.Sub(r0), // right
		r3.Add(r1), // bottom
		r3.Sub(r1), // top
		r3.Add(r2), // near
		r3.Sub(r2), // far
	}
	for i, p := range f {
		if l := p.Vec3().Len(); l > 0 {
			f[i] = p.Mul(1 / l)
		}
	}
	return f
}

// IntersectsBox reports whether any part of the world-space box may be inside.
func (f Frustum) IntersectsBox(box graphics.BoundingBox) bool {
	for _, p := range f {
		// Corner furthest along the plane normal
		v := box.Min
		for axis := 0; axis < 3; axis++ {
			if p[axis] >= 0 {
				v[axis] = box.Max[axis]
			}
		}
		if p.Vec3().Dot(v)+p[3] < 0 {
			return false
		}
	}
	return true
}
