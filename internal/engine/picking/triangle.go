package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubeforge/internal/engine/graphics"
)

const triangleEpsilon = 1e-7

// Hit describes the closest intersection of a ray with a model.
type Hit struct {
	Distance float32    // world-space distance from the ray origin
	Point    mgl32.Vec3 // world-space hit point
	Normal   mgl32.Vec3 // world-space face normal, zero for box hits
	Geometry int
	Triangle int // -1 when only the bounding box was tested
}

// IntersectTriangle returns the distance along r to triangle (a, b, c).
// Both windings are hit.
func (r Ray) IntersectTriangle(a, b, c mgl32.Vec3) (float32, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if gomath.Abs(float64(det)) < triangleEpsilon {
		return 0, false
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}

// RaycastModel finds the closest triangle of model hit by r, with model
// placed in the world by world. Triangles are read from the shadow copies of
// LOD 0 of each geometry. If no geometry has shadow data the bounding box is
// tested instead.
func RaycastModel(r Ray, model *graphics.Model, world mgl32.Mat4) (Hit, bool) {
	if model == nil {
		return Hit{}, false
	}

	local := r.Transformed(world.Inv())
	if _, ok := local.IntersectBox(model.BoundingBox()); !ok {
		return Hit{}, false
	}

	best := Hit{Distance: float32(gomath.MaxFloat32), Triangle: -1}
	found := false
	tested := false
	for gi := 0; gi < model.NumGeometries(); gi++ {
		geom := model.Geometry(gi, 0)
		tris, ok := triangles(geom)
		if !ok {
			continue
		}
		tested = true
		for ti, tri := range tris {
			t, ok := local.IntersectTriangle(tri[0], tri[1], tri[2])
			if !ok {
				continue
			}
			point := world.Mul4x1(local.At(t).Vec4(1)).Vec3()
			dist := point.Sub(r.Origin).Len()
			if dist >= best.Distance {
				continue
			}
			n := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))
			best = Hit{
				Distance: dist,
				Point:    point,
				Normal:   transformNormal(world, n),
				Geometry: gi,
				Triangle: ti,
			}
			found = true
		}
	}

	if !tested {
		return boxHit(r, model.BoundingBox(), world)
	}
	return best, found
}

func boxHit(r Ray, box graphics.BoundingBox, world mgl32.Mat4) (Hit, bool) {
	local := r.Transformed(world.Inv())
	t, ok := local.IntersectBox(box)
	if !ok {
		return Hit{}, false
	}
	point := world.Mul4x1(local.At(t).Vec4(1)).Vec3()
	return Hit{
		Distance: point.Sub(r.Origin).Len(),
		Point:    point,
		Triangle: -1,
	}, true
}

func transformNormal(world mgl32.Mat4, n mgl32.Vec3) mgl32.Vec3 {
	out := world.Inv().Transpose().Mul4x1(n.Vec4(0)).Vec3()
	if out.Len() == 0 {
		return out
	}
	return out.Normalize()
}

// triangles expands the triangle list of g from its shadowed buffers.
func triangles(g *graphics.Geometry) ([][3]mgl32.Vec3, bool) {
	if g == nil || g.NumVertexBuffers() == 0 {
		return nil, false
	}
	vb := g.VertexBuffer(0)
	ib := g.IndexBuffer()
	if vb == nil || ib == nil {
		return nil, false
	}
	verts, indices := vb.ShadowData(), ib.ShadowData()
	if verts == nil || indices == nil {
		return nil, false
	}
	dr := g.DrawRange()
	if dr.Type != graphics.TriangleList {
		return nil, false
	}
	pos, ok := vb.Element(graphics.SemPosition)
	if !ok {
		return nil, false
	}

	stride := vb.VertexSize() / 4
	offset := pos.Offset / 4
	position := func(i uint32) (mgl32.Vec3, bool) {
		base := int(i)*stride + offset
		if base+3 > len(verts) {
			return mgl32.Vec3{}, false
		}
		return mgl32.Vec3{verts[base], verts[base+1], verts[base+2]}, true
	}

	end := min(dr.IndexStart+dr.IndexCount, len(indices))
	out := make([][3]mgl32.Vec3, 0, (end-dr.IndexStart)/3)
	for i := dr.IndexStart; i+2 < end; i += 3 {
		var tri [3]mgl32.Vec3
		valid := true
		for k := 0; k < 3; k++ {
			p, ok := position(indices[i+k])
			if !ok {
				valid = false
				break
			}
			tri[k] = p
		}
		if valid {
			out = append(out, tri)
		}
	}
	return out, true
}
