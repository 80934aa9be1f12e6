package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Layout constants for the flattened vertex stream.
const (
	FloatsPerVertex  = 6
	VerticesPerFace  = 6
	TrianglesPerFace = 2
)

// ErrDegenerateTriangle means a triangle had a zero-length normal.
var ErrDegenerateTriangle = errors.New("degenerate triangle")

// degenerateEpsilon is the smallest cross product length accepted as a
// real triangle.
const degenerateEpsilon = 1e-6

// Unit quad corners in face-local 2D space.
var quadCorners = [4]mgl32.Vec2{
	{-0.5, -0.5},
	{0.5, -0.5},
	{-0.5, 0.5},
	{0.5, 0.5},
}

// Corner order for faces 0..2 and the mirrored order for faces 3..5.
var (
	windingOuter  = [VerticesPerFace]uint8{2, 0, 1, 2, 1, 3}
	windingMirror = [VerticesPerFace]uint8{0, 2, 1, 1, 2, 3}
)

// Vertex is one interleaved position+normal record.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Face is the geometry of one cube side: two triangles with their own six
// vertices and local indices 0..5.
type Face struct {
	Direction Direction
	Vertices  [VerticesPerFace]Vertex
	Indices   [VerticesPerFace]uint16
	Triangles int
}

// BuildFace generates the face for direction index 0..5.
//
// Z faces sit at z=+0.5 for indices below 3, Y faces at y=-0.5 and X faces
// at x=+0.5; indices 3..5 take the opposite plane and the mirrored winding.
// The Y sign is inverted relative to Z and X; together with the winding
// tables this keeps every triangle facing away from the cube center.
func BuildFace(index int) (Face, error) {
	dir, err := DirectionAt(index)
	if err != nil {
		return Face{}, err
	}

	winding := windingOuter
	plane := float32(0.5)
	if index >= 3 {
		winding = windingMirror
		plane = -0.5
	}

	face := Face{Direction: dir, Triangles: TrianglesPerFace}
	for i, corner := range winding {
		p := quadCorners[corner]
		var pos mgl32.Vec3
		switch index {
		case 0, 3:
			pos = mgl32.Vec3{p.X(), p.Y(), plane}
		case 1, 4:
			pos = mgl32.Vec3{p.X(), -plane, p.Y()}
		default:
			pos = mgl32.Vec3{plane, p.X(), p.Y()}
		}
		face.Vertices[i] = Vertex{Position: pos}
		face.Indices[i] = uint16(i)
	}

	for tri := 0; tri < TrianglesPerFace; tri++ {
		v := face.Vertices[tri*3 : tri*3+3]
		n, err := triangleNormal(v[0].Position, v[1].Position, v[2].Position)
		if err != nil {
			return Face{}, fmt.Errorf("face %s triangle %d: %w", dir, tri, err)
		}
		v[0].Normal, v[1].Normal, v[2].Normal = n, n, n
	}

	return face, nil
}

// triangleNormal returns the unit normal of (b-a) x (c-a).
func triangleNormal(a, b, c mgl32.Vec3) (mgl32.Vec3, error) {
	cross := b.Sub(a).Cross(c.Sub(a))
	if cross.Len() < degenerateEpsilon {
		return mgl32.Vec3{}, ErrDegenerateTriangle
	}
	return cross.Normalize(), nil
}

// VertexData returns the face vertices as {x,y,z,nx,ny,nz} floats.
func (f Face) VertexData() []float32 {
	data := make([]float32, 0, VerticesPerFace*FloatsPerVertex)
	for _, v := range f.Vertices {
		data = appendVertex(data, v)
	}
	return data
}

func appendVertex(dst []float32, v Vertex) []float32 {
	return append(dst,
		v.Position[0], v.Position[1], v.Position[2],
		v.Normal[0], v.Normal[1], v.Normal[2],
	)
}

// Centroid returns the mean position of triangle tri (0 or 1).
func (f Face) Centroid(tri int) mgl32.Vec3 {
	v := f.Vertices[tri*3 : tri*3+3]
	return v[0].Position.Add(v[1].Position).Add(v[2].Position).Mul(1.0 / 3.0)
}
