package mesh

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

// faceExpect describes the plane a face lies on and its outward normal.
type faceExpect struct {
	axis   int
	plane  float32
	normal mgl32.Vec3
}

var faceExpectations = [NumDirections]faceExpect{
	{axis: 2, plane: 0.5, normal: mgl32.Vec3{0, 0, 1}},
	{axis: 1, plane: -0.5, normal: mgl32.Vec3{0, -1, 0}},
	{axis: 0, plane: 0.5, normal: mgl32.Vec3{1, 0, 0}},
	{axis: 2, plane: -0.5, normal: mgl32.Vec3{0, 0, -1}},
	{axis: 1, plane: 0.5, normal: mgl32.Vec3{0, 1, 0}},
	{axis: 0, plane: -0.5, normal: mgl32.Vec3{-1, 0, 0}},
}

func TestBuildFaceGeometry(t *testing.T) {
	for i := 0; i < NumDirections; i++ {
		face, err := BuildFace(i)
		if err != nil {
			t.Fatalf("BuildFace(%d): %v", i, err)
		}
		exp := faceExpectations[i]

		if face.Triangles != 2 {
			t.Errorf("face %d: Triangles = %d, want 2", i, face.Triangles)
		}
		if face.Direction.Index() != i {
			t.Errorf("face %d: Direction = %v", i, face.Direction)
		}

		corners := make(map[mgl32.Vec3]bool)
		for j, v := range face.Vertices {
			if v.Position[exp.axis] != exp.plane {
				t.Errorf("face %d vertex %d: axis %d = %f, want %f", i, j, exp.axis, v.Position[exp.axis], exp.plane)
			}
			for axis := 0; axis < 3; axis++ {
				if c := v.Position[axis]; c != 0.5 && c != -0.5 {
					t.Errorf("face %d vertex %d: coordinate %f off the unit cube", i, j, c)
				}
			}
			if v.Normal.Sub(exp.normal).Len() > epsilon {
				t.Errorf("face %d vertex %d: normal %v, want %v", i, j, v.Normal, exp.normal)
			}
			if face.Indices[j] != uint16(j) {
				t.Errorf("face %d: Indices[%d] = %d, want %d", i, j, face.Indices[j], j)
			}
			corners[v.Position] = true
		}
		if len(corners) != 4 {
			t.Errorf("face %d: %d unique corners, want 4", i, len(corners))
		}
	}
}

func TestBuildFaceNormalsOutward(t *testing.T) {
	for i := 0; i < NumDirections; i++ {
		face, err := BuildFace(i)
		if err != nil {
			t.Fatalf("BuildFace(%d): %v", i, err)
		}
		for tri := 0; tri < face.Triangles; tri++ {
			n := face.Vertices[tri*3].Normal
			if l := n.Len(); mgl32.Abs(l-1) > epsilon {
				t.Errorf("face %d tri %d: normal length %f", i, tri, l)
			}
			if d := n.Dot(face.Centroid(tri)); d <= 0 {
				t.Errorf("face %d tri %d: normal %v points inward (dot %f)", i, tri, n, d)
			}
			for k := 1; k < 3; k++ {
				if face.Vertices[tri*3+k].Normal != n {
					t.Errorf("face %d tri %d: normals differ within triangle", i, tri)
				}
			}
		}
	}
}

// The winding seen from outside must agree with the stored normal for both
// halves of the direction table, even though they use mirrored index orders.
func TestBuildFaceWindingConsistent(t *testing.T) {
	for i := 0; i < NumDirections; i++ {
		face, err := BuildFace(i)
		if err != nil {
			t.Fatalf("BuildFace(%d): %v", i, err)
		}
		outward := faceExpectations[i].normal
		for tri := 0; tri < face.Triangles; tri++ {
			a := face.Vertices[tri*3].Position
			b := face.Vertices[tri*3+1].Position
			c := face.Vertices[tri*3+2].Position
			if w := b.Sub(a).Cross(c.Sub(a)).Dot(outward); w <= 0 {
				t.Errorf("face %d tri %d: winding is clockwise from outside (%f)", i, tri, w)
			}
		}
	}
}

func TestBuildFaceInvalidIndex(t *testing.T) {
	for _, i := range []int{-1, 6} {
		if _, err := BuildFace(i); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("BuildFace(%d) error = %v, want ErrInvalidDirection", i, err)
		}
	}
}

func TestTriangleNormalDegenerate(t *testing.T) {
	a := mgl32.Vec3{0, 0, 0}
	b := mgl32.Vec3{1, 1, 1}
	c := mgl32.Vec3{2, 2, 2}
	if _, err := triangleNormal(a, b, c); !errors.Is(err, ErrDegenerateTriangle) {
		t.Errorf("collinear triangle: error = %v, want ErrDegenerateTriangle", err)
	}
}

func TestFaceVertexData(t *testing.T) {
	face, err := BuildFace(2)
	if err != nil {
		t.Fatal(err)
	}
	data := face.VertexData()
	if len(data) != VerticesPerFace*FloatsPerVertex {
		t.Fatalf("len = %d, want 36", len(data))
	}
	for j := 0; j < VerticesPerFace; j++ {
		rec := data[j*FloatsPerVertex : (j+1)*FloatsPerVertex]
		if rec[0] != 0.5 || rec[3] != 1 || rec[4] != 0 || rec[5] != 0 {
			t.Errorf("vertex %d: %v", j, rec)
		}
	}
}
