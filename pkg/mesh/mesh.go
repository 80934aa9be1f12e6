package mesh

import (
	"fmt"
	"math"
)

// Mesh is an ordered list of faces flattened on demand.
type Mesh struct {
	faces []Face
}

// NewMesh wraps faces in the given order.
func NewMesh(faces []Face) *Mesh {
	return &Mesh{faces: faces}
}

// Build generates one face per direction in s, from bit 0 to bit 5.
func Build(s DirectionSet) (*Mesh, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	faces := make([]Face, 0, s.Count())
	for i := 0; i < NumDirections; i++ {
		if !s.Has(Direction(1 << i)) {
			continue
		}
		face, err := BuildFace(i)
		if err != nil {
			return nil, err
		}
		faces = append(faces, face)
	}
	return NewMesh(faces), nil
}

// Faces returns the faces in output order.
func (m *Mesh) Faces() []Face {
	return m.faces
}

// VertexCount is the number of position+normal records.
func (m *Mesh) VertexCount() int {
	n := 0
	for _, f := range m.faces {
		n += len(f.Vertices)
	}
	return n
}

// TriangleCount is the number of triangles across all faces.
func (m *Mesh) TriangleCount() int {
	n := 0
	for _, f := range m.faces {
		n += f.Triangles
	}
	return n
}

// Vertices returns all vertices in face order.
func (m *Mesh) Vertices() []Vertex {
	verts := make([]Vertex, 0, m.VertexCount())
	for _, f := range m.faces {
		verts = append(verts, f.Vertices[:]...)
	}
	return verts
}

// VertexData concatenates the interleaved vertex data of every face.
func (m *Mesh) VertexData() []float32 {
	data := make([]float32, 0, m.VertexCount()*FloatsPerVertex)
	for _, f := range m.faces {
		for _, v := range f.Vertices {
			data = appendVertex(data, v)
		}
	}
	return data
}

// IndexData numbers every vertex sequentially from 0. Vertices are never
// shared, so the stream is as long as the vertex count and the faces'
// local indices are not consulted.
func (m *Mesh) IndexData() ([]uint16, error) {
	n := m.VertexCount()
	if n > math.MaxUint16+1 {
		return nil, fmt.Errorf("mesh has %d vertices, too many for 16-bit indices", n)
	}
	indices := make([]uint16, n)
	for i := range indices {
		indices[i] = uint16(i)
	}
	return indices, nil
}
