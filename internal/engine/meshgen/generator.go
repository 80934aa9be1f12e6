// Package meshgen turns a set of cube faces into a renderable model.
package meshgen

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeforge/internal/engine/graphics"
	"github.com/Faultbox/cubeforge/internal/logger"
	"github.com/Faultbox/cubeforge/pkg/mesh"
)

// VertexLayout is the interleaved layout of generated vertices.
var VertexLayout = []graphics.VertexElement{
	{Type: graphics.TypeVector3, Semantic: graphics.SemPosition},
	{Type: graphics.TypeVector3, Semantic: graphics.SemNormal},
}

// UnitCubeBounds holds every vertex any face set can produce.
var UnitCubeBounds = graphics.BoundingBox{
	Min: mgl32.Vec3{-0.5, -0.5, -0.5},
	Max: mgl32.Vec3{0.5, 0.5, 0.5},
}

// Generator builds models on a graphics device.
type Generator struct {
	device graphics.Device
	log    *zap.Logger
}

// NewGenerator creates a generator allocating on dev.
// The device must be ready (GL context current) before CreateModel.
func NewGenerator(dev graphics.Device) *Generator {
	return &Generator{
		device: dev,
		log:    logger.Named("meshgen"),
	}
}

// CreateModel builds a single-geometry model holding the faces in dirs.
//
// Faces are emitted in bit order. Vertex and index buffers are shadowed and
// registered on the model so it can be restored and ray-picked. An empty set
// yields a model with no geometry and no allocations.
func (g *Generator) CreateModel(dirs mesh.DirectionSet) (*graphics.Model, error) {
	m, err := mesh.Build(dirs)
	if err != nil {
		g.log.Error("face generation failed", zap.Stringer("directions", dirs), zap.Error(err))
		return nil, fmt.Errorf("building faces for %v: %w", dirs, err)
	}

	model := graphics.NewModel()
	model.SetBoundingBox(UnitCubeBounds)

	vertexData := m.VertexData()
	indexData, err := m.IndexData()
	if err != nil {
		return nil, err
	}
	numVertices := len(vertexData) / mesh.FloatsPerVertex

	if numVertices == 0 {
		g.log.Debug("empty direction set, model has no geometry")
		return model, nil
	}

	vb := graphics.NewVertexBuffer(g.device)
	ib := graphics.NewIndexBuffer(g.device)

	vb.SetShadowed(true)
	if err := vb.SetSize(numVertices, VertexLayout); err != nil {
		return nil, err
	}
	if err := vb.SetData(vertexData); err != nil {
		vb.Release()
		return nil, err
	}

	ib.SetShadowed(true)
	if err := ib.SetSize(numVertices, false); err != nil {
		vb.Release()
		return nil, err
	}
	if err := ib.SetData(indexData); err != nil {
		vb.Release()
		ib.Release()
		return nil, err
	}

	if err := g.assemble(model, vb, ib, numVertices); err != nil {
		vb.Release()
		ib.Release()
		return nil, err
	}

	g.log.Debug("model created",
		zap.Stringer("directions", dirs),
		zap.Int("faces", len(m.Faces())),
		zap.Int("vertices", numVertices),
		zap.Int("triangles", m.TriangleCount()),
	)
	return model, nil
}

// assemble wires the buffers into one geometry and registers them.
func (g *Generator) assemble(model *graphics.Model, vb *graphics.VertexBuffer, ib *graphics.IndexBuffer, numVertices int) error {
	geom := graphics.NewGeometry()
	if err := geom.SetVertexBuffer(0, vb); err != nil {
		return err
	}
	geom.SetIndexBuffer(ib)
	if err := geom.SetDrawRange(graphics.TriangleList, 0, numVertices); err != nil {
		return err
	}

	if err := model.SetNumGeometries(1); err != nil {
		return err
	}
	if err := model.SetGeometry(0, 0, geom); err != nil {
		return err
	}

	// No morphing: one zero-length range for the single vertex buffer.
	if err := model.SetVertexBuffers([]*graphics.VertexBuffer{vb}, []int{0}, []int{0}); err != nil {
		return err
	}
	return model.SetIndexBuffers([]*graphics.IndexBuffer{ib})
}
