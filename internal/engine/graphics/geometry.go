package graphics

import "fmt"

// PrimitiveType is how indices are assembled into primitives.
type PrimitiveType int

const (
	TriangleList PrimitiveType = iota
	LineList
	PointList
	TriangleStrip
)

func (p PrimitiveType) String() string {
	switch p {
	case TriangleList:
		return "triangle_list"
	case LineList:
		return "line_list"
	case PointList:
		return "point_list"
	case TriangleStrip:
		return "triangle_strip"
	default:
		return "unknown"
	}
}

// DrawRange selects the indices drawn by a geometry.
type DrawRange struct {
	Type       PrimitiveType
	IndexStart int
	IndexCount int
}

// Geometry binds vertex buffers to slots, an index buffer and a draw range.
type Geometry struct {
	vertexBuffers []*VertexBuffer
	indexBuffer   *IndexBuffer
	drawRange     DrawRange
}

// NewGeometry creates an empty geometry.
func NewGeometry() *Geometry {
	return &Geometry{}
}

// SetVertexBuffer binds vb at slot, growing the slot list as needed.
func (g *Geometry) SetVertexBuffer(slot int, vb *VertexBuffer) error {
	if slot < 0 {
		return fmt.Errorf("vertex buffer slot %d out of range", slot)
	}
	if vb == nil {
		return fmt.Errorf("vertex buffer slot %d: %w", slot, ErrNilBuffer)
	}
	for len(g.vertexBuffers) <= slot {
		g.vertexBuffers = append(g.vertexBuffers, nil)
	}
	g.vertexBuffers[slot] = vb
	return nil
}

// SetIndexBuffer binds ib.
func (g *Geometry) SetIndexBuffer(ib *IndexBuffer) {
	g.indexBuffer = ib
}

// SetDrawRange sets the primitive type and index range. The range must lie
// within the bound index buffer.
func (g *Geometry) SetDrawRange(t PrimitiveType, indexStart, indexCount int) error {
	if g.indexBuffer == nil {
		return fmt.Errorf("%w: no index buffer bound", ErrDrawRange)
	}
	if indexStart < 0 || indexCount <= 0 || indexStart+indexCount > g.indexBuffer.IndexCount() {
		return fmt.Errorf("%w: [%d, %d) with %d indices", ErrDrawRange,
			indexStart, indexStart+indexCount, g.indexBuffer.IndexCount())
	}
	g.drawRange = DrawRange{Type: t, IndexStart: indexStart, IndexCount: indexCount}
	return nil
}

// DrawRange returns the current draw range.
func (g *Geometry) DrawRange() DrawRange { return g.drawRange }

// NumVertexBuffers returns the number of slots.
func (g *Geometry) NumVertexBuffers() int { return len(g.vertexBuffers) }

// VertexBuffer returns the buffer in slot, or nil.
func (g *Geometry) VertexBuffer(slot int) *VertexBuffer {
	if slot < 0 || slot >= len(g.vertexBuffers) {
		return nil
	}
	return g.vertexBuffers[slot]
}

// IndexBuffer returns the bound index buffer.
func (g *Geometry) IndexBuffer() *IndexBuffer { return g.indexBuffer }

// PrimitiveCount returns the number of primitives in the draw range.
func (g *Geometry) PrimitiveCount() int {
	n := g.drawRange.IndexCount
	switch g.drawRange.Type {
	case TriangleList:
		return n / 3
	case LineList:
		return n / 2
	case TriangleStrip:
		if n < 3 {
			return 0
		}
		return n - 2
	default:
		return n
	}
}
