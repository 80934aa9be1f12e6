package graphics

import (
	"errors"
	"fmt"
)

// Model is a renderable set of geometries with LOD levels, a bounding box
// and the buffer lists needed to restore it after device loss.
type Model struct {
	geometries       [][]*Geometry
	boundingBox      BoundingBox
	vertexBuffers    []*VertexBuffer
	indexBuffers     []*IndexBuffer
	morphRangeStarts []int
	morphRangeCounts []int
}

// NewModel creates a model with no geometries.
func NewModel() *Model {
	return &Model{}
}

// SetNumGeometries resizes the geometry list. Each geometry gets one LOD
// level.
func (m *Model) SetNumGeometries(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d geometries", ErrGeometryIndex, n)
	}
	geoms := make([][]*Geometry, n)
	for i := range geoms {
		if i < len(m.geometries) && len(m.geometries[i]) > 0 {
			geoms[i] = m.geometries[i]
			continue
		}
		geoms[i] = make([]*Geometry, 1)
	}
	m.geometries = geoms
	return nil
}

// SetNumGeometryLodLevels resizes the LOD list of geometry index.
func (m *Model) SetNumGeometryLodLevels(index, n int) error {
	if index < 0 || index >= len(m.geometries) {
		return fmt.Errorf("%w: geometry %d of %d", ErrGeometryIndex, index, len(m.geometries))
	}
	if n <= 0 {
		return fmt.Errorf("%w: %d LOD levels", ErrGeometryIndex, n)
	}
	lods := make([]*Geometry, n)
	copy(lods, m.geometries[index])
	m.geometries[index] = lods
	return nil
}

// SetGeometry places g at geometry index and LOD level.
func (m *Model) SetGeometry(index, lod int, g *Geometry) error {
	if index < 0 || index >= len(m.geometries) {
		return fmt.Errorf("%w: geometry %d of %d", ErrGeometryIndex, index, len(m.geometries))
	}
	if lod < 0 || lod >= len(m.geometries[index]) {
		return fmt.Errorf("%w: LOD %d of %d", ErrGeometryIndex, lod, len(m.geometries[index]))
	}
	m.geometries[index][lod] = g
	return nil
}

// Geometry returns the geometry at index and LOD, or nil.
func (m *Model) Geometry(index, lod int) *Geometry {
	if index < 0 || index >= len(m.geometries) {
		return nil
	}
	if lod < 0 || lod >= len(m.geometries[index]) {
		return nil
	}
	return m.geometries[index][lod]
}

// NumGeometries returns the number of geometries.
func (m *Model) NumGeometries() int { return len(m.geometries) }

// NumGeometryLodLevels returns the LOD count of geometry index.
func (m *Model) NumGeometryLodLevels(index int) int {
	if index < 0 || index >= len(m.geometries) {
		return 0
	}
	return len(m.geometries[index])
}

// SetBoundingBox sets the local-space bounds.
func (m *Model) SetBoundingBox(b BoundingBox) { m.boundingBox = b }

// BoundingBox returns the local-space bounds.
func (m *Model) BoundingBox() BoundingBox { return m.boundingBox }

// SetVertexBuffers registers the model's vertex buffers with their morph
// ranges. Empty range slices mean no morphing for every buffer.
func (m *Model) SetVertexBuffers(buffers []*VertexBuffer, morphRangeStarts, morphRangeCounts []int) error {
	for i, vb := range buffers {
		if vb == nil {
			return fmt.Errorf("vertex buffer %d: %w", i, ErrNilBuffer)
		}
	}
	if len(morphRangeStarts) == 0 && len(morphRangeCounts) == 0 {
		morphRangeStarts = make([]int, len(buffers))
		morphRangeCounts = make([]int, len(buffers))
	}
	if len(morphRangeStarts) != len(buffers) || len(morphRangeCounts) != len(buffers) {
		return fmt.Errorf("%w: %d buffers, %d starts, %d counts", ErrMorphRange,
			len(buffers), len(morphRangeStarts), len(morphRangeCounts))
	}
	for i := range buffers {
		start, count := morphRangeStarts[i], morphRangeCounts[i]
		if start < 0 || count < 0 || start+count > buffers[i].VertexCount() {
			return fmt.Errorf("%w: buffer %d range [%d, %d) with %d vertices", ErrMorphRange,
				i, start, start+count, buffers[i].VertexCount())
		}
	}

	m.vertexBuffers = append([]*VertexBuffer(nil), buffers...)
	m.morphRangeStarts = append([]int(nil), morphRangeStarts...)
	m.morphRangeCounts = append([]int(nil), morphRangeCounts...)
	return nil
}

// SetIndexBuffers registers the model's index buffers.
func (m *Model) SetIndexBuffers(buffers []*IndexBuffer) error {
	for i, ib := range buffers {
		if ib == nil {
			return fmt.Errorf("index buffer %d: %w", i, ErrNilBuffer)
		}
	}
	m.indexBuffers = append([]*IndexBuffer(nil), buffers...)
	return nil
}

// VertexBuffers returns the registered vertex buffers.
func (m *Model) VertexBuffers() []*VertexBuffer { return m.vertexBuffers }

// IndexBuffers returns the registered index buffers.
func (m *Model) IndexBuffers() []*IndexBuffer { return m.indexBuffers }

// MorphRange returns the morph range of vertex buffer i.
func (m *Model) MorphRange(i int) (start, count int) {
	if i < 0 || i >= len(m.morphRangeStarts) {
		return 0, 0
	}
	return m.morphRangeStarts[i], m.morphRangeCounts[i]
}

// VertexCount sums the vertices of the registered vertex buffers.
func (m *Model) VertexCount() int {
	n := 0
	for _, vb := range m.vertexBuffers {
		n += vb.VertexCount()
	}
	return n
}

// IndexCount sums the indices of the registered index buffers.
func (m *Model) IndexCount() int {
	n := 0
	for _, ib := range m.indexBuffers {
		n += ib.IndexCount()
	}
	return n
}

// OnDeviceLost drops every registered buffer handle.
func (m *Model) OnDeviceLost() {
	for _, vb := range m.vertexBuffers {
		vb.OnDeviceLost()
	}
	for _, ib := range m.indexBuffers {
		ib.OnDeviceLost()
	}
}

// Restore re-uploads every registered buffer from its shadow copy.
// All buffers are attempted; the errors are joined.
func (m *Model) Restore() error {
	var errs []error
	for i, vb := range m.vertexBuffers {
		if err := vb.Restore(); err != nil {
			errs = append(errs, fmt.Errorf("vertex buffer %d: %w", i, err))
		}
	}
	for i, ib := range m.indexBuffers {
		if err := ib.Restore(); err != nil {
			errs = append(errs, fmt.Errorf("index buffer %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Release frees every registered buffer on the device.
func (m *Model) Release() {
	for _, vb := range m.vertexBuffers {
		vb.Release()
	}
	for _, ib := range m.indexBuffers {
		ib.Release()
	}
}
