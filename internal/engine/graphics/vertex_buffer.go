package graphics

import "fmt"

// ElementType is the data type of one vertex element.
type ElementType int

const (
	TypeFloat ElementType = iota
	TypeVector2
	TypeVector3
	TypeVector4
)

// Components returns the float count of the type.
func (t ElementType) Components() int {
	switch t {
	case TypeVector2:
		return 2
	case TypeVector3:
		return 3
	case TypeVector4:
		return 4
	default:
		return 1
	}
}

// Semantic is what a vertex element means to the shader.
type Semantic int

const (
	SemPosition Semantic = iota
	SemNormal
	SemTexCoord
	SemColor
)

func (s Semantic) String() string {
	switch s {
	case SemPosition:
		return "position"
	case SemNormal:
		return "normal"
	case SemTexCoord:
		return "texcoord"
	case SemColor:
		return "color"
	default:
		return "unknown"
	}
}

// VertexElement describes one attribute in an interleaved vertex.
// Offset is filled in by VertexBuffer.SetSize.
type VertexElement struct {
	Type     ElementType
	Semantic Semantic
	Offset   int
}

// VertexBuffer holds interleaved float vertices.
type VertexBuffer struct {
	device      Device
	handle      Handle
	generation  uint64
	shadowed    bool
	shadow      []float32
	elements    []VertexElement
	vertexCount int
	vertexSize  int
}

// NewVertexBuffer creates an unallocated buffer on dev.
func NewVertexBuffer(dev Device) *VertexBuffer {
	return &VertexBuffer{device: dev}
}

// SetShadowed enables the CPU-side copy. Enabling it on a sized buffer
// allocates a zeroed copy; data uploaded before that is not recovered.
func (vb *VertexBuffer) SetShadowed(enable bool) {
	vb.shadowed = enable
	switch {
	case !enable:
		vb.shadow = nil
	case vb.shadow == nil && vb.vertexCount > 0:
		vb.shadow = make([]float32, vb.vertexCount*vb.floatsPerVertex())
	}
}

// IsShadowed reports whether a CPU copy is kept.
func (vb *VertexBuffer) IsShadowed() bool {
	return vb.shadowed
}

// SetSize defines the layout and allocates room for count vertices.
// A zero count is rejected rather than allocating an empty buffer.
func (vb *VertexBuffer) SetSize(count int, elements []VertexElement) error {
	if vb.device == nil {
		return ErrNoDevice
	}
	if count <= 0 {
		return fmt.Errorf("vertex buffer with %d vertices: %w", count, ErrZeroSize)
	}
	if len(elements) == 0 {
		return ErrVertexLayout
	}

	layout := make([]VertexElement, len(elements))
	offset := 0
	for i, e := range elements {
		e.Offset = offset
		offset += e.Type.Components() * 4
		layout[i] = e
	}

	// The previous layout and shadow stay in place until the new buffer
	// exists, so a failed resize can still be restored.
	vb.Release()
	floats := make([]float32, count*offset/4)
	h, err := vb.device.CreateBuffer(VertexTarget, float32Bytes(floats))
	if err != nil {
		return fmt.Errorf("allocating vertex buffer: %w", err)
	}

	vb.handle = h
	vb.generation++
	vb.elements = layout
	vb.vertexCount = count
	vb.vertexSize = offset
	if vb.shadowed {
		vb.shadow = floats
	}
	return nil
}

// SetData replaces the whole buffer. len(data) must equal
// VertexCount() * VertexSize() / 4.
func (vb *VertexBuffer) SetData(data []float32) error {
	if vb.handle == 0 {
		return fmt.Errorf("vertex buffer not allocated: %w", ErrZeroSize)
	}
	want := vb.vertexCount * vb.floatsPerVertex()
	if len(data) != want {
		return fmt.Errorf("%w: vertex buffer expects %d floats, got %d", ErrSizeMismatch, want, len(data))
	}
	if vb.shadowed {
		if len(vb.shadow) != want {
			vb.shadow = make([]float32, want)
		}
		copy(vb.shadow, data)
	}
	if err := vb.device.UpdateBuffer(vb.handle, VertexTarget, float32Bytes(data)); err != nil {
		return fmt.Errorf("uploading vertex data: %w", err)
	}
	return nil
}

// Restore re-creates the device buffer from the shadow copy.
func (vb *VertexBuffer) Restore() error {
	if !vb.shadowed || vb.shadow == nil {
		return ErrNoShadowData
	}
	vb.Release()
	h, err := vb.device.CreateBuffer(VertexTarget, float32Bytes(vb.shadow))
	if err != nil {
		return fmt.Errorf("restoring vertex buffer: %w", err)
	}
	vb.handle = h
	vb.generation++
	return nil
}

// Release frees the device buffer. The shadow copy is kept.
func (vb *VertexBuffer) Release() {
	if vb.handle != 0 && vb.device != nil && !vb.device.IsLost() {
		vb.device.DeleteBuffer(vb.handle)
	}
	vb.handle = 0
}

// OnDeviceLost forgets the device handle without freeing it; the device
// already dropped it.
func (vb *VertexBuffer) OnDeviceLost() {
	vb.handle = 0
}

func (vb *VertexBuffer) floatsPerVertex() int {
	return vb.vertexSize / 4
}

// Handle returns the device buffer, zero when unallocated.
func (vb *VertexBuffer) Handle() Handle { return vb.handle }

// Generation counts device allocations. It changes on every SetSize and
// Restore even when the device hands back a recycled handle.
func (vb *VertexBuffer) Generation() uint64 { return vb.generation }

// VertexCount returns the number of vertices.
func (vb *VertexBuffer) VertexCount() int { return vb.vertexCount }

// VertexSize returns the stride in bytes.
func (vb *VertexBuffer) VertexSize() int { return vb.vertexSize }

// Elements returns the layout with offsets.
func (vb *VertexBuffer) Elements() []VertexElement { return vb.elements }

// ShadowData returns the CPU copy, nil when not shadowed.
func (vb *VertexBuffer) ShadowData() []float32 { return vb.shadow }

// Element returns the element with the given semantic.
func (vb *VertexBuffer) Element(sem Semantic) (VertexElement, bool) {
	for _, e := range vb.elements {
		if e.Semantic == sem {
			return e, true
		}
	}
	return VertexElement{}, false
}
