package graphics

import "fmt"

// IndexBuffer holds 16-bit or 32-bit triangle indices.
type IndexBuffer struct {
	device     Device
	handle     Handle
	generation uint64
	shadowed   bool
	shadow     []uint32
	indexCount int
	large      bool
}

// NewIndexBuffer creates an unallocated buffer on dev.
func NewIndexBuffer(dev Device) *IndexBuffer {
	return &IndexBuffer{device: dev}
}

// SetShadowed enables the CPU-side copy. Enabling it on a sized buffer
// allocates a zeroed copy; data uploaded before that is not recovered.
func (ib *IndexBuffer) SetShadowed(enable bool) {
	ib.shadowed = enable
	switch {
	case !enable:
		ib.shadow = nil
	case ib.shadow == nil && ib.indexCount > 0:
		ib.shadow = make([]uint32, ib.indexCount)
	}
}

// IsShadowed reports whether a CPU copy is kept.
func (ib *IndexBuffer) IsShadowed() bool {
	return ib.shadowed
}

// SetSize allocates room for count indices; large selects 32-bit indices.
func (ib *IndexBuffer) SetSize(count int, large bool) error {
	if ib.device == nil {
		return ErrNoDevice
	}
	if count <= 0 {
		return fmt.Errorf("index buffer with %d indices: %w", count, ErrZeroSize)
	}

	size := 2
	if large {
		size = 4
	}

	// Count, format and shadow are committed only once the buffer exists.
	ib.Release()
	h, err := ib.device.CreateBuffer(IndexTarget, make([]byte, count*size))
	if err != nil {
		return fmt.Errorf("allocating index buffer: %w", err)
	}

	ib.handle = h
	ib.generation++
	ib.indexCount = count
	ib.large = large
	if ib.shadowed {
		ib.shadow = make([]uint32, count)
	}
	return nil
}

// SetData uploads 16-bit indices.
func (ib *IndexBuffer) SetData(data []uint16) error {
	if ib.large {
		return fmt.Errorf("%w: buffer uses 32-bit indices", ErrIndexFormat)
	}
	if err := ib.checkLen(len(data)); err != nil {
		return err
	}
	if ib.shadowed {
		for i, v := range data {
			ib.shadow[i] = uint32(v)
		}
	}
	return ib.upload(uint16Bytes(data))
}

// SetDataLarge uploads 32-bit indices.
func (ib *IndexBuffer) SetDataLarge(data []uint32) error {
	if !ib.large {
		return fmt.Errorf("%w: buffer uses 16-bit indices", ErrIndexFormat)
	}
	if err := ib.checkLen(len(data)); err != nil {
		return err
	}
	if ib.shadowed {
		copy(ib.shadow, data)
	}
	return ib.upload(uint32Bytes(data))
}

func (ib *IndexBuffer) checkLen(n int) error {
	if ib.handle == 0 {
		return fmt.Errorf("index buffer not allocated: %w", ErrZeroSize)
	}
	if n != ib.indexCount {
		return fmt.Errorf("%w: index buffer expects %d indices, got %d", ErrSizeMismatch, ib.indexCount, n)
	}
	if ib.shadowed && len(ib.shadow) != n {
		ib.shadow = make([]uint32, n)
	}
	return nil
}

func (ib *IndexBuffer) upload(data []byte) error {
	if err := ib.device.UpdateBuffer(ib.handle, IndexTarget, data); err != nil {
		return fmt.Errorf("uploading index data: %w", err)
	}
	return nil
}

// encodeShadow packs the shadow copy in the buffer's index size.
func (ib *IndexBuffer) encodeShadow() []byte {
	if ib.large {
		return uint32Bytes(ib.shadow)
	}
	small := make([]uint16, len(ib.shadow))
	for i, v := range ib.shadow {
		small[i] = uint16(v)
	}
	return uint16Bytes(small)
}

// Restore re-creates the device buffer from the shadow copy.
func (ib *IndexBuffer) Restore() error {
	if !ib.shadowed || ib.shadow == nil {
		return ErrNoShadowData
	}
	ib.Release()
	h, err := ib.device.CreateBuffer(IndexTarget, ib.encodeShadow())
	if err != nil {
		return fmt.Errorf("restoring index buffer: %w", err)
	}
	ib.handle = h
	ib.generation++
	return nil
}

// Release frees the device buffer. The shadow copy is kept.
func (ib *IndexBuffer) Release() {
	if ib.handle != 0 && ib.device != nil && !ib.device.IsLost() {
		ib.device.DeleteBuffer(ib.handle)
	}
	ib.handle = 0
}

// OnDeviceLost forgets the device handle without freeing it; the device
// already dropped it.
func (ib *IndexBuffer) OnDeviceLost() {
	ib.handle = 0
}

// Handle returns the device buffer, zero when unallocated.
func (ib *IndexBuffer) Handle() Handle { return ib.handle }

// Generation counts device allocations, see VertexBuffer.Generation.
func (ib *IndexBuffer) Generation() uint64 { return ib.generation }

// IndexCount returns the number of indices.
func (ib *IndexBuffer) IndexCount() int { return ib.indexCount }

// IndexSize returns 2 or 4.
func (ib *IndexBuffer) IndexSize() int {
	if ib.large {
		return 4
	}
	return 2
}

// ShadowData returns the CPU copy widened to uint32, nil when not shadowed.
func (ib *IndexBuffer) ShadowData() []uint32 { return ib.shadow }
