package graphics

import "fmt"

// MemoryDevice is a headless Device that keeps buffer contents in RAM.
// It backs tests and command-line tools that build models without a GL
// context, and can simulate device loss.
type MemoryDevice struct {
	next    Handle
	buffers map[Handle]memoryBuffer
	lost    bool

	// Allocations counts successful CreateBuffer calls.
	Allocations int
}

type memoryBuffer struct {
	target BufferTarget
	data   []byte
}

// NewMemoryDevice creates an empty in-memory device.
func NewMemoryDevice() *MemoryDevice {
	return &MemoryDevice{
		buffers: make(map[Handle]memoryBuffer),
	}
}

// CreateBuffer stores a copy of data under a new handle.
func (d *MemoryDevice) CreateBuffer(target BufferTarget, data []byte) (Handle, error) {
	if d.lost {
		return 0, ErrDeviceLost
	}
	if len(data) == 0 {
		return 0, ErrZeroSize
	}
	d.next++
	d.buffers[d.next] = memoryBuffer{
		target: target,
		data:   append([]byte(nil), data...),
	}
	d.Allocations++
	return d.next, nil
}

// UpdateBuffer replaces the contents of an existing buffer of equal size.
func (d *MemoryDevice) UpdateBuffer(h Handle, target BufferTarget, data []byte) error {
	if d.lost {
		return ErrDeviceLost
	}
	buf, ok := d.buffers[h]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBuffer, h)
	}
	if buf.target != target {
		return fmt.Errorf("buffer %d is a %s buffer, not %s", h, buf.target, target)
	}
	if len(data) != len(buf.data) {
		return fmt.Errorf("%w: buffer %d holds %d bytes, got %d", ErrSizeMismatch, h, len(buf.data), len(data))
	}
	copy(buf.data, data)
	return nil
}

// DeleteBuffer frees h. Unknown handles are ignored.
func (d *MemoryDevice) DeleteBuffer(h Handle) {
	delete(d.buffers, h)
}

// IsLost reports whether Lose was called without a following Reset.
func (d *MemoryDevice) IsLost() bool {
	return d.lost
}

// Lose drops every buffer and fails further calls until Reset.
func (d *MemoryDevice) Lose() {
	d.lost = true
	d.buffers = make(map[Handle]memoryBuffer)
}

// Reset makes a lost device usable again. Buffers are not brought back.
func (d *MemoryDevice) Reset() {
	d.lost = false
}

// BufferData returns the stored bytes for h.
func (d *MemoryDevice) BufferData(h Handle) ([]byte, bool) {
	buf, ok := d.buffers[h]
	return buf.data, ok
}

// BufferCount returns the number of live buffers.
func (d *MemoryDevice) BufferCount() int {
	return len(d.buffers)
}
