// Package graphics provides GPU buffer, geometry and model objects on top of
// a pluggable Device. Buffers may keep a CPU-side shadow copy so they can be
// restored after the device loses its contents and read back for picking.
package graphics

import (
	"errors"
	"unsafe"
)

// Handle identifies a buffer allocated on a Device. Zero is never valid.
type Handle uint32

// BufferTarget selects what a buffer is bound as.
type BufferTarget int

const (
	VertexTarget BufferTarget = iota
	IndexTarget
)

func (t BufferTarget) String() string {
	switch t {
	case VertexTarget:
		return "vertex"
	case IndexTarget:
		return "index"
	default:
		return "unknown"
	}
}

// Device allocates and updates GPU buffers.
// Implementations are not safe for concurrent use.
type Device interface {
	CreateBuffer(target BufferTarget, data []byte) (Handle, error)
	UpdateBuffer(h Handle, target BufferTarget, data []byte) error
	DeleteBuffer(h Handle)
	IsLost() bool
}

// Errors returned by buffers, geometries and models.
var (
	ErrZeroSize      = errors.New("buffer size must be greater than zero")
	ErrSizeMismatch  = errors.New("data size does not match buffer size")
	ErrNoDevice      = errors.New("buffer has no device")
	ErrDeviceLost    = errors.New("graphics device lost")
	ErrUnknownBuffer = errors.New("unknown buffer handle")
	ErrNoShadowData  = errors.New("buffer is not shadowed")
	ErrIndexFormat   = errors.New("index data does not match index size")
	ErrDrawRange     = errors.New("draw range outside index buffer")
	ErrGeometryIndex = errors.New("geometry index out of range")
	ErrMorphRange    = errors.New("morph range count does not match vertex buffers")
	ErrNilBuffer     = errors.New("nil buffer")
	ErrVertexLayout  = errors.New("vertex layout has no elements")
)

// float32Bytes views data as raw bytes in host byte order.
func float32Bytes(data []float32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}

func uint16Bytes(data []uint16) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*2)
}

func uint32Bytes(data []uint32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}
