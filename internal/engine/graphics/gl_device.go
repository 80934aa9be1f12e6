package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLDevice allocates buffers through OpenGL.
// IMPORTANT: the GL context must be current and gl.Init must have been
// called before any buffer is created.
type GLDevice struct {
	lost bool
}

// NewGLDevice returns a device bound to the current GL context.
func NewGLDevice() *GLDevice {
	return &GLDevice{}
}

func glTarget(t BufferTarget) uint32 {
	if t == IndexTarget {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

// CreateBuffer uploads data into a new STATIC_DRAW buffer.
func (d *GLDevice) CreateBuffer(target BufferTarget, data []byte) (Handle, error) {
	if d.lost {
		return 0, ErrDeviceLost
	}
	if len(data) == 0 {
		return 0, ErrZeroSize
	}

	// Element array bindings are VAO state; keep them off whatever VAO is bound.
	gl.BindVertexArray(0)

	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return 0, fmt.Errorf("glGenBuffers returned no %s buffer", target)
	}
	glt := glTarget(target)
	gl.BindBuffer(glt, id)
	gl.BufferData(glt, len(data), gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(glt, 0)

	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		gl.DeleteBuffers(1, &id)
		return 0, fmt.Errorf("allocating %d byte %s buffer: GL error 0x%x", len(data), target, errCode)
	}
	return Handle(id), nil
}

// UpdateBuffer overwrites the buffer contents from offset zero.
func (d *GLDevice) UpdateBuffer(h Handle, target BufferTarget, data []byte) error {
	if d.lost {
		return ErrDeviceLost
	}
	if h == 0 {
		return ErrUnknownBuffer
	}
	if len(data) == 0 {
		return ErrZeroSize
	}
	gl.BindVertexArray(0)
	glt := glTarget(target)
	gl.BindBuffer(glt, uint32(h))
	gl.BufferSubData(glt, 0, len(data), gl.Ptr(data))
	gl.BindBuffer(glt, 0)
	return nil
}

// DeleteBuffer frees the GL buffer.
func (d *GLDevice) DeleteBuffer(h Handle) {
	if h == 0 || d.lost {
		return
	}
	id := uint32(h)
	gl.DeleteBuffers(1, &id)
}

// IsLost reports whether the context was invalidated.
func (d *GLDevice) IsLost() bool {
	return d.lost
}

// Invalidate marks every handle as gone, e.g. after the context was
// recreated. Call Reset once a new context is current.
func (d *GLDevice) Invalidate() {
	d.lost = true
}

// Reset clears the lost flag.
func (d *GLDevice) Reset() {
	d.lost = false
}
