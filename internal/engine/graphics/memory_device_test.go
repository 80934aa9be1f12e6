package graphics

import (
	"bytes"
	"errors"
	"testing"
)

func TestMemoryDeviceLifecycle(t *testing.T) {
	dev := NewMemoryDevice()

	h, err := dev.CreateBuffer(VertexTarget, []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	if h == 0 {
		t.Fatal("handle should be non-zero")
	}

	if err := dev.UpdateBuffer(h, VertexTarget, []byte{5, 6, 7, 8}); err != nil {
		t.Fatalf("UpdateBuffer: %v", err)
	}
	data, ok := dev.BufferData(h)
	if !ok || !bytes.Equal(data, []byte{5, 6, 7, 8}) {
		t.Errorf("BufferData = %v, %v", data, ok)
	}

	dev.DeleteBuffer(h)
	if dev.BufferCount() != 0 {
		t.Errorf("BufferCount = %d after delete", dev.BufferCount())
	}
}

func TestMemoryDeviceErrors(t *testing.T) {
	dev := NewMemoryDevice()

	if _, err := dev.CreateBuffer(IndexTarget, nil); !errors.Is(err, ErrZeroSize) {
		t.Errorf("empty create: %v, want ErrZeroSize", err)
	}
	if err := dev.UpdateBuffer(42, VertexTarget, []byte{1}); !errors.Is(err, ErrUnknownBuffer) {
		t.Errorf("unknown update: %v, want ErrUnknownBuffer", err)
	}

	h, _ := dev.CreateBuffer(VertexTarget, []byte{1, 2})
	if err := dev.UpdateBuffer(h, VertexTarget, []byte{1, 2, 3}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("oversized update: %v, want ErrSizeMismatch", err)
	}
	if err := dev.UpdateBuffer(h, IndexTarget, []byte{1, 2}); err == nil {
		t.Error("expected error updating with wrong target")
	}

	dev.Lose()
	if !dev.IsLost() {
		t.Error("device should report lost")
	}
	if dev.BufferCount() != 0 {
		t.Error("lost device should drop buffers")
	}
	if _, err := dev.CreateBuffer(VertexTarget, []byte{1}); !errors.Is(err, ErrDeviceLost) {
		t.Errorf("create on lost device: %v, want ErrDeviceLost", err)
	}
	dev.Reset()
	if _, err := dev.CreateBuffer(VertexTarget, []byte{1}); err != nil {
		t.Errorf("create after reset: %v", err)
	}
}
