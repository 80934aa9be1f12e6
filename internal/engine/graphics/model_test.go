package graphics

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestGeometry(t *testing.T, dev Device, count int) (*Geometry, *VertexBuffer, *IndexBuffer) {
	t.Helper()

	vb := NewVertexBuffer(dev)
	vb.SetShadowed(true)
	if err := vb.SetSize(count, positionNormal); err != nil {
		t.Fatal(err)
	}
	ib := NewIndexBuffer(dev)
	ib.SetShadowed(true)
	if err := ib.SetSize(count, false); err != nil {
		t.Fatal(err)
	}

	g := NewGeometry()
	if err := g.SetVertexBuffer(0, vb); err != nil {
		t.Fatal(err)
	}
	g.SetIndexBuffer(ib)
	if err := g.SetDrawRange(TriangleList, 0, count); err != nil {
		t.Fatal(err)
	}
	return g, vb, ib
}

func TestGeometryDrawRange(t *testing.T) {
	g, _, _ := newTestGeometry(t, NewMemoryDevice(), 6)

	if got := g.DrawRange(); got != (DrawRange{Type: TriangleList, IndexStart: 0, IndexCount: 6}) {
		t.Errorf("DrawRange = %+v", got)
	}
	if g.PrimitiveCount() != 2 {
		t.Errorf("PrimitiveCount = %d, want 2", g.PrimitiveCount())
	}

	tests := []struct {
		name         string
		start, count int
	}{
		{"past end", 3, 6},
		{"negative start", -1, 3},
		{"empty", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.SetDrawRange(TriangleList, tt.start, tt.count); !errors.Is(err, ErrDrawRange) {
				t.Errorf("error = %v, want ErrDrawRange", err)
			}
		})
	}

	if err := NewGeometry().SetDrawRange(TriangleList, 0, 3); !errors.Is(err, ErrDrawRange) {
		t.Errorf("draw range without index buffer: %v, want ErrDrawRange", err)
	}
}

func TestGeometryVertexSlots(t *testing.T) {
	g := NewGeometry()
	vb := NewVertexBuffer(NewMemoryDevice())

	if err := g.SetVertexBuffer(2, vb); err != nil {
		t.Fatal(err)
	}
	if g.NumVertexBuffers() != 3 {
		t.Errorf("NumVertexBuffers = %d, want 3", g.NumVertexBuffers())
	}
	if g.VertexBuffer(0) != nil || g.VertexBuffer(2) != vb || g.VertexBuffer(5) != nil {
		t.Error("unexpected slot contents")
	}
	if err := g.SetVertexBuffer(-1, vb); err == nil {
		t.Error("expected error for negative slot")
	}
	if err := g.SetVertexBuffer(0, nil); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("nil buffer: %v, want ErrNilBuffer", err)
	}
}

func TestModelGeometries(t *testing.T) {
	m := NewModel()
	g, _, _ := newTestGeometry(t, NewMemoryDevice(), 3)

	if err := m.SetGeometry(0, 0, g); !errors.Is(err, ErrGeometryIndex) {
		t.Errorf("SetGeometry before SetNumGeometries: %v, want ErrGeometryIndex", err)
	}
	if err := m.SetNumGeometries(1); err != nil {
		t.Fatal(err)
	}
	if err := m.SetGeometry(0, 0, g); err != nil {
		t.Fatal(err)
	}
	if m.Geometry(0, 0) != g {
		t.Error("Geometry(0, 0) mismatch")
	}
	if err := m.SetGeometry(0, 1, g); !errors.Is(err, ErrGeometryIndex) {
		t.Errorf("LOD 1 without levels: %v, want ErrGeometryIndex", err)
	}
	if err := m.SetNumGeometryLodLevels(0, 2); err != nil {
		t.Fatal(err)
	}
	if m.Geometry(0, 0) != g || m.NumGeometryLodLevels(0) != 2 {
		t.Error("LOD resize should keep existing geometry")
	}
	if m.Geometry(3, 0) != nil {
		t.Error("out of range geometry should be nil")
	}
}

func TestModelBufferRegistration(t *testing.T) {
	dev := NewMemoryDevice()
	m := NewModel()
	_, vb, ib := newTestGeometry(t, dev, 6)

	if err := m.SetVertexBuffers([]*VertexBuffer{vb}, []int{0}, []int{0}); err != nil {
		t.Fatal(err)
	}
	if err := m.SetIndexBuffers([]*IndexBuffer{ib}); err != nil {
		t.Fatal(err)
	}
	if m.VertexCount() != 6 || m.IndexCount() != 6 {
		t.Errorf("counts = %d/%d, want 6/6", m.VertexCount(), m.IndexCount())
	}
	if start, count := m.MorphRange(0); start != 0 || count != 0 {
		t.Errorf("MorphRange = %d,%d", start, count)
	}

	if err := m.SetVertexBuffers([]*VertexBuffer{vb}, []int{0, 0}, []int{0}); !errors.Is(err, ErrMorphRange) {
		t.Errorf("mismatched morph ranges: %v, want ErrMorphRange", err)
	}
	if err := m.SetVertexBuffers([]*VertexBuffer{vb}, []int{4}, []int{4}); !errors.Is(err, ErrMorphRange) {
		t.Errorf("morph range past end: %v, want ErrMorphRange", err)
	}
	if err := m.SetVertexBuffers([]*VertexBuffer{vb}, nil, nil); err != nil {
		t.Errorf("default morph ranges: %v", err)
	}
	if err := m.SetIndexBuffers([]*IndexBuffer{nil}); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("nil index buffer: %v, want ErrNilBuffer", err)
	}
}

func TestModelRestoreAfterDeviceLoss(t *testing.T) {
	dev := NewMemoryDevice()
	m := NewModel()
	_, vb, ib := newTestGeometry(t, dev, 3)
	if err := m.SetVertexBuffers([]*VertexBuffer{vb}, nil, nil); err != nil {
		t.Fatal(err)
	}
	if err := m.SetIndexBuffers([]*IndexBuffer{ib}); err != nil {
		t.Fatal(err)
	}

	dev.Lose()
	m.OnDeviceLost()
	if err := m.Restore(); !errors.Is(err, ErrDeviceLost) {
		t.Errorf("Restore on lost device: %v, want ErrDeviceLost", err)
	}

	dev.Reset()
	if err := m.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if dev.BufferCount() != 2 {
		t.Errorf("BufferCount = %d, want 2", dev.BufferCount())
	}

	m.Release()
	if dev.BufferCount() != 0 {
		t.Errorf("BufferCount after Release = %d, want 0", dev.BufferCount())
	}
}

func TestBoundingBox(t *testing.T) {
	b := NewBoundingBox(mgl32.Vec3{0.5, -0.5, 0.5}, mgl32.Vec3{-0.5, 0.5, -0.5})
	if b.Min != (mgl32.Vec3{-0.5, -0.5, -0.5}) || b.Max != (mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("corners not ordered: %+v", b)
	}
	if b.Center() != (mgl32.Vec3{}) {
		t.Errorf("Center = %v", b.Center())
	}
	if !b.Contains(mgl32.Vec3{0.5, 0, -0.5}) || b.Contains(mgl32.Vec3{0.6, 0, 0}) {
		t.Error("Contains mismatch")
	}

	moved := b.Transformed(mgl32.Vec3{0, 11, 0}, mgl32.Vec3{2, 1, 2})
	if moved.Min != (mgl32.Vec3{-1, 10.5, -1}) || moved.Max != (mgl32.Vec3{1, 11.5, 1}) {
		t.Errorf("Transformed = %+v", moved)
	}

	merged := b.Merge(moved)
	if merged.Min != (mgl32.Vec3{-1, -0.5, -1}) || merged.Max != (mgl32.Vec3{1, 11.5, 1}) {
		t.Errorf("Merge = %+v", merged)
	}
}
