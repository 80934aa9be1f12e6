package renderer

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/cubeforge/internal/engine/graphics"
)

func TestGLPrimitive(t *testing.T) {
	tests := []struct {
		in   graphics.PrimitiveType
		want uint32
		ok   bool
	}{
		{graphics.TriangleList, gl.TRIANGLES, true},
		{graphics.TriangleStrip, gl.TRIANGLE_STRIP, true},
		{graphics.LineList, gl.LINES, true},
		{graphics.PointList, gl.POINTS, true},
		{graphics.PrimitiveType(42), 0, false},
	}
	for _, tt := range tests {
		got, ok := glPrimitive(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("glPrimitive(%v) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAttribLocationsCoverLayout(t *testing.T) {
	for _, sem := range []graphics.Semantic{graphics.SemPosition, graphics.SemNormal} {
		if _, ok := attribLocations[sem]; !ok {
			t.Errorf("no attribute location for %v", sem)
		}
	}
	if attribLocations[graphics.SemPosition] != 0 || attribLocations[graphics.SemNormal] != 1 {
		t.Error("position and normal must bind to locations 0 and 1")
	}
}

func TestGeometryKeyTracksRestore(t *testing.T) {
	dev := graphics.NewMemoryDevice()
	g := graphics.NewGeometry()
	if _, ok := geometryKey(g); ok {
		t.Error("geometry without buffers has a key")
	}

	vb := graphics.NewVertexBuffer(dev)
	vb.SetShadowed(true)
	if err := vb.SetSize(3, []graphics.VertexElement{{Type: graphics.TypeVector3, Semantic: graphics.SemPosition}}); err != nil {
		t.Fatal(err)
	}
	ib := graphics.NewIndexBuffer(dev)
	ib.SetShadowed(true)
	if err := ib.SetSize(3, false); err != nil {
		t.Fatal(err)
	}
	if err := g.SetVertexBuffer(0, vb); err != nil {
		t.Fatal(err)
	}
	g.SetIndexBuffer(ib)

	before, ok := geometryKey(g)
	if !ok {
		t.Fatal("no key for a sized geometry")
	}
	again, _ := geometryKey(g)
	if again != before {
		t.Error("key changed without any buffer change")
	}

	if err := ib.Restore(); err != nil {
		t.Fatal(err)
	}
	after, _ := geometryKey(g)
	if after == before {
		t.Error("key unchanged after the index buffer was re-created")
	}
	if after.vb != before.vb || after.vbGen != before.vbGen {
		t.Error("vertex part of the key changed with only the index buffer restored")
	}
}
