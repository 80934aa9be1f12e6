package shadow

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubeforge/internal/engine/graphics"
)

func corners(b graphics.BoundingBox) []mgl32.Vec3 {
	var out []mgl32.Vec3
	for i := 0; i < 8; i++ {
		p := b.Min
		if i&1 != 0 {
			p[0] = b.Max[0]
		}
		if i&2 != 0 {
			p[1] = b.Max[1]
		}
		if i&4 != 0 {
			p[2] = b.Max[2]
		}
		out = append(out, p)
	}
	return out
}

func TestDirectionalLightMatrixContainsBounds(t *testing.T) {
	scene := graphics.NewBoundingBox(mgl32.Vec3{-50, -0.5, -50}, mgl32.Vec3{50, 11.5, 50})
	lights := []mgl32.Vec3{
		{0, 1, -1}, // opposite of a (0, -1, 1) sun
		{0, 1, 0},
		{1, 0.2, 0.3},
	}
	for _, l := range lights {
		m := DirectionalLightMatrix(l, scene)
		for _, c := range corners(scene) {
			p := m.Mul4x1(c.Vec4(1))
			for axis := 0; axis < 3; axis++ {
				if p[axis] < -1 || p[axis] > 1 {
					t.Errorf("light %v: corner %v outside clip volume: %v", l, c, p)
				}
			}
		}
	}
}

func TestDirectionalLightMatrixCentersScene(t *testing.T) {
	scene := graphics.NewBoundingBox(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{3, 3, 3})
	m := DirectionalLightMatrix(mgl32.Vec3{0, 1, -1}, scene)
	p := m.Mul4x1(scene.Center().Vec4(1))
	if abs32(p.X()) > 1e-4 || abs32(p.Y()) > 1e-4 {
		t.Errorf("scene center projects to %v, want x=y=0", p)
	}
}

func TestBiasMatrix(t *testing.T) {
	b := BiasMatrix()
	lo := b.Mul4x1(mgl32.Vec4{-1, -1, -1, 1})
	hi := b.Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	if lo.Vec3().Len() > 1e-5 || hi.Vec3().Sub(mgl32.Vec3{1, 1, 1}).Len() > 1e-5 {
		t.Errorf("bias maps to %v .. %v", lo, hi)
	}
}
