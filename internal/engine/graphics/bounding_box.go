package graphics

import "github.com/go-gl/mathgl/mgl32"

// BoundingBox is an axis-aligned box.
type BoundingBox struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewBoundingBox orders the corners so Min <= Max on every axis.
func NewBoundingBox(a, b mgl32.Vec3) BoundingBox {
	box := BoundingBox{Min: a, Max: b}
	for i := 0; i < 3; i++ {
		if box.Min[i] > box.Max[i] {
			box.Min[i], box.Max[i] = box.Max[i], box.Min[i]
		}
	}
	return box
}

// Center returns the midpoint.
func (b BoundingBox) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent on each axis.
func (b BoundingBox) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// HalfDiagonal returns the distance from the center to a corner.
func (b BoundingBox) HalfDiagonal() float32 {
	return b.Size().Len() / 2
}

// Contains reports whether p lies inside or on the box.
func (b BoundingBox) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Merge returns the smallest box holding both.
func (b BoundingBox) Merge(o BoundingBox) BoundingBox {
	var out BoundingBox
	for i := 0; i < 3; i++ {
		out.Min[i] = min(b.Min[i], o.Min[i])
		out.Max[i] = max(b.Max[i], o.Max[i])
	}
	return out
}

// Transformed returns the box after scaling then translating.
func (b BoundingBox) Transformed(position, scale mgl32.Vec3) BoundingBox {
	lo := mgl32.Vec3{b.Min[0] * scale[0], b.Min[1] * scale[1], b.Min[2] * scale[2]}
	hi := mgl32.Vec3{b.Max[0] * scale[0], b.Max[1] * scale[1], b.Max[2] * scale[2]}
	return NewBoundingBox(lo.Add(position), hi.Add(position))
}
