package shadow

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cubeforge/internal/engine/graphics"
)

// DirectionalLightMatrix computes the view-projection for the shadow pass.
// toLight points from the scene toward the light; it need not be normalized.
// bounds is the world-space box that must receive and cast shadows.
func DirectionalLightMatrix(toLight mgl32.Vec3, bounds graphics.BoundingBox) mgl32.Mat4 {
	dir := toLight.Normalize()
	center := bounds.Center()
	radius := bounds.HalfDiagonal()
	if radius == 0 {
		radius = 1
	}

	// Far enough back to see the whole sphere around the bounds
	lightDistance := radius * 2
	lightPos := center.Add(dir.Mul(lightDistance))

	up := mgl32.Vec3{0, 1, 0}
	if abs32(dir.Y()) > 0.99 {
		up = mgl32.Vec3{0, 0, 1}
	}
	view := mgl32.LookAtV(lightPos, center, up)

	padding := radius * 0.1
	halfSize := radius + padding
	far := lightDistance + radius + padding
	proj := mgl32.Ortho(-halfSize, halfSize, -halfSize, halfSize, 0.1, far)

	return proj.Mul4(view)
}

// BiasMatrix maps clip space [-1, 1] to texture space [0, 1].
func BiasMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(0.5, 0.5, 0.5).Mul4(mgl32.Scale3D(0.5, 0.5, 0.5))
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
