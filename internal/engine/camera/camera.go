// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Fly camera defaults.
const (
	DefaultMoveSpeed   = 20.0 // world units per second
	DefaultSensitivity = 0.1  // degrees per pixel
	DefaultFOV         = 45.0 // vertical, degrees
	MaxPitch           = 90.0
	MinPitch           = -90.0
)

var worldUp = mgl32.Vec3{0, 1, 0}

// FlyCamera is a free-flying first person camera.
//
// Yaw 0 looks down +Z and positive yaw turns right. Positive pitch looks
// down. Angles are in degrees.
type FlyCamera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	FOV  float32
	Near float32
	Far  float32

	MoveSpeed   float32
	Sensitivity float32
}

// NewFlyCamera creates a camera at position with the given orientation.
func NewFlyCamera(position mgl32.Vec3, yaw, pitch float32) *FlyCamera {
	c := &FlyCamera{
		Position:    position,
		Yaw:         yaw,
		FOV:         DefaultFOV,
		Near:        0.1,
		Far:         1000,
		MoveSpeed:   DefaultMoveSpeed,
		Sensitivity: DefaultSensitivity,
	}
	c.SetPitch(pitch)
	return c
}

// SetPitch sets the pitch clamped to [MinPitch, MaxPitch].
func (c *FlyCamera) SetPitch(pitch float32) {
	c.Pitch = mgl32.Clamp(pitch, MinPitch, MaxPitch)
}

// Rotate applies a relative mouse motion in pixels.
func (c *FlyCamera) Rotate(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.SetPitch(c.Pitch + dy*c.Sensitivity)
}

// Forward returns the unit view direction.
func (c *FlyCamera) Forward() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	return mgl32.Vec3{
		float32(-gomath.Sin(yaw) * gomath.Cos(pitch)),
		float32(-gomath.Sin(pitch)),
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
	}.Normalize()
}

// Right returns the unit right vector on the horizontal plane.
func (c *FlyCamera) Right() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	return mgl32.Vec3{float32(-gomath.Cos(yaw)), 0, float32(-gomath.Sin(yaw))}
}

// Move translates the camera along its own axes. forward, right and up are
// in [-1, 1] and scaled by MoveSpeed * dt.
func (c *FlyCamera) Move(forward, right, up, dt float32) {
	step := c.MoveSpeed * dt
	delta := c.Forward().Mul(forward).
		Add(c.Right().Mul(right)).
		Add(worldUp.Mul(up))
	c.Position = c.Position.Add(delta.Mul(step))
}

// LookAt turns the camera toward target.
func (c *FlyCamera) LookAt(target mgl32.Vec3) {
	d := target.Sub(c.Position)
	if d.Len() == 0 {
		return
	}
	d = d.Normalize()
	c.Yaw = mgl32.RadToDeg(float32(gomath.Atan2(float64(-d.X()), float64(d.Z()))))
	c.SetPitch(mgl32.RadToDeg(float32(gomath.Asin(float64(-d.Y())))))
}

// ViewMatrix returns the world-to-view transform.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	up := worldUp
	// Looking straight up or down: derive up from yaw instead
	if gomath.Abs(float64(c.Pitch)) > 89.9 {
		up = c.Right().Cross(c.Forward())
	}
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), up)
}

// ProjectionMatrix returns the perspective projection for aspect (w/h).
func (c *FlyCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *FlyCamera) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.ProjectionMatrix(aspect).Mul4(c.ViewMatrix())
}
