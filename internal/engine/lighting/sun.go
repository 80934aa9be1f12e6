// Package lighting provides the directional sun light.
package lighting

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sun is a directional light placed by angles in degrees. Azimuth turns
// around the Y axis starting at +Z; elevation is the height above the
// horizon in 0..90.
type Sun struct {
	Azimuth   float32
	Elevation float32
}

// SunFromDirection returns the sun that casts light along dir, the
// direction the light travels. A zero or upward dir gives a sun at the
// zenith.
func SunFromDirection(dir mgl32.Vec3) Sun {
	if dir.Len() == 0 {
		return Sun{Elevation: 90}
	}
	toSun := dir.Mul(-1).Normalize()
	elev := mgl32.RadToDeg(float32(gomath.Asin(float64(mgl32.Clamp(toSun.Y(), -1, 1)))))
	if elev <= 0 {
		return Sun{Elevation: 90}
	}
	az := mgl32.RadToDeg(float32(gomath.Atan2(float64(toSun.X()), float64(toSun.Z()))))
	return Sun{Azimuth: wrapDegrees(az), Elevation: elev}
}

// ToSun returns the unit vector pointing from the scene towards the sun.
func (s Sun) ToSun() mgl32.Vec3 {
	az := float64(mgl32.DegToRad(s.Azimuth))
	el := float64(mgl32.DegToRad(s.Elevation))
	return mgl32.Vec3{
		float32(gomath.Cos(el) * gomath.Sin(az)),
		float32(gomath.Sin(el)),
		float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}

// Direction returns the unit direction the light travels.
func (s Sun) Direction() mgl32.Vec3 {
	return s.ToSun().Mul(-1)
}

// Rotate turns the sun around the Y axis by degrees.
func (s Sun) Rotate(degrees float32) Sun {
	s.Azimuth = wrapDegrees(s.Azimuth + degrees)
	return s
}

// Raise changes the elevation, clamped to stay above the horizon.
func (s Sun) Raise(degrees float32) Sun {
	s.Elevation = mgl32.Clamp(s.Elevation+degrees, MinElevation, 90)
	return s
}

// MinElevation keeps the sun from reaching the horizon, where shadows
// stretch without bound.
const MinElevation = 5

func wrapDegrees(d float32) float32 {
	d = float32(gomath.Mod(float64(d), 360))
	if d < 0 {
		d += 360
	}
	return d
}
