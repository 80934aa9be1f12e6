package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-4
}

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name string
		sun  Sun
		want mgl32.Vec3 // direction the light travels
	}{
		{"zenith", Sun{Elevation: 90}, mgl32.Vec3{0, -1, 0}},
		{"horizon at +Z", Sun{Azimuth: 0, Elevation: 0}, mgl32.Vec3{0, 0, -1}},
		{"horizon at +X", Sun{Azimuth: 90, Elevation: 0}, mgl32.Vec3{-1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sun.Direction(); !near(got, tt.want) {
				t.Errorf("Direction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSunFromDirectionRoundTrip(t *testing.T) {
	dirs := []mgl32.Vec3{
		{0, -1, 1},
		{1, -2, 0},
		{-0.3, -1, -0.4},
	}
	for _, d := range dirs {
		sun := SunFromDirection(d)
		if got := sun.Direction(); !near(got, d.Normalize()) {
			t.Errorf("SunFromDirection(%v).Direction() = %v", d, got)
		}
	}
}

func TestSunFromDirectionDegenerate(t *testing.T) {
	for _, d := range []mgl32.Vec3{{}, {0, 1, 0}, {1, 0, 0}} {
		if got := SunFromDirection(d); got.Elevation != 90 {
			t.Errorf("SunFromDirection(%v) = %+v, want zenith", d, got)
		}
	}
}

func TestSunFromDirectionWorldLight(t *testing.T) {
	// Light travelling towards +Z and down comes from the -Z side.
	sun := SunFromDirection(mgl32.Vec3{0, -1, 1})
	if mgl32.Abs(sun.Elevation-45) > 1e-3 {
		t.Errorf("Elevation = %v, want 45", sun.Elevation)
	}
	if mgl32.Abs(sun.Azimuth-180) > 1e-3 {
		t.Errorf("Azimuth = %v, want 180", sun.Azimuth)
	}
}

func TestSunRotateRaise(t *testing.T) {
	s := Sun{Azimuth: 350, Elevation: 45}.Rotate(20)
	if mgl32.Abs(s.Azimuth-10) > 1e-3 {
		t.Errorf("Azimuth = %v, want 10", s.Azimuth)
	}
	s = s.Rotate(-30)
	if mgl32.Abs(s.Azimuth-340) > 1e-3 {
		t.Errorf("Azimuth = %v, want 340", s.Azimuth)
	}

	if got := s.Raise(100).Elevation; got != 90 {
		t.Errorf("Raise clamp high = %v", got)
	}
	if got := s.Raise(-100).Elevation; got != MinElevation {
		t.Errorf("Raise clamp low = %v", got)
	}
}
