// Package lighting provides the sun model shared by the terrain, water
// and sky passes.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sun describes a directional light far enough away that its rays are
// parallel. Azimuth is rotation around the Y axis in degrees, elevation
// is degrees above the horizon.
type Sun struct {
	Azimuth   float32
	Elevation float32
	Color     mgl32.Vec3
	// Distance at which the billboard is drawn from the eye.
	Distance float32
	// Billboard half-size in world units.
	Size float32
}

// Default returns the fixed morning sun the demo uses.
func Default() Sun {
	return Sun{
		Azimuth:   45,
		Elevation: 35,
		Color:     mgl32.Vec3{1.0, 0.95, 0.8},
		Distance:  9000,
		Size:      500,
	}
}

// Direction returns the normalized vector pointing from the scene
// towards the sun.
func (s Sun) Direction() mgl32.Vec3 {
	azRad := float64(s.Azimuth) * math.Pi / 180.0
	elRad := float64(s.Elevation) * math.Pi / 180.0

	x := float32(math.Cos(elRad) * math.Sin(azRad))
	y := float32(math.Sin(elRad))
	z := float32(math.Cos(elRad) * math.Cos(azRad))

	return mgl32.Vec3{x, y, z}
}

// WorldPosition places the sun billboard relative to the eye so it sits
// at a constant direction regardless of where the player walks.
func (s Sun) WorldPosition(eye mgl32.Vec3) mgl32.Vec3 {
	return eye.Add(s.Direction().Mul(s.Distance))
}
