// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// PitchLimit keeps the look pitch just short of straight up/down so the
// view matrix never flips.
const PitchLimit = float32(gomath.Pi) * 0.499

// FirstPerson is a walking camera: a world-space eye plus yaw/pitch
// look angles and projection parameters.
type FirstPerson struct {
	Eye mgl32.Vec3

	// Ground is the yaw angle in radians, unclamped.
	Ground float32
	// Sky is the pitch angle in radians, clamped to ±PitchLimit.
	Sky float32

	Aspect float32
	FovY   float32 // degrees
	Near   float32
	Far    float32

	// Sensitivity divides raw pointer deltas before they reach the
	// angles.
	Sensitivity float32
}

// NewFirstPerson creates a camera with the usual projection defaults.
func NewFirstPerson(eye mgl32.Vec3, aspect float32) *FirstPerson {
	return &FirstPerson{
		Eye:         eye,
		Aspect:      aspect,
		FovY:        70.0,
		Near:        0.1,
		Far:         10000.0,
		Sensitivity: 500.0,
	}
}

// Rotate applies raw pointer deltas to the look angles, clamping pitch.
func (c *FirstPerson) Rotate(dx, dy float32) {
	c.Ground += dx / c.Sensitivity
	c.Sky -= dy / c.Sensitivity
	if c.Sky > PitchLimit {
		c.Sky = PitchLimit
	}
	if c.Sky < -PitchLimit {
		c.Sky = -PitchLimit
	}
}

// LookVec returns the full 3D view direction.
func (c *FirstPerson) LookVec() mgl32.Vec3 {
	cosSky := float32(gomath.Cos(float64(c.Sky)))
	return mgl32.Vec3{
		float32(gomath.Cos(float64(c.Ground))) * cosSky,
		float32(gomath.Sin(float64(c.Sky))),
		float32(gomath.Sin(float64(c.Ground))) * cosSky,
	}
}

// WalkingVec returns the horizontal forward direction, ignoring pitch,
// so held keys walk along the ground instead of into it.
func (c *FirstPerson) WalkingVec() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(gomath.Cos(float64(c.Ground))),
		0,
		float32(gomath.Sin(float64(c.Ground))),
	}
}

// RightVec returns the horizontal strafe direction.
func (c *FirstPerson) RightVec() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(gomath.Cos(float64(c.Ground) + gomath.Pi/2)),
		0,
		float32(gomath.Sin(float64(c.Ground) + gomath.Pi/2)),
	}
}

// View returns the view matrix.
func (c *FirstPerson) View() mgl32.Mat4 {
	target := c.Eye.Add(c.LookVec())
	return mgl32.LookAtV(c.Eye, target, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective projection matrix.
func (c *FirstPerson) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection × view, ready for shader upload.
func (c *FirstPerson) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// InverseViewProjection returns the inverse of ViewProjection, used by
// the post-process pass to reconstruct world rays from screen space.
func (c *FirstPerson) InverseViewProjection() mgl32.Mat4 {
	return c.ViewProjection().Inv()
}

// Resize updates the aspect ratio for a new drawable size.
func (c *FirstPerson) Resize(width, height int) {
	if height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}
