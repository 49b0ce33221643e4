package camera

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRotateClampsPitch(t *testing.T) {
	c := NewFirstPerson(mgl32.Vec3{0, 0, 0}, 16.0/9.0)

	// Dump an absurd amount of downward motion into the camera.
	for i := 0; i < 10000; i++ {
		c.Rotate(0, 5000)
	}
	if c.Sky < -PitchLimit {
		t.Errorf("pitch %f exceeded lower clamp %f", c.Sky, -PitchLimit)
	}
	if c.Sky != -PitchLimit {
		t.Errorf("expected pitch pinned at clamp, got %f", c.Sky)
	}

	for i := 0; i < 10000; i++ {
		c.Rotate(0, -5000)
	}
	if c.Sky != PitchLimit {
		t.Errorf("expected pitch pinned at upper clamp, got %f", c.Sky)
	}
}

func TestRotateYawIsUnclamped(t *testing.T) {
	c := NewFirstPerson(mgl32.Vec3{}, 1)

	for i := 0; i < 1000; i++ {
		c.Rotate(5000, 0)
	}
	if c.Ground < 100 {
		t.Errorf("yaw should accumulate without clamping, got %f", c.Ground)
	}
}

func TestWalkingVecIgnoresPitch(t *testing.T) {
	c := NewFirstPerson(mgl32.Vec3{}, 1)
	c.Sky = PitchLimit

	w := c.WalkingVec()
	if w.Y() != 0 {
		t.Errorf("walking vector must be horizontal, got y=%f", w.Y())
	}
	if gomath.Abs(float64(w.Len()-1)) > 1e-5 {
		t.Errorf("walking vector should be unit length, got %f", w.Len())
	}
}

func TestRightVecIsPerpendicularToWalking(t *testing.T) {
	c := NewFirstPerson(mgl32.Vec3{}, 1)
	c.Ground = 1.2345

	dot := c.WalkingVec().Dot(c.RightVec())
	if gomath.Abs(float64(dot)) > 1e-5 {
		t.Errorf("expected perpendicular vectors, dot = %f", dot)
	}
}

func TestViewProjectionMapsLookTargetToCenter(t *testing.T) {
	c := NewFirstPerson(mgl32.Vec3{10, 20, 30}, 1.5)
	c.Ground = 0.4
	c.Sky = -0.2

	target := c.Eye.Add(c.LookVec().Mul(50))
	clip := c.ViewProjection().Mul4x1(target.Vec4(1))

	// A point straight ahead lands on the screen center.
	if gomath.Abs(float64(clip.X()/clip.W())) > 1e-4 || gomath.Abs(float64(clip.Y()/clip.W())) > 1e-4 {
		t.Errorf("look target should project to center, got (%f, %f)",
			clip.X()/clip.W(), clip.Y()/clip.W())
	}
	if clip.W() <= 0 {
		t.Errorf("look target should be in front of the camera, w = %f", clip.W())
	}
}

func TestInverseViewProjectionRoundTrips(t *testing.T) {
	c := NewFirstPerson(mgl32.Vec3{1, 2, 3}, 1.77)
	c.Ground = 2.0
	c.Sky = 0.3

	p := mgl32.Vec4{5, 6, 7, 1}
	vp := c.ViewProjection()
	back := c.InverseViewProjection().Mul4x1(vp.Mul4x1(p))

	for i := 0; i < 4; i++ {
		if gomath.Abs(float64(back[i]-p[i])) > 1e-2 {
			t.Errorf("component %d: expected %f, got %f", i, p[i], back[i])
		}
	}
}
