package game

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelmonaskarion/islands-3d/internal/engine/camera"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/heightfield"
)

func flatField(value uint8, w, h int) *heightfield.Field {
	samples := make([]uint8, w*h)
	for i := range samples {
		samples[i] = value
	}
	return heightfield.FromSamples(samples, w, h, 1.0, 100.0)
}

func newTestPlayer() *Player {
	field := flatField(128, 64, 64)
	cam := camera.NewFirstPerson(mgl32.Vec3{32, 0, 32}, 16.0/9.0)
	return NewPlayer(cam, field, 2.0, 10.0)
}

func TestUpdateSnapsEyeToGround(t *testing.T) {
	p := newTestPlayer()

	p.Update(0.016, Controls{})

	want := float32(128)/255.0*100.0 + 2.0
	if gomath.Abs(float64(p.Cam.Eye.Y()-want)) > 1e-3 {
		t.Errorf("expected eye at %f, got %f", want, p.Cam.Eye.Y())
	}
}

func TestUpdateVerticalInputCannotEscapeGround(t *testing.T) {
	p := newTestPlayer()

	for i := 0; i < 100; i++ {
		p.Update(0.1, Controls{Up: true})
	}

	want := float32(128)/255.0*100.0 + 2.0
	if gomath.Abs(float64(p.Cam.Eye.Y()-want)) > 1e-3 {
		t.Errorf("flying should be clamped out, eye at %f", p.Cam.Eye.Y())
	}
}

func TestUpdateMovesAlongWalkingVec(t *testing.T) {
	p := newTestPlayer()
	p.Cam.Ground = 0 // facing +X
	start := p.Cam.Eye

	p.Update(0.5, Controls{Forward: true})

	if got := p.Cam.Eye.X() - start.X(); gomath.Abs(float64(got-5.0)) > 1e-3 {
		t.Errorf("expected +5 along X, moved %f", got)
	}
	if got := p.Cam.Eye.Z() - start.Z(); gomath.Abs(float64(got)) > 1e-3 {
		t.Errorf("expected no Z drift, moved %f", got)
	}
}

func TestUpdateStrafeIsPerpendicular(t *testing.T) {
	p := newTestPlayer()
	p.Cam.Ground = 0
	start := p.Cam.Eye

	p.Update(0.5, Controls{Right: true})

	if got := p.Cam.Eye.Z() - start.Z(); gomath.Abs(float64(got-5.0)) > 1e-3 {
		t.Errorf("expected +5 along Z, moved %f", got)
	}
}

func TestMouseMotionRotatesCamera(t *testing.T) {
	p := newTestPlayer()

	p.HandleMouseMotion(500, 0)
	if gomath.Abs(float64(p.Cam.Ground-1.0)) > 1e-5 {
		t.Errorf("expected yaw 1.0 after 500px at sensitivity 500, got %f", p.Cam.Ground)
	}
}

func TestRightHalfTouchLooksAround(t *testing.T) {
	p := newTestPlayer()

	p.HandleFingerDown(7, 0.8, 0.5)
	p.HandleFingerMotion(7, 0.1, 0)

	if p.Cam.Ground == 0 {
		t.Error("look touch should rotate the camera")
	}

	yaw := p.Cam.Ground
	p.HandleFingerUp(7)
	p.HandleFingerMotion(7, 0.1, 0)
	if p.Cam.Ground != yaw {
		t.Error("released finger must stop rotating the camera")
	}
}

func TestLeftHalfTouchWalksForward(t *testing.T) {
	p := newTestPlayer()
	p.Cam.Ground = 0
	start := p.Cam.Eye

	p.HandleFingerDown(3, 0.2, 0.5)
	p.Update(0.5, Controls{})

	if p.Cam.Eye.X() <= start.X() {
		t.Error("held movement touch should walk forward")
	}

	// Motion on a movement finger must not rotate the view.
	p.HandleFingerMotion(3, 0.3, 0.3)
	if p.Cam.Ground != 0 {
		t.Errorf("movement touch rotated the camera to %f", p.Cam.Ground)
	}
}

func TestUnknownFingerMotionIsIgnored(t *testing.T) {
	p := newTestPlayer()

	// Motion may arrive before the down event; it must not panic or
	// rotate.
	p.HandleFingerMotion(42, 0.5, 0.5)
	if p.Cam.Ground != 0 || p.Cam.Sky != 0 {
		t.Error("motion for unregistered finger should be ignored")
	}
}
