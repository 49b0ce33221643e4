// Package game implements the main loop, player movement and the
// collection rules.
package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelmonaskarion/islands-3d/internal/engine/camera"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/heightfield"
)

// Controls is the per-frame snapshot of held movement inputs. The loop
// fills it from key state; touch movement feeds in through the player's
// finger bookkeeping.
type Controls struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
}

// touchRole tells which job a held finger has.
type touchRole int

const (
	touchLook touchRole = iota
	touchMove
)

// touchRotateScale converts normalized finger deltas to the same range
// as pixel mouse deltas before camera sensitivity divides them.
const touchRotateScale = 1000.0

// Player walks the camera over the terrain: it integrates held inputs
// into the eye position and snaps the eye to the sampled ground height.
type Player struct {
	Cam *camera.FirstPerson

	field *heightfield.Field

	// EyeOffset is the eye height above the ground sample.
	EyeOffset float32
	// Speed is the walk speed in world units per second.
	Speed float32

	fingers map[int64]touchRole
}

// NewPlayer creates a player walking on the given field.
func NewPlayer(cam *camera.FirstPerson, field *heightfield.Field, eyeOffset, speed float32) *Player {
	return &Player{
		Cam:       cam,
		field:     field,
		EyeOffset: eyeOffset,
		Speed:     speed,
		fingers:   make(map[int64]touchRole),
	}
}

// Update integrates one frame of movement and clamps the eye to the
// ground. dt is the frame delta in seconds.
func (p *Player) Update(dt float32, c Controls) {
	if p.moveFingerHeld() {
		c.Forward = true
	}

	step := p.Speed * dt
	eye := p.Cam.Eye

	if c.Forward {
		eye = eye.Add(p.Cam.WalkingVec().Mul(step))
	}
	if c.Back {
		eye = eye.Sub(p.Cam.WalkingVec().Mul(step))
	}
	if c.Right {
		eye = eye.Add(p.Cam.RightVec().Mul(step))
	}
	if c.Left {
		eye = eye.Sub(p.Cam.RightVec().Mul(step))
	}
	if c.Up {
		eye = eye.Add(mgl32.Vec3{0, step, 0})
	}
	if c.Down {
		eye = eye.Sub(mgl32.Vec3{0, step, 0})
	}

	// Walking, not flying: whatever the vertical inputs did, the eye
	// ends the frame on the terrain.
	eye[1] = p.field.HeightAt(eye.X(), eye.Z()) + p.EyeOffset
	p.Cam.Eye = eye
}

// HandleMouseMotion feeds relative mouse deltas into the look angles.
func (p *Player) HandleMouseMotion(dx, dy int) {
	p.Cam.Rotate(float32(dx), float32(dy))
}

// HandleFingerDown registers a new touch. Fingers starting on the right
// half of the screen look around; fingers on the left half walk.
// Coordinates are normalized to [0,1].
func (p *Player) HandleFingerDown(id int64, x, y float32) {
	if x >= 0.5 {
		p.fingers[id] = touchLook
	} else {
		p.fingers[id] = touchMove
	}
}

// HandleFingerMotion applies a touch's normalized deltas according to
// the role it was given at touch start. Unknown fingers are ignored;
// arrival order of motion vs. down events is not guaranteed.
func (p *Player) HandleFingerMotion(id int64, dx, dy float32) {
	role, ok := p.fingers[id]
	if !ok || role != touchLook {
		return
	}
	p.Cam.Rotate(dx*touchRotateScale, dy*touchRotateScale)
}

// HandleFingerUp releases a touch binding.
func (p *Player) HandleFingerUp(id int64) {
	delete(p.fingers, id)
}

func (p *Player) moveFingerHeld() bool {
	for _, role := range p.fingers {
		if role == touchMove {
			return true
		}
	}
	return false
}
