package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelmonaskarion/islands-3d/internal/engine/instancegen"
)

func newTestCollector(radius float32) *Collector {
	gen := instancegen.New(flatField(128, 64, 64), instancegen.Config{
		Grid:    [2]int{100, 100},
		Spacing: 10.0,
		Hover:   2.0,
		Workers: 1,
	})
	return NewCollector(gen, radius)
}

func TestUpdateCollectsWithinRadius(t *testing.T) {
	c := newTestCollector(5.0)

	// Slot (5,5) sits at world (50, _, 50); stand 2 units away.
	eye := mgl32.Vec3{52, 30, 50}
	if !c.Update(eye) {
		t.Fatal("expected collection within radius")
	}
	if c.Count() != 1 {
		t.Errorf("expected count 1, got %d", c.Count())
	}
}

func TestUpdateOutsideRadiusDoesNothing(t *testing.T) {
	c := newTestCollector(5.0)

	// 4.9 along each horizontal axis is ~6.9 away, past the radius,
	// while (54.9, 54.9) still rounds to slot (5,5).
	if c.Update(mgl32.Vec3{54.9, 30, 54.9}) {
		t.Fatal("should not collect outside radius")
	}
	if c.Count() != 0 {
		t.Errorf("expected count 0, got %d", c.Count())
	}
}

func TestUpdateIsIdempotentWhileStandingStill(t *testing.T) {
	c := newTestCollector(5.0)
	eye := mgl32.Vec3{50, 30, 50}

	if !c.Update(eye) {
		t.Fatal("first frame should collect")
	}
	for i := 0; i < 10; i++ {
		if c.Update(eye) {
			t.Fatal("standing in the radius must not re-collect")
		}
	}
	if c.Count() != 1 {
		t.Errorf("expected count 1 after repeated frames, got %d", c.Count())
	}
}

func TestUpdateHeightDifferenceIsIgnored(t *testing.T) {
	c := newTestCollector(5.0)

	// The nominal slot position is taken at eye height, so altitude
	// never blocks a collect.
	if !c.Update(mgl32.Vec3{50, 9999, 50}) {
		t.Fatal("expected collection regardless of eye height")
	}
}

func TestUpdateFarOutsideGridIsNoop(t *testing.T) {
	c := newTestCollector(5.0)

	if c.Update(mgl32.Vec3{-5000, 0, -5000}) {
		t.Fatal("out-of-grid position should not collect")
	}
	if c.Count() != 0 {
		t.Errorf("expected count 0, got %d", c.Count())
	}
}
