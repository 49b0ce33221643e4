package game

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelmonaskarion/islands-3d/internal/engine/instancegen"
)

// Collector turns player proximity into permanent slot collection. It
// owns no instance state of its own; the generator's flag buffer is the
// single source of truth.
type Collector struct {
	gen    *instancegen.Generator
	radius float32
}

// NewCollector creates a collector with the given capture radius.
func NewCollector(gen *instancegen.Generator, radius float32) *Collector {
	return &Collector{gen: gen, radius: radius}
}

// Count returns how many slots have been collected so far.
func (c *Collector) Count() int { return c.gen.Count() }

// Total returns the grid's slot count.
func (c *Collector) Total() int { return c.gen.Total() }

// Update checks the slot nearest the eye and collects it when within
// the capture radius. Returns true when a slot was newly collected.
// Safe to call every frame: an already-collected nearest slot is
// skipped, so standing inside the radius collects exactly once.
func (c *Collector) Update(eye mgl32.Vec3) bool {
	spacing := c.gen.Spacing()
	slot := instancegen.Slot{
		X: int(gomath.Round(float64(eye.X() / spacing))),
		Y: int(gomath.Round(float64(eye.Z() / spacing))),
	}

	if c.gen.Collected(slot) {
		return false
	}

	// The slot's nominal position is taken at the eye's height, so the
	// check is effectively horizontal distance.
	nominal := mgl32.Vec3{float32(slot.X) * spacing, eye.Y(), float32(slot.Y) * spacing}
	if eye.Sub(nominal).Len() >= c.radius {
		return false
	}

	before := c.gen.Count()
	c.gen.Collect(slot)
	return c.gen.Count() > before
}
