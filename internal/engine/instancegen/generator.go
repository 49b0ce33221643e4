// Package instancegen procedurally places, animates and removes the
// collectible instances without per-object bookkeeping. The whole
// population is regenerated every frame by a data-parallel map over the
// slot grid; removal is a per-slot flag consumed during generation, so
// collected objects degenerate to zero scale instead of being compacted
// out of the buffer.
package instancegen

import (
	gomath "math"
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelmonaskarion/islands-3d/internal/engine/heightfield"
)

// Instance is one packed instance record: a model matrix followed by a
// color. The layout matches the instanced vertex attribute buffer.
type Instance struct {
	Model mgl32.Mat4
	Color mgl32.Vec4
}

// FloatsPerInstance is the stride of one packed instance in floats.
const FloatsPerInstance = 20

// Slot addresses one cell of the placement grid.
type Slot struct {
	X, Y int
}

// Animation parameters. Phase is derived from the linear slot index so
// neighboring objects do not bob in lockstep.
const (
	bobAmplitude = 0.5
	bobSpeed     = 2.0
	spinSpeed    = 1.5
	phaseStep    = 0.7
)

// Config holds generator construction parameters.
type Config struct {
	// Grid is the slot count per axis (Nx, Ny).
	Grid [2]int
	// Spacing is the world distance between neighboring slots.
	Spacing float32
	// Hover lifts objects this far above the sampled ground height.
	Hover float32
	// Workers shards generation across this many goroutines; zero or
	// negative picks GOMAXPROCS.
	Workers int
}

// Generator owns the collected-slot state and regenerates the instance
// buffer on demand. Not safe for concurrent mutation; the game loop is
// the only writer.
type Generator struct {
	grid    [2]int
	spacing float32
	hover   float32
	workers int

	field *heightfield.Field

	collected []Slot
	flags     []uint32

	// Reused across frames to avoid a per-frame allocation.
	buf []Instance
	mu  sync.Mutex
}

// New creates a generator over the given height field.
func New(field *heightfield.Field, cfg Config) *Generator {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := cfg.Grid[0] * cfg.Grid[1]
	return &Generator{
		grid:    cfg.Grid,
		spacing: cfg.Spacing,
		hover:   cfg.Hover,
		workers: workers,
		field:   field,
		flags:   make([]uint32, n),
		buf:     make([]Instance, n),
	}
}

// Grid returns the slot counts per axis.
func (g *Generator) Grid() [2]int { return g.grid }

// Spacing returns the world distance between neighboring slots.
func (g *Generator) Spacing() float32 { return g.spacing }

// Count returns how many slots have been collected.
func (g *Generator) Count() int { return len(g.collected) }

// Total returns the slot count of the whole grid.
func (g *Generator) Total() int { return g.grid[0] * g.grid[1] }

func (g *Generator) index(s Slot) int { return s.X*g.grid[1] + s.Y }

func (g *Generator) inGrid(s Slot) bool {
	return s.X >= 0 && s.Y >= 0 && s.X < g.grid[0] && s.Y < g.grid[1]
}

// Collected reports whether the slot has been collected. Slots outside
// the grid read as not collected.
func (g *Generator) Collected(s Slot) bool {
	if !g.inGrid(s) {
		return false
	}
	return g.flags[g.index(s)] == 1
}

// Collect permanently marks a slot as collected and rebuilds the dense
// flag buffer from the collected set. Out-of-grid slots and repeat
// collections are no-ops. Collection events are rare next to per-frame
// generation, so the O(collected) rebuild is fine.
func (g *Generator) Collect(s Slot) {
	if !g.inGrid(s) || g.flags[g.index(s)] == 1 {
		return
	}
	g.collected = append(g.collected, s)

	for i := range g.flags {
		g.flags[i] = 0
	}
	for _, c := range g.collected {
		g.flags[g.index(c)] = 1
	}
}

// Flags returns a copy of the dense 0/1 collected buffer, one entry per
// slot in linear order.
func (g *Generator) Flags() []uint32 {
	out := make([]uint32, len(g.flags))
	copy(out, g.flags)
	return out
}

// Generate produces the full instance buffer for the given time. Every
// call recomputes all Grid[0]*Grid[1] instances: position from the slot
// coordinates and the height field, bob and spin from time, and a
// zero-scaled transparent transform for collected slots. The caller
// draws exactly Total() instances and relies on the degeneration, never
// on compaction. The returned slice is reused by the next call.
func (g *Generator) Generate(time float32) []Instance {
	g.mu.Lock()
	defer g.mu.Unlock()

	nx, ny := g.grid[0], g.grid[1]

	workers := g.workers
	if workers > nx {
		workers = nx
	}
	if workers < 1 {
		workers = 1
	}

	// Shard whole rows so each worker writes a contiguous range.
	var wg sync.WaitGroup
	rowsPer := (nx + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * rowsPer
		if start >= nx {
			break
		}
		end := start + rowsPer
		if end > nx {
			end = nx
		}
		wg.Add(1)
		go func(x0, x1 int) {
			defer wg.Done()
			for x := x0; x < x1; x++ {
				for y := 0; y < ny; y++ {
					i := x*ny + y
					g.buf[i] = g.generateOne(x, y, i, time)
				}
			}
		}(start, end)
	}
	wg.Wait()

	return g.buf
}

func (g *Generator) generateOne(x, y, i int, time float32) Instance {
	if g.flags[i] == 1 {
		// Degenerate: scaled to nothing and fully transparent, so the
		// fixed-count instanced draw skips it visually.
		return Instance{
			Model: mgl32.Scale3D(0, 0, 0),
			Color: mgl32.Vec4{1, 1, 1, 0},
		}
	}

	wx := float32(x) * g.spacing
	wz := float32(y) * g.spacing

	phase := float32(i) * phaseStep
	bob := bobAmplitude * float32(gomath.Sin(float64(time*bobSpeed+phase)))
	wy := g.field.HeightAt(wx, wz) + g.hover + bob

	spin := time*spinSpeed + phase
	model := mgl32.Translate3D(wx, wy, wz).Mul4(mgl32.HomogRotate3DY(spin))

	return Instance{
		Model: model,
		Color: mgl32.Vec4{1, 1, 1, 1},
	}
}
