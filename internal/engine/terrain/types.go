// Package terrain builds chunked triangle meshes from a height field.
package terrain

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelmonaskarion/islands-3d/internal/engine/heightfield"
)

// WaterLevelFraction is the fraction of the height multiplier at which
// the water plane sits. Terrain at or below this height is tinted as
// underwater rock; the water subsystem places its plane at the same
// level, so the two must never drift apart.
const WaterLevelFraction = 0.1439215686

// Biome tints, normalized RGB.
var (
	ColorGrass = [3]float32{17.0 / 255.0, 124.0 / 255.0, 19.0 / 255.0}
	ColorSnow  = [3]float32{0.9, 0.9, 0.9}
	ColorRock  = [3]float32{0.3, 0.3, 0.3}
	ColorDirt  = [3]float32{165.0 / 255.0, 42.0 / 255.0, 42.0 / 255.0}
)

// Vertex is one terrain mesh vertex: position, biome color, normal.
// The layout matches the interleaved attribute buffer uploaded to GL.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
	Normal   [3]float32
}

// ChunkCoord identifies a chunk within the terrain grid.
type ChunkCoord struct {
	X, Y int
}

// Chunk is one rectangular partition of the terrain surface. Built once
// at load time; immutable afterwards.
type Chunk struct {
	Coord    ChunkCoord
	Vertices []Vertex
	Indices  []uint32

	// Model places the chunk in the world. Vertices are already in
	// world coordinates, so this stays identity; it exists so chunks go
	// through the same transform path as other drawn geometry.
	Model mgl32.Mat4
}

// Terrain owns every chunk mesh, keyed by chunk coordinate.
type Terrain struct {
	Chunks map[ChunkCoord]*Chunk

	field *heightfield.Field
}

// Field returns the height field the terrain was built from.
func (t *Terrain) Field() *heightfield.Field { return t.field }

// TriangleCount reports the total triangle count across all chunks.
func (t *Terrain) TriangleCount() int {
	n := 0
	for _, c := range t.Chunks {
		n += len(c.Indices) / 3
	}
	return n
}
