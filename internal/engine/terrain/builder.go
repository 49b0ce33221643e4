package terrain

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelmonaskarion/islands-3d/internal/engine/heightfield"
)

// slopeDirtThreshold recolors faces whose normal points sideways more
// than up: steep ground reads as dirt rather than grass.
const slopeDirtThreshold = 0.5

// snowHeightFraction of the height multiplier above which vertices are
// classified as snow.
const snowHeightFraction = 0.7

// Build partitions the height field into chunks x chunks chunk meshes,
// sampling every res-th texel. Adjacent chunks overlap by one sampled
// row/column on their max edges so shared borders produce bit-identical
// vertex positions. When genNormals is set, face normals are derived
// and steep faces are recolored to dirt.
func Build(field *heightfield.Field, res, chunks int, genNormals bool) *Terrain {
	if res < 1 {
		res = 1
	}
	if chunks < 1 {
		chunks = 1
	}

	sw := field.Width() / res
	sh := field.Height() / res

	t := &Terrain{
		Chunks: make(map[ChunkCoord]*Chunk, chunks*chunks),
		field:  field,
	}
	for cy := 0; cy < chunks; cy++ {
		for cx := 0; cx < chunks; cx++ {
			coord := ChunkCoord{X: cx, Y: cy}
			t.Chunks[coord] = buildChunk(field, coord, sw, sh, res, chunks, genNormals)
		}
	}
	return t
}

func buildChunk(field *heightfield.Field, coord ChunkCoord, sw, sh, res, chunks int, genNormals bool) *Chunk {
	baseX := coord.X * (sw / chunks)
	baseY := coord.Y * (sh / chunks)

	cw := sw / chunks
	ch := sh / chunks
	// Extend the max edge into the neighboring chunk so the border row
	// and column are shared; the last chunk per axis has no neighbor.
	if coord.X < chunks-1 {
		cw++
	}
	if coord.Y < chunks-1 {
		ch++
	}

	size := field.Size
	mult := field.HeightMultiplier

	vertices := make([]Vertex, 0, cw*ch)
	indices := make([]uint32, 0, (cw-1)*(ch-1)*6)

	for x := 0; x < cw; x++ {
		for y := 0; y < ch; y++ {
			ax := (baseX + x) * res
			ay := (baseY + y) * res
			h := field.SampleAt(ax, ay)

			color := ColorGrass
			if h > snowHeightFraction*mult {
				color = ColorSnow
			}
			if h <= WaterLevelFraction*mult {
				color = ColorRock
			}

			vertices = append(vertices, Vertex{
				Position: [3]float32{float32(ax) * size, h, float32(ay) * size},
				Color:    color,
			})

			if x < cw-1 && y < ch-1 {
				i := uint32(x*ch + y)
				rl := uint32(ch)
				indices = append(indices, i, i+1, i+rl+1, i, i+rl+1, i+rl)
			}
		}
	}

	if genNormals {
		applyFaceNormals(vertices, indices)
	}

	return &Chunk{
		Coord:    coord,
		Vertices: vertices,
		Indices:  indices,
		Model:    mgl32.Ident4(),
	}
}

// applyFaceNormals writes each face's normal into all three incident
// vertices. Shared vertices keep whichever face was processed last; the
// visual result is a faceted surface, which is intentional.
func applyFaceNormals(vertices []Vertex, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		v1 := indices[i]
		v2 := indices[i+1]
		v3 := indices[i+2]

		p1 := mgl32.Vec3(vertices[v1].Position)
		u := mgl32.Vec3(vertices[v2].Position).Sub(p1)
		v := mgl32.Vec3(vertices[v3].Position).Sub(p1)
		normal := u.Cross(v).Normalize()

		n := [3]float32{normal.X(), normal.Y(), normal.Z()}
		vertices[v1].Normal = n
		vertices[v2].Normal = n
		vertices[v3].Normal = n

		if normal.Y() < slopeDirtThreshold {
			for _, vi := range []uint32{v1, v2, v3} {
				if vertices[vi].Color != ColorSnow {
					vertices[vi].Color = ColorDirt
				}
			}
		}
	}
}
