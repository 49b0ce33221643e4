// Package water provides water plane geometry and animation utilities.
package water

// Plane holds water surface geometry ready for GPU upload. Positions
// only; waves are displaced in the vertex shader from the time uniform,
// which is why the plane is subdivided instead of a single quad.
type Plane struct {
	// Vertices is a flat x,y,z array.
	Vertices []float32
	Indices  []uint32

	// Level is the water Y level in world units.
	Level float32
	// Extent is the side length of the square plane.
	Extent float32
}

// BuildPlane creates a square water plane of the given side length at
// the given level, subdivided into tileSize-sized quads so the shader
// has vertices to displace.
func BuildPlane(extent, level, tileSize float32) *Plane {
	if tileSize <= 0 || tileSize > extent {
		tileSize = extent
	}
	cells := int(extent / tileSize)
	if float32(cells)*tileSize < extent {
		cells++
	}
	verts := cells + 1

	vertices := make([]float32, 0, verts*verts*3)
	for x := 0; x <= cells; x++ {
		for z := 0; z <= cells; z++ {
			px := float32(x) * tileSize
			pz := float32(z) * tileSize
			if px > extent {
				px = extent
			}
			if pz > extent {
				pz = extent
			}
			vertices = append(vertices, px, level, pz)
		}
	}

	indices := make([]uint32, 0, cells*cells*6)
	for x := 0; x < cells; x++ {
		for z := 0; z < cells; z++ {
			i := uint32(x*verts + z)
			rl := uint32(verts)
			indices = append(indices, i, i+1, i+rl+1, i, i+rl+1, i+rl)
		}
	}

	return &Plane{
		Vertices: vertices,
		Indices:  indices,
		Level:    level,
		Extent:   extent,
	}
}

// ScrollOffset returns the UV offset for a scrolling normal map at the
// given time. The two normal maps scroll at different speeds so their
// interference reads as moving water.
func ScrollOffset(time, speed float32) [2]float32 {
	return [2]float32{time * speed * 0.03, time * speed * 0.017}
}
