// Package obj parses Wavefront OBJ meshes into GPU-ready arrays.
// Only the subset the demo's models use is supported: positions,
// texture coordinates, normals and polygonal faces (triangulated here
// as fans). Materials are noted by name but not parsed.
package obj

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// FloatsPerVertex is the interleaved vertex stride: position (3),
// texture coordinate (2), normal (3).
const FloatsPerVertex = 8

// Mesh holds an interleaved vertex array and triangle indices.
type Mesh struct {
	// Vertices is x,y,z,u,v,nx,ny,nz per vertex.
	Vertices []float32
	Indices  []uint32

	// Material is the name from the first usemtl directive, if any.
	Material string
}

// VertexCount returns the number of interleaved vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) / FloatsPerVertex }

// faceKey identifies one v/vt/vn combination so shared corners reuse
// one output vertex.
type faceKey struct {
	v, vt, vn int
}

// Parse decodes OBJ bytes into a mesh.
func Parse(data []byte) (*Mesh, error) {
	var (
		positions [][3]float32
		texcoords [][2]float32
		normals   [][3]float32
	)

	mesh := &Mesh{}
	seen := make(map[faceKey]uint32)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, [3]float32{p[0], p[1], p[2]})

		case "vt":
			p, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: texcoord: %w", lineNo, err)
			}
			texcoords = append(texcoords, [2]float32{p[0], p[1]})

		case "vn":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, [3]float32{p[0], p[1], p[2]})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			corners := make([]uint32, 0, len(fields)-1)
			for _, spec := range fields[1:] {
				idx, err := resolveCorner(spec, positions, texcoords, normals, seen, mesh)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				corners = append(corners, idx)
			}
			// Fan triangulation for quads and larger polygons.
			for i := 1; i+1 < len(corners); i++ {
				mesh.Indices = append(mesh.Indices, corners[0], corners[i], corners[i+1])
			}

		case "usemtl":
			if mesh.Material == "" && len(fields) > 1 {
				mesh.Material = fields[1]
			}

		// o, g, s, mtllib carry no geometry.
		case "o", "g", "s", "mtllib":
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("OBJ contains no faces")
	}
	return mesh, nil
}

// resolveCorner maps one face corner spec ("v", "v/vt", "v//vn" or
// "v/vt/vn", 1-based) to an output vertex index, emitting the vertex on
// first sight.
func resolveCorner(spec string, positions [][3]float32, texcoords [][2]float32, normals [][3]float32, seen map[faceKey]uint32, mesh *Mesh) (uint32, error) {
	parts := strings.Split(spec, "/")

	key := faceKey{}
	var err error
	key.v, err = resolveIndex(parts[0], len(positions))
	if err != nil {
		return 0, fmt.Errorf("face corner %q: %w", spec, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		key.vt, err = resolveIndex(parts[1], len(texcoords))
		if err != nil {
			return 0, fmt.Errorf("face corner %q: %w", spec, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		key.vn, err = resolveIndex(parts[2], len(normals))
		if err != nil {
			return 0, fmt.Errorf("face corner %q: %w", spec, err)
		}
	}

	if idx, ok := seen[key]; ok {
		return idx, nil
	}

	pos := positions[key.v-1]
	var uv [2]float32
	if key.vt > 0 {
		uv = texcoords[key.vt-1]
	}
	var n [3]float32
	if key.vn > 0 {
		n = normals[key.vn-1]
	}

	idx := uint32(len(mesh.Vertices) / FloatsPerVertex)
	mesh.Vertices = append(mesh.Vertices,
		pos[0], pos[1], pos[2],
		uv[0], uv[1],
		n[0], n[1], n[2],
	)
	seen[key] = idx
	return idx, nil
}

// resolveIndex parses a 1-based index, converting OBJ's negative
// from-the-end references to absolute positions.
func resolveIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", s)
	}
	if i < 0 {
		i = count + i + 1
	}
	if i < 1 || i > count {
		return 0, fmt.Errorf("index %d out of range (have %d)", i, count)
	}
	return i, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("bad float %q", fields[i])
		}
		out[i] = float32(f)
	}
	return out, nil
}
