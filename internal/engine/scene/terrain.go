// Package scene holds the GL renderers for the landscape: terrain
// chunks, water, instanced collectibles, the sun billboard, the
// post-process composite and the text overlay.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelmonaskarion/islands-3d/internal/engine/lighting"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/scene/shaders"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/shader"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/terrain"
)

// chunkMesh is one uploaded terrain chunk.
type chunkMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	model      mgl32.Mat4
}

// TerrainRenderer draws the chunked terrain mesh with per-vertex biome
// colors and lambert lighting.
type TerrainRenderer struct {
	program *shader.Program
	chunks  []chunkMesh

	waterLevel float32
}

// NewTerrainRenderer compiles the terrain shader and uploads every
// chunk into its own VAO.
func NewTerrainRenderer(t *terrain.Terrain, waterLevel float32) (*TerrainRenderer, error) {
	program, err := shader.New(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}

	tr := &TerrainRenderer{
		program:    program,
		waterLevel: waterLevel,
	}

	for _, chunk := range t.Chunks {
		if len(chunk.Vertices) == 0 || len(chunk.Indices) == 0 {
			continue
		}
		tr.chunks = append(tr.chunks, uploadChunk(chunk))
	}

	return tr, nil
}

func uploadChunk(chunk *terrain.Chunk) chunkMesh {
	var m chunkMesh
	m.indexCount = int32(len(chunk.Indices))
	m.model = chunk.Model

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(chunk.Vertices)*vertexSize, unsafe.Pointer(&chunk.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Color (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// Normal (location 2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(chunk.Indices)*4, unsafe.Pointer(&chunk.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

// Render draws every chunk.
func (tr *TerrainRenderer) Render(viewProj mgl32.Mat4, sun lighting.Sun) {
	tr.program.Use()
	tr.program.SetMat4("uViewProj", viewProj)
	tr.program.SetVec3("uLightDir", sun.Direction())
	tr.program.SetVec3("uLightColor", sun.Color)
	tr.program.SetFloat("uAmbient", 0.35)
	tr.program.SetFloat("uWaterLevel", tr.waterLevel)

	for _, m := range tr.chunks {
		tr.program.SetMat4("uModel", m.model)
		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (tr *TerrainRenderer) Destroy() {
	for i := range tr.chunks {
		m := &tr.chunks[i]
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
		}
		if m.vbo != 0 {
			gl.DeleteBuffers(1, &m.vbo)
		}
		if m.ebo != 0 {
			gl.DeleteBuffers(1, &m.ebo)
		}
	}
	tr.chunks = nil
	tr.program.Delete()
}
