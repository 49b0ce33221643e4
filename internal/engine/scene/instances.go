package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelmonaskarion/islands-3d/internal/engine/instancegen"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/lighting"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/scene/shaders"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/shader"
	"github.com/pixelmonaskarion/islands-3d/pkg/obj"
)

// InstanceRenderer draws the collectibles in a single instanced call.
// The instance count never changes; collected slots arrive as
// degenerate transforms and are discarded in the fragment shader.
type InstanceRenderer struct {
	program *shader.Program

	vao         uint32
	meshVBO     uint32
	meshEBO     uint32
	instanceVBO uint32

	indexCount    int32
	instanceCount int32
	capacityBytes int

	texture   uint32
	baseColor mgl32.Vec3
}

// NewInstanceRenderer uploads the collectible mesh and allocates the
// per-frame instance buffer for capacity instances. texture may be 0,
// in which case baseColor tints the mesh instead.
func NewInstanceRenderer(mesh *obj.Mesh, capacity int, texture uint32, baseColor mgl32.Vec3) (*InstanceRenderer, error) {
	program, err := shader.New(shaders.InstanceVertexShader, shaders.InstanceFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("instance shader: %w", err)
	}

	ir := &InstanceRenderer{
		program:       program,
		indexCount:    int32(len(mesh.Indices)),
		capacityBytes: capacity * instancegen.FloatsPerInstance * 4,
		texture:       texture,
		baseColor:     baseColor,
	}

	gl.GenVertexArrays(1, &ir.vao)
	gl.BindVertexArray(ir.vao)

	// Static mesh attributes: position, uv, normal
	gl.GenBuffers(1, &ir.meshVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, ir.meshVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	stride := int32(obj.FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 5*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &ir.meshEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ir.meshEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	// Per-instance attributes: mat4 columns (3..6) and color (7),
	// advancing once per instance
	gl.GenBuffers(1, &ir.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, ir.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, ir.capacityBytes, nil, gl.DYNAMIC_DRAW)

	instStride := int32(instancegen.FloatsPerInstance * 4)
	for i := uint32(0); i < 4; i++ {
		loc := 3 + i
		gl.VertexAttribPointerWithOffset(loc, 4, gl.FLOAT, false, instStride, uintptr(i*4*4))
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribDivisor(loc, 1)
	}
	gl.VertexAttribPointerWithOffset(7, 4, gl.FLOAT, false, instStride, 16*4)
	gl.EnableVertexAttribArray(7)
	gl.VertexAttribDivisor(7, 1)

	gl.BindVertexArray(0)
	return ir, nil
}

// SetInstances uploads the full instance buffer for this frame. The
// slice length fixes the draw count.
func (ir *InstanceRenderer) SetInstances(instances []instancegen.Instance) {
	ir.instanceCount = int32(len(instances))
	if len(instances) == 0 {
		return
	}

	size := len(instances) * instancegen.FloatsPerInstance * 4
	if size > ir.capacityBytes {
		size = ir.capacityBytes
		ir.instanceCount = int32(ir.capacityBytes / (instancegen.FloatsPerInstance * 4))
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, ir.instanceVBO)
	// Orphan before the upload so the driver never stalls on the
	// previous frame's draw
	gl.BufferData(gl.ARRAY_BUFFER, ir.capacityBytes, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&instances[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render draws every instance uploaded by the last SetInstances call.
func (ir *InstanceRenderer) Render(viewProj mgl32.Mat4, sun lighting.Sun) {
	if ir.instanceCount == 0 {
		return
	}

	ir.program.Use()
	ir.program.SetMat4("uViewProj", viewProj)
	ir.program.SetVec3("uLightDir", sun.Direction())
	ir.program.SetVec3("uBaseColor", ir.baseColor)

	if ir.texture != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, ir.texture)
		ir.program.SetInt("uTexture", 0)
		ir.program.SetInt("uUseTexture", 1)
	} else {
		ir.program.SetInt("uUseTexture", 0)
	}

	gl.BindVertexArray(ir.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, ir.indexCount, gl.UNSIGNED_INT, nil, ir.instanceCount)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (ir *InstanceRenderer) Destroy() {
	if ir.vao != 0 {
		gl.DeleteVertexArrays(1, &ir.vao)
	}
	if ir.meshVBO != 0 {
		gl.DeleteBuffers(1, &ir.meshVBO)
	}
	if ir.meshEBO != 0 {
		gl.DeleteBuffers(1, &ir.meshEBO)
	}
	if ir.instanceVBO != 0 {
		gl.DeleteBuffers(1, &ir.instanceVBO)
	}
	if ir.texture != 0 {
		gl.DeleteTextures(1, &ir.texture)
	}
	ir.program.Delete()
}
