package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelmonaskarion/islands-3d/internal/engine/lighting"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/scene/shaders"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/shader"
)

// SunRenderer draws a camera-facing glow quad at the sun direction.
type SunRenderer struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
}

// NewSunRenderer compiles the billboard shader and uploads the unit quad.
func NewSunRenderer() (*SunRenderer, error) {
	program, err := shader.New(shaders.SunVertexShader, shaders.SunFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("sun shader: %w", err)
	}

	sr := &SunRenderer{program: program}

	corners := []float32{
		-1, -1,
		1, -1,
		-1, 1,
		1, -1,
		1, 1,
		-1, 1,
	}

	gl.GenVertexArrays(1, &sr.vao)
	gl.BindVertexArray(sr.vao)

	gl.GenBuffers(1, &sr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(corners)*4, unsafe.Pointer(&corners[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return sr, nil
}

// Render draws the billboard oriented by the camera's right and up
// vectors so it always faces the eye.
func (sr *SunRenderer) Render(viewProj mgl32.Mat4, sun lighting.Sun, eye, camRight, camUp mgl32.Vec3) {
	sr.program.Use()
	sr.program.SetMat4("uViewProj", viewProj)
	sr.program.SetVec3("uCenter", sun.WorldPosition(eye))
	sr.program.SetVec3("uRight", camRight)
	sr.program.SetVec3("uUp", camUp)
	sr.program.SetFloat("uSize", sun.Size)
	sr.program.SetVec3("uColor", sun.Color)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	gl.BindVertexArray(sr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.BLEND)
}

// Destroy releases all resources.
func (sr *SunRenderer) Destroy() {
	if sr.vao != 0 {
		gl.DeleteVertexArrays(1, &sr.vao)
	}
	if sr.vbo != 0 {
		gl.DeleteBuffers(1, &sr.vbo)
	}
	sr.program.Delete()
}
