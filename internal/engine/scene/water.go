package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelmonaskarion/islands-3d/internal/engine/lighting"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/scene/shaders"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/shader"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/water"
)

// waterScrollSpeed drives the normal-map scroll rate.
const waterScrollSpeed = 1.0

// WaterRenderer draws the animated water plane. Drawn after the
// terrain with blending so the bottom shows through.
type WaterRenderer struct {
	program *shader.Program

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	normalMap1 uint32
	normalMap2 uint32
}

// NewWaterRenderer uploads the plane geometry and takes ownership of
// the two normal-map textures.
func NewWaterRenderer(plane *water.Plane, normalMap1, normalMap2 uint32) (*WaterRenderer, error) {
	program, err := shader.New(shaders.WaterVertexShader, shaders.WaterFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}

	wr := &WaterRenderer{
		program:    program,
		indexCount: int32(len(plane.Indices)),
		normalMap1: normalMap1,
		normalMap2: normalMap2,
	}

	gl.GenVertexArrays(1, &wr.vao)
	gl.BindVertexArray(wr.vao)

	gl.GenBuffers(1, &wr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, wr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(plane.Vertices)*4, unsafe.Pointer(&plane.Vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &wr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, wr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(plane.Indices)*4, unsafe.Pointer(&plane.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return wr, nil
}

// Render draws the water surface at the given time.
func (wr *WaterRenderer) Render(viewProj mgl32.Mat4, time float32, sun lighting.Sun, cameraPos mgl32.Vec3) {
	wr.program.Use()
	wr.program.SetMat4("uViewProj", viewProj)
	wr.program.SetFloat("uTime", time)
	wr.program.SetVec3("uLightDir", sun.Direction())
	wr.program.SetVec3("uCameraPos", cameraPos)

	s1 := water.ScrollOffset(time, waterScrollSpeed)
	s2 := water.ScrollOffset(time, -waterScrollSpeed*0.7)
	wr.program.SetVec2("uScroll1", mgl32.Vec2{s1[0], s1[1]})
	wr.program.SetVec2("uScroll2", mgl32.Vec2{s2[0], s2[1]})

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, wr.normalMap1)
	wr.program.SetInt("uNormalMap1", 0)

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, wr.normalMap2)
	wr.program.SetInt("uNormalMap2", 1)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	gl.BindVertexArray(wr.vao)
	gl.DrawElements(gl.TRIANGLES, wr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Destroy releases all resources.
func (wr *WaterRenderer) Destroy() {
	if wr.vao != 0 {
		gl.DeleteVertexArrays(1, &wr.vao)
	}
	if wr.vbo != 0 {
		gl.DeleteBuffers(1, &wr.vbo)
	}
	if wr.ebo != 0 {
		gl.DeleteBuffers(1, &wr.ebo)
	}
	if wr.normalMap1 != 0 {
		gl.DeleteTextures(1, &wr.normalMap1)
	}
	if wr.normalMap2 != 0 {
		gl.DeleteTextures(1, &wr.normalMap2)
	}
	wr.program.Delete()
}
