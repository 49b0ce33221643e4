package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelmonaskarion/islands-3d/internal/engine/framebuffer"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/scene/shaders"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/shader"
)

// PostRenderer composites the offscreen scene onto the default
// framebuffer with fog, underwater tint and vignette.
type PostRenderer struct {
	program *shader.Program

	// Empty VAO; the fullscreen triangle comes from gl_VertexID.
	vao uint32
}

// NewPostRenderer compiles the fullscreen pass.
func NewPostRenderer() (*PostRenderer, error) {
	program, err := shader.New(shaders.PostVertexShader, shaders.PostFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("post shader: %w", err)
	}

	pr := &PostRenderer{program: program}
	gl.GenVertexArrays(1, &pr.vao)
	return pr, nil
}

// Render samples the scene framebuffer and writes the composited image
// to the currently bound target.
func (pr *PostRenderer) Render(fb *framebuffer.Framebuffer, invViewProj mgl32.Mat4, cameraPos mgl32.Vec3, time, waterLevel float32) {
	pr.program.Use()
	pr.program.SetMat4("uInvViewProj", invViewProj)
	pr.program.SetVec3("uCameraPos", cameraPos)
	pr.program.SetFloat("uTime", time)
	pr.program.SetFloat("uWaterLevel", waterLevel)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fb.ColorTexture())
	pr.program.SetInt("uScene", 0)

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, fb.DepthTexture())
	pr.program.SetInt("uDepth", 1)

	gl.Disable(gl.DEPTH_TEST)
	gl.BindVertexArray(pr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

// Destroy releases all resources.
func (pr *PostRenderer) Destroy() {
	if pr.vao != 0 {
		gl.DeleteVertexArrays(1, &pr.vao)
	}
	pr.program.Delete()
}
