package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelmonaskarion/islands-3d/internal/engine/scene/shaders"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/shader"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/text"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/texture"
)

// OverlayRenderer draws atlas-baked text in screen space.
type OverlayRenderer struct {
	program *shader.Program
	atlas   *text.Atlas

	atlasTex uint32
	vao      uint32
	vbo      uint32
	capBytes int

	// Scratch vertex buffer reused across frames.
	verts []float32
}

// NewOverlayRenderer uploads the glyph atlas and prepares a dynamic
// quad buffer.
func NewOverlayRenderer(atlas *text.Atlas) (*OverlayRenderer, error) {
	program, err := shader.New(shaders.TextVertexShader, shaders.TextFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("text shader: %w", err)
	}

	or := &OverlayRenderer{
		program:  program,
		atlas:    atlas,
		atlasTex: texture.GrayFromSamples(atlas.Pix, atlas.Width, atlas.Height),
		// Room for 256 glyphs before reallocation
		capBytes: 256 * 6 * text.FloatsPerVertex * 4,
	}

	gl.GenVertexArrays(1, &or.vao)
	gl.BindVertexArray(or.vao)

	gl.GenBuffers(1, &or.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, or.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, or.capBytes, nil, gl.DYNAMIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, text.FloatsPerVertex*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return or, nil
}

// Draw renders s at pixel position (x, y baseline) on a screen of the
// given size.
func (or *OverlayRenderer) Draw(s string, x, y, scale float32, color mgl32.Vec3, screenW, screenH int) {
	or.verts = or.atlas.AppendString(or.verts[:0], s, x, y, scale)
	if len(or.verts) == 0 {
		return
	}

	size := len(or.verts) * 4
	if size > or.capBytes {
		or.capBytes = size
	}

	or.program.Use()
	or.program.SetVec2("uScreenSize", mgl32.Vec2{float32(screenW), float32(screenH)})
	or.program.SetVec3("uColor", color)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, or.atlasTex)
	or.program.SetInt("uAtlas", 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	gl.BindVertexArray(or.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, or.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, or.capBytes, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&or.verts[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(or.verts)/text.FloatsPerVertex))
	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
}

// LineHeight returns the vertical advance between text lines at the
// given scale.
func (or *OverlayRenderer) LineHeight(scale float32) float32 {
	return or.atlas.LineHeight * scale
}

// Destroy releases all resources.
func (or *OverlayRenderer) Destroy() {
	if or.vao != 0 {
		gl.DeleteVertexArrays(1, &or.vao)
	}
	if or.vbo != 0 {
		gl.DeleteBuffers(1, &or.vbo)
	}
	if or.atlasTex != 0 {
		gl.DeleteTextures(1, &or.atlasTex)
	}
	or.program.Delete()
}
