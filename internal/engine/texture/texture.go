package texture

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Upload creates a GL texture from RGBA pixels. linear selects linear
// filtering (normal maps, scaled textures); otherwise nearest.
func Upload(pix []uint8, width, height int, linear bool) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	filter := int32(gl.NEAREST)
	if linear {
		filter = gl.LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}

// FromBytes decodes texture bytes and uploads them to GL.
func FromBytes(data []byte, linear bool) (uint32, int, int, error) {
	img, err := Decode(data)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("loading texture: %w", err)
	}
	rgba := ImageToRGBA(img)
	b := rgba.Bounds()
	return Upload(rgba.Pix, b.Dx(), b.Dy(), linear), b.Dx(), b.Dy(), nil
}

// GrayFromSamples uploads a single-channel byte grid as a red-channel
// texture, used to hand the height field to shaders.
func GrayFromSamples(samples []uint8, width, height int) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(width), int32(height), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(samples))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}
