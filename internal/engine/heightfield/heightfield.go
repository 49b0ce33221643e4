// Package heightfield decodes grayscale elevation images and answers
// continuous height queries over them.
package heightfield

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	gomath "math"
)

// Field is an immutable 2D grid of elevation samples decoded from a
// grayscale image. World (x,z) coordinates map to texels through Size;
// sample values [0,255] map to world heights through HeightMultiplier.
type Field struct {
	samples []uint8
	width   int
	height  int

	// Size is the world-unit extent of one texel.
	Size float32
	// HeightMultiplier maps a normalized sample [0,1] to world height.
	HeightMultiplier float32
}

// FromBytes decodes an elevation image into a height field. Any image
// format registered with the stdlib decoder is accepted; pixels are
// converted to 8-bit grayscale.
func FromBytes(imageBytes []byte, size, heightMultiplier float32) (*Field, error) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("decoding heightmap image: %w", err)
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	samples := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			samples[y*w+x] = g.Y
		}
	}

	return &Field{
		samples:          samples,
		width:            w,
		height:           h,
		Size:             size,
		HeightMultiplier: heightMultiplier,
	}, nil
}

// FromSamples builds a field directly from raw samples. Used by tests
// and procedural setups; len(samples) must be width*height.
func FromSamples(samples []uint8, width, height int, size, heightMultiplier float32) *Field {
	if len(samples) != width*height {
		panic("heightfield: sample count does not match dimensions")
	}
	return &Field{
		samples:          samples,
		width:            width,
		height:           height,
		Size:             size,
		HeightMultiplier: heightMultiplier,
	}
}

// Width returns the sample count along X.
func (f *Field) Width() int { return f.width }

// Height returns the sample count along Z.
func (f *Field) Height() int { return f.height }

// SampleAt returns the world height of the texel at (ix, iy), clamping
// indices to the valid range.
func (f *Field) SampleAt(ix, iy int) float32 {
	if ix < 0 {
		ix = 0
	}
	if ix > f.width-1 {
		ix = f.width - 1
	}
	if iy < 0 {
		iy = 0
	}
	if iy > f.height-1 {
		iy = f.height - 1
	}
	return float32(f.samples[iy*f.width+ix]) / 255.0 * f.HeightMultiplier
}

// HeightAt returns the interpolated world height at world (x, z).
// Coordinates outside the field clamp to the nearest edge rather than
// erroring, so callers may query freely.
func (f *Field) HeightAt(x, z float32) float32 {
	tx := clampf(x/f.Size, 0, float32(f.width-1))
	tz := clampf(z/f.Size, 0, float32(f.height-1))

	ix := int(gomath.Floor(float64(tx)))
	iz := int(gomath.Floor(float64(tz)))
	fx := tx - float32(ix)
	fz := tz - float32(iz)

	h00 := f.SampleAt(ix, iz)
	h01 := f.SampleAt(ix, iz+1)
	h10 := f.SampleAt(ix+1, iz)
	h11 := f.SampleAt(ix+1, iz+1)

	// The x fraction blends each column's z neighbors, the z fraction
	// blends the resulting columns.
	a := h00 + (h01-h00)*fx
	b := h10 + (h11-h10)*fx
	return a + (b-a)*fz
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
