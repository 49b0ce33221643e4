package heightfield

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	gomath "math"
	"testing"
)

func flatField(t *testing.T, w, h int, value uint8, size, mult float32) *Field {
	t.Helper()
	samples := make([]uint8, w*h)
	for i := range samples {
		samples[i] = value
	}
	return FromSamples(samples, w, h, size, mult)
}

func TestFromBytesDecodesGrayscalePNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x*10 + y)})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}

	f, err := FromBytes(buf.Bytes(), 1.0, 255.0)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	if f.Width() != 4 || f.Height() != 4 {
		t.Errorf("expected 4x4 field, got %dx%d", f.Width(), f.Height())
	}
	// With multiplier 255 the sample maps straight back to its byte value.
	if got := f.SampleAt(2, 1); got != 21 {
		t.Errorf("expected sample 21 at (2,1), got %f", got)
	}
}

func TestFromBytesRejectsGarbage(t *testing.T) {
	if _, err := FromBytes([]byte("not an image"), 1.0, 100.0); err == nil {
		t.Fatal("expected decode error for malformed bytes")
	}
}

func TestHeightAtGridPointsIsIdentity(t *testing.T) {
	samples := []uint8{
		10, 20, 30,
		40, 50, 60,
		70, 80, 90,
	}
	f := FromSamples(samples, 3, 3, 1.0, 255.0)

	for iy := 0; iy < 3; iy++ {
		for ix := 0; ix < 3; ix++ {
			want := float32(samples[iy*3+ix])
			got := f.HeightAt(float32(ix), float32(iy))
			if gomath.Abs(float64(got-want)) > 1e-4 {
				t.Errorf("HeightAt(%d,%d) = %f, want %f", ix, iy, got, want)
			}
		}
	}
}

func TestHeightAtClampsOutOfRange(t *testing.T) {
	samples := []uint8{
		10, 20,
		30, 40,
	}
	f := FromSamples(samples, 2, 2, 2.0, 255.0)

	cases := []struct {
		x, z float32
		want float32
	}{
		{-100, -100, 10},
		{100, -100, 20},
		{-100, 100, 30},
		{100, 100, 40},
	}
	for _, c := range cases {
		if got := f.HeightAt(c.x, c.z); got != c.want {
			t.Errorf("HeightAt(%f,%f) = %f, want %f", c.x, c.z, got, c.want)
		}
	}
}

func TestHeightAtFlatField(t *testing.T) {
	f := flatField(t, 4, 4, 128, 1.0, 100.0)

	want := float32(128) / 255.0 * 100.0
	got := f.HeightAt(1.5, 1.5)
	if gomath.Abs(float64(got-want)) > 1e-3 {
		t.Errorf("expected %f on a flat field, got %f", want, got)
	}
}

func TestHeightAtInterpolatesBetweenSamples(t *testing.T) {
	samples := []uint8{
		0, 0,
		255, 255,
	}
	f := FromSamples(samples, 2, 2, 1.0, 100.0)

	// Halfway between the two rows the height is halfway too.
	got := f.HeightAt(0.5, 0.5)
	if gomath.Abs(float64(got-50.0)) > 1e-3 {
		t.Errorf("expected 50 at the cell center, got %f", got)
	}
}

func TestHeightAtRespectsWorldScale(t *testing.T) {
	samples := []uint8{
		0, 255,
		0, 255,
	}
	f := FromSamples(samples, 2, 2, 10.0, 100.0)

	// World x=10 is texel 1.
	if got := f.HeightAt(10, 0); got != 100 {
		t.Errorf("expected 100 at world x=10, got %f", got)
	}
}
