package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// buildTGA assembles a minimal uncompressed 24-bit TGA with the given
// BGR pixel rows (bottom-to-top storage, the TGA default).
func buildTGA(width, height int, bgr []byte) []byte {
	header := make([]byte, 18)
	header[2] = TGATypeUncompressed
	header[12] = byte(width)
	header[13] = byte(width >> 8)
	header[14] = byte(height)
	header[15] = byte(height >> 8)
	header[16] = 24
	return append(header, bgr...)
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// One row: blue pixel then red pixel, stored BGR.
	data := buildTGA(2, 1, []byte{
		255, 0, 0, // blue
		0, 0, 255, // red
	})

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}

	rgba := ImageToRGBA(img)
	if got := rgba.RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("pixel 0: expected blue, got %v", got)
	}
	if got := rgba.RGBAAt(1, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel 1: expected red, got %v", got)
	}
}

func TestDecodeTGARLE(t *testing.T) {
	header := make([]byte, 18)
	header[2] = TGATypeRLE
	header[12] = 4
	header[14] = 1
	header[16] = 24
	// One RLE packet: repeat a green pixel 4 times.
	data := append(header, 0x83, 0, 255, 0)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	rgba := ImageToRGBA(img)
	for x := 0; x < 4; x++ {
		if got := rgba.RGBAAt(x, 0); got != (color.RGBA{G: 255, A: 255}) {
			t.Errorf("pixel %d: expected green, got %v", x, got)
		}
	}
}

func TestDecodeTGARejectsShortData(t *testing.T) {
	if _, err := DecodeTGA([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for truncated TGA")
	}
}

func TestDecodePrefersStdlibFormats(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}

	decoded, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Bounds().Dx() != 2 || decoded.Bounds().Dy() != 2 {
		t.Errorf("unexpected bounds %v", decoded.Bounds())
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("definitely not pixels")); err == nil {
		t.Fatal("expected decode error")
	}
}
