// Package text bakes an OpenType font into a single-channel glyph atlas
// and lays strings out as textured quads. No GL here; the scene overlay
// uploads the atlas and draws the quads.
package text

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FloatsPerVertex is the quad vertex stride: screen x,y plus atlas u,v.
const FloatsPerVertex = 4

// atlasWidth is the fixed packing width; height grows to fit.
const atlasWidth = 512

// Glyph describes one character's placement in the atlas and its layout
// metrics, all in pixels.
type Glyph struct {
	AtlasX, AtlasY float32
	Width, Height  float32
	// Bearing offsets from the pen position to the glyph box.
	BearingX, BearingY float32
	Advance            float32
}

// Atlas is a baked glyph sheet: single-channel coverage pixels plus
// per-rune metrics.
type Atlas struct {
	// Pix is Width*Height coverage bytes, row-major, top-left origin.
	Pix    []uint8
	Width  int
	Height int

	// LineHeight is the vertical advance between lines of text.
	LineHeight float32

	Glyphs map[rune]Glyph
}

// BuildAtlas parses OpenType font bytes and bakes the printable ASCII
// range at the given pixel size.
func BuildAtlas(fontBytes []byte, sizePx float64) (*Atlas, error) {
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating font face: %w", err)
	}
	defer face.Close()

	const padding = 1
	const first, last = rune(32), rune(126)

	// First pass: measure glyphs to size the atlas.
	maxH := 0
	offsetX := 0
	rows := 1
	for r := first; r <= last; r++ {
		dr, mask, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil {
			continue
		}
		gw, gh := dr.Dx(), dr.Dy()
		if gh > maxH {
			maxH = gh
		}
		if gw == 0 {
			continue
		}
		if offsetX+gw+padding > atlasWidth {
			rows++
			offsetX = 0
		}
		offsetX += gw + padding
	}
	if maxH == 0 {
		maxH = int(math.Ceil(sizePx))
	}
	atlasHeight := rows * (maxH + padding)

	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasHeight))
	glyphs := make(map[rune]Glyph, int(last-first)+1)

	// Second pass: render into the atlas and record metrics.
	offsetX, offsetY := 0, 0
	for r := first; r <= last; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil {
			continue
		}
		gw, gh := dr.Dx(), dr.Dy()
		adv := float32(advance) / 64.0

		if gw == 0 || gh == 0 {
			// Space: advance only, nothing to draw.
			glyphs[r] = Glyph{Advance: adv}
			continue
		}

		if offsetX+gw+padding > atlasWidth {
			offsetX = 0
			offsetY += maxH + padding
		}

		dst := image.Rect(offsetX, offsetY, offsetX+gw, offsetY+gh)
		draw.Draw(img, dst, mask, maskp, draw.Src)

		glyphs[r] = Glyph{
			AtlasX:   float32(offsetX),
			AtlasY:   float32(offsetY),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  adv,
		}

		offsetX += gw + padding
	}

	metrics := face.Metrics()
	return &Atlas{
		Pix:        img.Pix,
		Width:      atlasWidth,
		Height:     atlasHeight,
		LineHeight: float32(metrics.Height) / 64.0,
		Glyphs:     glyphs,
	}, nil
}

// AppendString appends two triangles per drawable glyph to dst, laid
// out from the pen position (x, y) where y is the baseline in screen
// pixels with a top-left origin. Vertices are x,y,u,v.
func (a *Atlas) AppendString(dst []float32, s string, x, y, scale float32) []float32 {
	pen := x
	for _, r := range s {
		g, ok := a.Glyphs[r]
		if !ok {
			if sp, spOK := a.Glyphs[' ']; spOK {
				pen += sp.Advance * scale
			}
			continue
		}
		if g.Width > 0 {
			x0 := pen + g.BearingX*scale
			y0 := y - g.BearingY*scale
			x1 := x0 + g.Width*scale
			y1 := y0 + g.Height*scale

			u0 := g.AtlasX / float32(a.Width)
			v0 := g.AtlasY / float32(a.Height)
			u1 := (g.AtlasX + g.Width) / float32(a.Width)
			v1 := (g.AtlasY + g.Height) / float32(a.Height)

			dst = append(dst,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,

				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		pen += g.Advance * scale
	}
	return dst
}

// Measure returns the width in pixels s occupies at the given scale.
func (a *Atlas) Measure(s string, scale float32) float32 {
	var w float32
	for _, r := range s {
		g, ok := a.Glyphs[r]
		if !ok {
			g = a.Glyphs[' ']
		}
		w += g.Advance * scale
	}
	return w
}
