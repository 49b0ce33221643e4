package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func buildTestAtlas(t *testing.T) *Atlas {
	t.Helper()
	a, err := BuildAtlas(goregular.TTF, 24)
	if err != nil {
		t.Fatalf("BuildAtlas failed: %v", err)
	}
	return a
}

func TestBuildAtlasCoversASCII(t *testing.T) {
	a := buildTestAtlas(t)

	for r := rune(33); r <= 126; r++ {
		g, ok := a.Glyphs[r]
		if !ok {
			t.Fatalf("missing glyph for %q", r)
		}
		if g.Width <= 0 || g.Height <= 0 {
			t.Fatalf("glyph %q has empty box", r)
		}
		if g.Advance <= 0 {
			t.Fatalf("glyph %q has no advance", r)
		}
	}

	sp, ok := a.Glyphs[' ']
	if !ok || sp.Advance <= 0 {
		t.Fatalf("space glyph should carry an advance, got %+v", sp)
	}
	if len(a.Pix) != a.Width*a.Height {
		t.Fatalf("pix length %d does not match %dx%d", len(a.Pix), a.Width, a.Height)
	}
}

func TestBuildAtlasRejectsGarbage(t *testing.T) {
	if _, err := BuildAtlas([]byte("not a font"), 24); err == nil {
		t.Fatal("expected error for invalid font bytes")
	}
}

func TestAppendStringQuadCount(t *testing.T) {
	a := buildTestAtlas(t)

	verts := a.AppendString(nil, "abc", 10, 40, 1)
	want := 3 * 6 * FloatsPerVertex
	if len(verts) != want {
		t.Fatalf("3 glyphs should emit %d floats, got %d", want, len(verts))
	}

	// Spaces advance the pen without emitting geometry.
	withSpace := a.AppendString(nil, "a c", 10, 40, 1)
	if len(withSpace) != 2*6*FloatsPerVertex {
		t.Fatalf("space should not emit a quad, got %d floats", len(withSpace))
	}
}

func TestAppendStringAdvancesRight(t *testing.T) {
	a := buildTestAtlas(t)

	verts := a.AppendString(nil, "ab", 0, 40, 1)
	firstX := verts[0]
	secondX := verts[6*FloatsPerVertex]
	if secondX <= firstX {
		t.Fatalf("second glyph should start right of the first: %v vs %v", secondX, firstX)
	}
}

func TestMeasureScales(t *testing.T) {
	a := buildTestAtlas(t)

	w1 := a.Measure("hello", 1)
	w2 := a.Measure("hello", 2)
	if w1 <= 0 {
		t.Fatalf("width should be positive, got %v", w1)
	}
	if diff := w2 - 2*w1; diff > 1e-3 || diff < -1e-3 {
		t.Fatalf("doubling scale should double width: %v vs %v", w2, 2*w1)
	}
}
