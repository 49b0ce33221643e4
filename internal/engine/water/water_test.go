package water

import "testing"

func TestBuildPlaneGeometry(t *testing.T) {
	p := BuildPlane(100, 36.0, 10)

	// 10x10 cells -> 11x11 vertices, 100 quads.
	if got := len(p.Vertices) / 3; got != 11*11 {
		t.Errorf("expected 121 vertices, got %d", got)
	}
	if got := len(p.Indices); got != 10*10*6 {
		t.Errorf("expected 600 indices, got %d", got)
	}

	// Every vertex sits at the water level.
	for i := 1; i < len(p.Vertices); i += 3 {
		if p.Vertices[i] != 36.0 {
			t.Fatalf("vertex %d not at water level: %f", i/3, p.Vertices[i])
		}
	}
}

func TestBuildPlaneClampsToExtent(t *testing.T) {
	// 95 does not divide evenly by 10; the last row must clamp to the
	// extent instead of overshooting.
	p := BuildPlane(95, 1.0, 10)

	for i := 0; i < len(p.Indices); i++ {
		if int(p.Indices[i])*3 >= len(p.Vertices) {
			t.Fatalf("index %d out of range", p.Indices[i])
		}
	}
	for i := 0; i < len(p.Vertices); i += 3 {
		if p.Vertices[i] > 95 || p.Vertices[i+2] > 95 {
			t.Errorf("vertex exceeds extent: (%f, %f)", p.Vertices[i], p.Vertices[i+2])
		}
	}
}

func TestBuildPlaneDegenerateTileSize(t *testing.T) {
	p := BuildPlane(50, 2.0, 0)

	// Falls back to a single quad.
	if got := len(p.Vertices) / 3; got != 4 {
		t.Errorf("expected 4 vertices for single-quad fallback, got %d", got)
	}
	if got := len(p.Indices); got != 6 {
		t.Errorf("expected 6 indices, got %d", got)
	}
}
