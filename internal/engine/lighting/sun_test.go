package lighting

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDirectionIsNormalized(t *testing.T) {
	s := Default()
	d := s.Direction()
	if math.Abs(float64(d.Len())-1.0) > 1e-6 {
		t.Fatalf("direction not normalized: len = %v", d.Len())
	}
}

func TestDirectionAtZenith(t *testing.T) {
	s := Sun{Azimuth: 0, Elevation: 90}
	d := s.Direction()
	if math.Abs(float64(d.Y())-1.0) > 1e-6 {
		t.Fatalf("zenith sun should point straight up, got %v", d)
	}
}

func TestDirectionOnHorizon(t *testing.T) {
	s := Sun{Azimuth: 0, Elevation: 0}
	d := s.Direction()
	if math.Abs(float64(d.Y())) > 1e-6 {
		t.Fatalf("horizon sun should have no vertical component, got %v", d)
	}
	if math.Abs(float64(d.Z())-1.0) > 1e-6 {
		t.Fatalf("azimuth 0 should point along +Z, got %v", d)
	}
}

func TestWorldPositionFollowsEye(t *testing.T) {
	s := Default()
	a := s.WorldPosition(mgl32.Vec3{0, 0, 0})
	b := s.WorldPosition(mgl32.Vec3{100, 50, -30})

	diff := b.Sub(a)
	want := mgl32.Vec3{100, 50, -30}
	if diff.Sub(want).Len() > 1e-3 {
		t.Fatalf("billboard should translate with the eye, offset = %v", diff)
	}

	dist := a.Len()
	if math.Abs(float64(dist-s.Distance)) > 1e-2 {
		t.Fatalf("billboard distance = %v, want %v", dist, s.Distance)
	}
}
