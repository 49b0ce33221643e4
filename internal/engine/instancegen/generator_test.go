package instancegen

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelmonaskarion/islands-3d/internal/engine/heightfield"
)

func testField() *heightfield.Field {
	samples := make([]uint8, 64*64)
	for i := range samples {
		samples[i] = 128
	}
	return heightfield.FromSamples(samples, 64, 64, 1.0, 100.0)
}

func newTestGenerator(workers int) *Generator {
	return New(testField(), Config{
		Grid:    [2]int{100, 100},
		Spacing: 1.0,
		Hover:   2.0,
		Workers: workers,
	})
}

func TestCollectIsIdempotent(t *testing.T) {
	g := newTestGenerator(1)

	g.Collect(Slot{5, 5})
	g.Collect(Slot{5, 5})

	if g.Count() != 1 {
		t.Errorf("expected collected count 1 after repeat collect, got %d", g.Count())
	}
	if !g.Collected(Slot{5, 5}) {
		t.Error("slot (5,5) should be collected")
	}
}

func TestCollectOutOfRangeIsNoop(t *testing.T) {
	g := newTestGenerator(1)

	g.Collect(Slot{100, 0})
	g.Collect(Slot{0, 100})
	g.Collect(Slot{-1, 3})

	if g.Count() != 0 {
		t.Errorf("expected no collections, got %d", g.Count())
	}
}

func TestFlagsMirrorCollectedSet(t *testing.T) {
	g := newTestGenerator(1)

	g.Collect(Slot{5, 5})
	g.Collect(Slot{7, 2})

	flags := g.Flags()
	if len(flags) != 100*100 {
		t.Fatalf("expected %d flags, got %d", 100*100, len(flags))
	}
	if flags[5*100+5] != 1 || flags[7*100+2] != 1 {
		t.Error("collected slots must read 1 in the flag buffer")
	}
	ones := 0
	for _, f := range flags {
		ones += int(f)
	}
	if ones != 2 {
		t.Errorf("expected exactly 2 set flags, got %d", ones)
	}
}

func TestGenerateBufferSizeIsFixed(t *testing.T) {
	g := newTestGenerator(4)

	buf := g.Generate(0)
	if len(buf) != g.Total() {
		t.Fatalf("expected %d instances, got %d", g.Total(), len(buf))
	}

	for s := 0; s < 40; s++ {
		g.Collect(Slot{s % 10, s / 10})
	}
	buf = g.Generate(1.5)
	if len(buf) != g.Total() {
		t.Fatalf("buffer size changed after collection: %d", len(buf))
	}
}

func TestGenerateDegeneratesCollectedSlot(t *testing.T) {
	g := newTestGenerator(4)

	before := g.Generate(0)
	neighborBefore := before[5*100+6]

	g.Collect(Slot{5, 5})
	after := g.Generate(0)

	collected := after[5*100+5]
	if collected.Model != mgl32.Scale3D(0, 0, 0) {
		t.Errorf("collected instance should be zero-scaled, got %v", collected.Model)
	}
	if collected.Color[3] != 0 {
		t.Errorf("collected instance should be transparent, got alpha %f", collected.Color[3])
	}

	// At the same time input the neighbor is untouched.
	neighborAfter := after[5*100+6]
	if neighborBefore != neighborAfter {
		t.Error("neighboring slot transform changed after unrelated collection")
	}
	if neighborAfter.Color[3] != 1 {
		t.Errorf("neighbor should stay visible, got alpha %f", neighborAfter.Color[3])
	}
}

func TestGenerateIsDeterministicAcrossWorkerCounts(t *testing.T) {
	serial := newTestGenerator(1)
	parallel := newTestGenerator(8)

	a := serial.Generate(3.25)
	b := parallel.Generate(3.25)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("instance %d differs between worker counts", i)
		}
	}
}

func TestGeneratePlacesInstancesOnTheGround(t *testing.T) {
	g := New(testField(), Config{Grid: [2]int{4, 4}, Spacing: 2.0, Hover: 2.0, Workers: 1})

	buf := g.Generate(0)
	ground := float32(128) / 255.0 * 100.0

	for i, inst := range buf {
		// Translation lives in the last column of the model matrix.
		y := inst.Model.At(1, 3)
		diff := y - (ground + 2.0)
		if diff < -bobAmplitude || diff > bobAmplitude {
			t.Errorf("instance %d sits at %f, outside bob range around %f", i, y, ground+2.0)
		}
	}
}
