package terrain

import (
	"math"
	"testing"
)

// recordingNoise returns a constant and remembers where it was evaluated.
type recordingNoise struct {
	x, y float64
}

func (r *recordingNoise) Noise2D(x, y float64) float64 {
	r.x, r.y = x, y
	return 0.5
}

func TestHeightFieldNormalizesCoordinates(t *testing.T) {
	noise := &recordingNoise{}
	field := NewHeightFieldFromNoise(noise, 10, 4, 3)

	got := field.Sample(2.5, 5)
	if got != 1.5 {
		t.Errorf("expected height 0.5*3 = 1.5, got %v", got)
	}
	if noise.x != 1 || noise.y != 2 {
		t.Errorf("expected noise coords (1, 2), got (%v, %v)", noise.x, noise.y)
	}
}

func TestHeightFieldFrequencyScaling(t *testing.T) {
	cfg := DefaultConfig()
	noise := NewNoise(cfg.Noise, cfg.Seed, cfg.Octaves)

	for _, f := range []float64{0.5, 1, 3, 4} {
		base := NewHeightFieldFromNoise(noise, cfg.Size, f, cfg.Amplitude)
		doubled := NewHeightFieldFromNoise(noise, cfg.Size, 2*f, cfg.Amplitude)

		for _, p := range [][2]float64{{1.3, 2.7}, {5.1, 0.4}, {17.9, 23.3}} {
			x, z := p[0], p[1]
			if a, b := doubled.Sample(x, z), base.Sample(2*x, 2*z); a != b {
				t.Errorf("f=%v at (%v,%v): 2f sample %v != f sample at doubled coords %v", f, x, z, a, b)
			}
		}
	}
}

func TestHeightFieldDeterministic(t *testing.T) {
	for _, kind := range []NoiseKind{NoisePerlin, NoiseSimplex} {
		cfg := DefaultConfig()
		cfg.Noise = kind

		a, err := NewHeightField(cfg)
		if err != nil {
			t.Fatalf("NewHeightField failed: %v", err)
		}
		b, _ := NewHeightField(cfg)

		for _, p := range [][2]float64{{0.7, 3.1}, {12.2, 8.8}, {31.5, 30.25}} {
			if a.Sample(p[0], p[1]) != b.Sample(p[0], p[1]) {
				t.Errorf("%v noise is not deterministic at %v", kind, p)
			}
		}
	}
}

func TestHeightFieldSeedChangesTerrain(t *testing.T) {
	for _, kind := range []NoiseKind{NoisePerlin, NoiseSimplex} {
		cfgA := DefaultConfig()
		cfgA.Noise = kind
		cfgB := cfgA
		cfgB.Seed = cfgA.Seed + 1

		a, _ := NewHeightField(cfgA)
		b, _ := NewHeightField(cfgB)

		differs := false
		for _, p := range [][2]float64{{1.3, 2.7}, {5.1, 0.4}, {17.9, 23.3}, {9.6, 14.2}, {27.1, 3.3}} {
			if a.Sample(p[0], p[1]) != b.Sample(p[0], p[1]) {
				differs = true
				break
			}
		}
		if !differs {
			t.Errorf("%v noise: seeds %d and %d produced identical heights", kind, cfgA.Seed, cfgB.Seed)
		}
	}
}

func TestHeightFieldFinite(t *testing.T) {
	for _, kind := range []NoiseKind{NoisePerlin, NoiseSimplex} {
		cfg := DefaultConfig()
		cfg.Noise = kind
		field, _ := NewHeightField(cfg)

		for z := 0.0; z < cfg.Size; z += 0.37 {
			for x := 0.0; x < cfg.Size; x += 0.37 {
				h := field.Sample(x, z)
				if math.IsNaN(h) || math.IsInf(h, 0) {
					t.Fatalf("%v noise: non-finite height %v at (%v, %v)", kind, h, x, z)
				}
			}
		}
	}
}

func TestHeightFieldZeroAmplitudeIsFlat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Amplitude = 0
	field, _ := NewHeightField(cfg)

	for _, p := range [][2]float64{{1.3, 2.7}, {5.1, 0.4}} {
		if h := field.Sample(p[0], p[1]); h != 0 {
			t.Errorf("expected flat terrain, got %v at %v", h, p)
		}
	}
}
