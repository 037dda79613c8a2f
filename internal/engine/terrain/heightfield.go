package terrain

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Fractal sum parameters shared by both noise kinds: each octave has half the
// weight and twice the frequency of the previous one.
const (
	noisePersistence = 0.5
	noiseLacunarity  = 2.0
)

// Noise is a deterministic 2D coherent noise function.
// *perlin.Perlin satisfies it directly.
type Noise interface {
	Noise2D(x, y float64) float64
}

// NewNoise builds the seeded multi-octave noise for kind.
func NewNoise(kind NoiseKind, seed, octaves uint32) Noise {
	if kind == NoiseSimplex {
		return &simplexFractal{
			base:    opensimplex.New(int64(seed)),
			octaves: int(octaves),
		}
	}
	// go-perlin divides each octave by alpha^i and multiplies coordinates by beta^i.
	return perlin.NewPerlin(1/noisePersistence, noiseLacunarity, int32(octaves), int64(seed))
}

// simplexFractal sums octaves of OpenSimplex noise the same way go-perlin does.
type simplexFractal struct {
	base    opensimplex.Noise
	octaves int
}

func (s *simplexFractal) Noise2D(x, y float64) float64 {
	var sum float64
	weight := 1.0
	for range s.octaves {
		sum += s.base.Eval2(x, y) * weight
		weight *= noisePersistence
		x *= noiseLacunarity
		y *= noiseLacunarity
	}
	return sum
}

// HeightField evaluates terrain elevation at world coordinates.
// It holds no mutable state and is safe for concurrent use.
type HeightField struct {
	noise     Noise
	size      float64
	frequency float64
	amplitude float64
}

// NewHeightField builds the height field described by cfg.
func NewHeightField(cfg GenerationConfig) (*HeightField, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewHeightFieldFromNoise(NewNoise(cfg.Noise, cfg.Seed, cfg.Octaves), cfg.Size, cfg.Frequency, cfg.Amplitude), nil
}

// NewHeightFieldFromNoise wraps an existing noise function. size must be positive.
func NewHeightFieldFromNoise(noise Noise, size, frequency, amplitude float64) *HeightField {
	return &HeightField{
		noise:     noise,
		size:      size,
		frequency: frequency,
		amplitude: amplitude,
	}
}

// Sample returns the height at world position (x, z).
// Coordinates are normalized by size so frequency counts features across the terrain.
func (h *HeightField) Sample(x, z float64) float64 {
	fx := x / h.size * h.frequency
	fz := z / h.size * h.frequency
	return h.noise.Noise2D(fx, fz) * h.amplitude
}
