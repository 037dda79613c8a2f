package terrain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidConfig is returned for generation parameters that cannot produce a mesh.
var ErrInvalidConfig = errors.New("invalid terrain config")

// Resolution is the number of vertices along each side of the terrain grid.
type Resolution uint32

// Named resolution tiers.
const (
	ResolutionLow    Resolution = 256
	ResolutionMedium Resolution = 512
	ResolutionHigh   Resolution = 1024
)

// MaxResolution is the largest grid whose vertex indices fit in uint32.
const MaxResolution Resolution = 1 << 16

// String returns the tier name for named tiers and the vertex count otherwise.
func (r Resolution) String() string {
	switch r {
	case ResolutionLow:
		return "low"
	case ResolutionMedium:
		return "medium"
	case ResolutionHigh:
		return "high"
	default:
		return strconv.FormatUint(uint64(r), 10)
	}
}

// VertexCount returns resolution².
func (r Resolution) VertexCount() int {
	return int(r) * int(r)
}

// ParseResolution accepts a tier name (low, medium, high) or a positive integer.
func ParseResolution(s string) (Resolution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return ResolutionLow, nil
	case "medium":
		return ResolutionMedium, nil
	case "high":
		return ResolutionHigh, nil
	}

	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: resolution %q is neither a tier nor a positive integer", ErrInvalidConfig, s)
	}
	r := Resolution(n)
	if r == 0 || r > MaxResolution {
		return 0, fmt.Errorf("%w: resolution must be in [1, %d], got %d", ErrInvalidConfig, MaxResolution, n)
	}
	return r, nil
}

// MaxOctaves bounds the fractal sum. Later octaves fall below float64 precision.
const MaxOctaves = 64

// NoiseKind selects the coherent noise basis used by the height field.
type NoiseKind uint8

// Noise kinds.
const (
	NoisePerlin NoiseKind = iota
	NoiseSimplex
)

// String returns the config name of the noise kind.
func (k NoiseKind) String() string {
	switch k {
	case NoisePerlin:
		return "perlin"
	case NoiseSimplex:
		return "simplex"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// ParseNoiseKind parses "perlin" or "simplex".
func ParseNoiseKind(s string) (NoiseKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "perlin", "":
		return NoisePerlin, nil
	case "simplex", "opensimplex":
		return NoiseSimplex, nil
	default:
		return 0, fmt.Errorf("%w: unknown noise kind %q", ErrInvalidConfig, s)
	}
}

// GenerationConfig holds the parameters of one terrain generation request.
type GenerationConfig struct {
	Size       float64 // World extent along X and Z
	Resolution Resolution
	Seed       uint32
	Octaves    uint32
	Frequency  float64 // Noise features across the whole terrain, independent of Size
	Amplitude  float64 // Height scale
	Noise      NoiseKind
	Workers    int // Height sampling workers, 0 = one per CPU
}

// DefaultConfig returns the stock landscape: 32 units wide, medium resolution.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{
		Size:       32,
		Resolution: ResolutionMedium,
		Seed:       42,
		Octaves:    3,
		Frequency:  4,
		Amplitude:  24,
		Noise:      NoisePerlin,
	}
}

// NewGenerationConfig builds a Perlin config and rejects invalid parameters.
func NewGenerationConfig(size float64, resolution Resolution, seed, octaves uint32, frequency, amplitude float64) (GenerationConfig, error) {
	cfg := GenerationConfig{
		Size:       size,
		Resolution: resolution,
		Seed:       seed,
		Octaves:    octaves,
		Frequency:  frequency,
		Amplitude:  amplitude,
		Noise:      NoisePerlin,
	}
	if err := cfg.Validate(); err != nil {
		return GenerationConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid parameter. Values are never clamped.
func (c GenerationConfig) Validate() error {
	switch {
	case !finite(c.Size) || c.Size <= 0:
		return fmt.Errorf("%w: size must be a positive finite number, got %v", ErrInvalidConfig, c.Size)
	case c.Resolution == 0:
		return fmt.Errorf("%w: resolution must be at least 1", ErrInvalidConfig)
	case c.Resolution > MaxResolution:
		return fmt.Errorf("%w: resolution %d exceeds %d", ErrInvalidConfig, c.Resolution, MaxResolution)
	case c.Octaves == 0 || c.Octaves > MaxOctaves:
		return fmt.Errorf("%w: octaves must be in [1, %d], got %d", ErrInvalidConfig, MaxOctaves, c.Octaves)
	case !finite(c.Frequency) || c.Frequency <= 0:
		return fmt.Errorf("%w: frequency must be a positive finite number, got %v", ErrInvalidConfig, c.Frequency)
	case !finite(c.Amplitude) || c.Amplitude < 0:
		return fmt.Errorf("%w: amplitude must be a non-negative finite number, got %v", ErrInvalidConfig, c.Amplitude)
	case c.Noise != NoisePerlin && c.Noise != NoiseSimplex:
		return fmt.Errorf("%w: unknown noise kind %d", ErrInvalidConfig, c.Noise)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
