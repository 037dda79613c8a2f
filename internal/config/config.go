// Package config handles terragen configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/terragen/internal/engine/ridge"
	"github.com/Faultbox/terragen/internal/engine/terrain"
)

// Config holds all terragen settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Ridge   RidgeConfig   `yaml:"ridge"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds the generation parameters.
type TerrainConfig struct {
	Size       float64 `yaml:"size"`
	Resolution string  `yaml:"resolution"` // low, medium, high or a vertex count per side
	Seed       uint32  `yaml:"seed"`
	Octaves    uint32  `yaml:"octaves"`
	Frequency  float64 `yaml:"frequency"`
	Amplitude  float64 `yaml:"amplitude"`
	Noise      string  `yaml:"noise"`   // perlin or simplex
	Workers    int     `yaml:"workers"` // 0 = one per CPU
}

// RidgeConfig holds the optional ridge carving pass settings.
type RidgeConfig struct {
	Enabled        bool    `yaml:"enabled"`
	MinHeightRatio float64 `yaml:"min_height_ratio"` // Peak threshold as a fraction of amplitude
	MinSeparation  float32 `yaml:"min_separation"`
	HeightWeight   float32 `yaml:"height_weight"`
	FlattenHeight  float32 `yaml:"flatten_height"`
}

// ExportConfig holds output file paths. Empty paths are skipped.
type ExportConfig struct {
	OBJPath       string `yaml:"obj"`
	HeightmapPath string `yaml:"heightmap"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	gen := terrain.DefaultConfig()
	return &Config{
		Terrain: TerrainConfig{
			Size:       gen.Size,
			Resolution: gen.Resolution.String(),
			Seed:       gen.Seed,
			Octaves:    gen.Octaves,
			Frequency:  gen.Frequency,
			Amplitude:  gen.Amplitude,
			Noise:      gen.Noise.String(),
			Workers:    gen.Workers,
		},
		Ridge: RidgeConfig{
			Enabled:        false,
			MinHeightRatio: 0.5,
			MinSeparation:  4,
			HeightWeight:   4,
			FlattenHeight:  0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// GenerationConfig converts the terrain section into a validated generator config.
func (t TerrainConfig) GenerationConfig() (terrain.GenerationConfig, error) {
	res, err := terrain.ParseResolution(t.Resolution)
	if err != nil {
		return terrain.GenerationConfig{}, err
	}
	noise, err := terrain.ParseNoiseKind(t.Noise)
	if err != nil {
		return terrain.GenerationConfig{}, err
	}

	cfg := terrain.GenerationConfig{
		Size:       t.Size,
		Resolution: res,
		Seed:       t.Seed,
		Octaves:    t.Octaves,
		Frequency:  t.Frequency,
		Amplitude:  t.Amplitude,
		Noise:      noise,
		Workers:    t.Workers,
	}
	if err := cfg.Validate(); err != nil {
		return terrain.GenerationConfig{}, err
	}
	return cfg, nil
}

// Options converts the ridge section for a terrain of the given amplitude.
func (r RidgeConfig) Options(amplitude float64) ridge.Options {
	return ridge.Options{
		MinHeight:     float32(amplitude * r.MinHeightRatio),
		MinSeparation: r.MinSeparation,
		HeightWeight:  r.HeightWeight,
		FlattenHeight: r.FlattenHeight,
	}
}

// Validate checks that the config describes a valid generation request.
func (c *Config) Validate() error {
	if _, err := c.Terrain.GenerationConfig(); err != nil {
		return fmt.Errorf("terrain: %w", err)
	}
	if c.Ridge.Enabled && (c.Ridge.MinSeparation < 0 || c.Ridge.HeightWeight < 0) {
		return fmt.Errorf("ridge: %w: min_separation and height_weight must not be negative", terrain.ErrInvalidConfig)
	}
	return nil
}
