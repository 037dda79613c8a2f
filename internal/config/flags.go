package config

import (
	"flag"
	"fmt"
	"strconv"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSize       = flag.Float64("size", 0, "Terrain world size")
	flagResolution = flag.String("resolution", "", "Grid resolution: low, medium, high or vertices per side")
	flagSeed       = flag.String("seed", "", "Noise seed (uint32)")
	flagOctaves    = flag.Uint("octaves", 0, "Noise octaves")
	flagFrequency  = flag.Float64("frequency", 0, "Noise features across the terrain")
	flagAmplitude  = flag.String("amplitude", "", "Height scale")
	flagNoise      = flag.String("noise", "", "Noise kind: perlin or simplex")
	flagWorkers    = flag.Int("workers", -1, "Height sampling workers (0 = one per CPU)")
	flagRidge      = flag.Bool("ridge", false, "Carve a ridge line between peaks")
	flagOBJ        = flag.String("obj", "", "Write the mesh as Wavefront OBJ")
	flagHeightmap  = flag.String("heightmap", "", "Write a 16-bit heightmap (.png or .tiff)")
	flagLogFile    = flag.String("log-file", "", "Log file path")
	flagSaveConfig = flag.Bool("save-config", false, "Save the effective config to the user config dir")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether -save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
// Zero values (and -1 for workers) leave the config untouched.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSize != 0 {
		cfg.Terrain.Size = *flagSize
	}
	if *flagResolution != "" {
		cfg.Terrain.Resolution = *flagResolution
	}
	if *flagSeed != "" {
		seed, err := strconv.ParseUint(*flagSeed, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid -seed %q: %w", *flagSeed, err)
		}
		cfg.Terrain.Seed = uint32(seed)
	}
	if *flagOctaves != 0 {
		cfg.Terrain.Octaves = uint32(*flagOctaves)
	}
	if *flagFrequency != 0 {
		cfg.Terrain.Frequency = *flagFrequency
	}
	if *flagAmplitude != "" {
		amplitude, err := strconv.ParseFloat(*flagAmplitude, 64)
		if err != nil {
			return fmt.Errorf("invalid -amplitude %q: %w", *flagAmplitude, err)
		}
		cfg.Terrain.Amplitude = amplitude
	}
	if *flagNoise != "" {
		cfg.Terrain.Noise = *flagNoise
	}
	if *flagWorkers >= 0 {
		cfg.Terrain.Workers = *flagWorkers
	}
	if *flagRidge {
		cfg.Ridge.Enabled = true
	}
	if *flagOBJ != "" {
		cfg.Export.OBJPath = *flagOBJ
	}
	if *flagHeightmap != "" {
		cfg.Export.HeightmapPath = *flagHeightmap
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	return nil
}
