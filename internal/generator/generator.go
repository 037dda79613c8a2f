// Package generator runs a configured terrain generation end to end.
package generator

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terragen/internal/config"
	"github.com/Faultbox/terragen/internal/engine/ridge"
	"github.com/Faultbox/terragen/internal/engine/terrain"
	"github.com/Faultbox/terragen/internal/export"
	"github.com/Faultbox/terragen/internal/logger"
	"github.com/Faultbox/terragen/pkg/math"
)

// Result holds a generated terrain and how it was produced.
type Result struct {
	Mesh    *terrain.Mesh
	Ridge   *ridge.Path // nil when ridge carving is disabled or found no ridge
	Elapsed time.Duration

	// Origin is where the renderer places the mesh so its middle sits at the
	// world origin; CenterHeight is the surface height there.
	Origin       math.Vec3
	CenterHeight float32
}

// Generator turns a Config into meshes and output files.
type Generator struct {
	cfg   *config.Config
	gen   terrain.GenerationConfig
	ridge ridge.Options
	log   *zap.Logger
}

// New creates a generator from a validated config.
func New(cfg *config.Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen, err := cfg.Terrain.GenerationConfig()
	if err != nil {
		return nil, err
	}

	return &Generator{
		cfg:   cfg,
		gen:   gen,
		ridge: cfg.Ridge.Options(gen.Amplitude),
		log:   logger.Named("generator"),
	}, nil
}

// Config returns the generation parameters in use.
func (g *Generator) Config() terrain.GenerationConfig {
	return g.gen
}

// Generate builds the terrain mesh and applies ridge carving when enabled.
func (g *Generator) Generate() (*Result, error) {
	g.log.Info("generating terrain",
		zap.Float64("size", g.gen.Size),
		zap.Stringer("resolution", g.gen.Resolution),
		zap.Uint32("seed", g.gen.Seed),
		zap.Uint32("octaves", g.gen.Octaves),
		zap.Float64("frequency", g.gen.Frequency),
		zap.Float64("amplitude", g.gen.Amplitude),
		zap.Stringer("noise", g.gen.Noise),
	)

	start := time.Now()
	mesh, err := terrain.Generate(g.gen)
	if err != nil {
		return nil, fmt.Errorf("generating mesh: %w", err)
	}

	g.log.Debug("mesh built",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Float32("min_height", mesh.Bounds.Min[1]),
		zap.Float32("max_height", mesh.Bounds.Max[1]),
		zap.Duration("elapsed", time.Since(start)),
	)

	result := &Result{Mesh: mesh}

	if g.cfg.Ridge.Enabled {
		path, err := ridge.Trace(mesh, g.ridge)
		switch {
		case errors.Is(err, ridge.ErrNoPeaks):
			g.log.Warn("ridge carving skipped", zap.Error(err), zap.Float32("min_height", g.ridge.MinHeight))
		case err != nil:
			return nil, fmt.Errorf("tracing ridge: %w", err)
		default:
			ridge.Carve(mesh, path, g.ridge.FlattenHeight)
			result.Ridge = path
			g.log.Debug("ridge carved",
				zap.Int("peaks", len(path.Peaks)),
				zap.Int("path_vertices", len(path.Vertices)),
			)
		}
	}

	half := mesh.Size / 2
	result.Origin = mesh.Centered()
	result.CenterHeight = mesh.HeightAt(half, half)
	result.Elapsed = time.Since(start)
	g.log.Info("terrain generated",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("indices", len(mesh.Indices)),
		zap.Float32("center_height", result.CenterHeight),
		zap.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

// Export writes the configured output files for result. Empty paths are skipped.
func (g *Generator) Export(result *Result) error {
	if result == nil || result.Mesh == nil {
		return export.ErrEmptyMesh
	}

	if path := g.cfg.Export.OBJPath; path != "" {
		if err := export.SaveOBJ(path, result.Mesh); err != nil {
			return fmt.Errorf("exporting obj: %w", err)
		}
		g.log.Info("wrote mesh", zap.String("path", path))
	}

	if path := g.cfg.Export.HeightmapPath; path != "" {
		if err := export.SaveHeightmap(path, result.Mesh); err != nil {
			return fmt.Errorf("exporting heightmap: %w", err)
		}
		g.log.Info("wrote heightmap", zap.String("path", path))
	}

	return nil
}
